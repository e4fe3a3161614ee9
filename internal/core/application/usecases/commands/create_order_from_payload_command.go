package commands

import (
	"errors"

	"loading/internal/core/application/intake"
	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

var ErrCreateOrderFromPayloadCommandIsNotConstructed = errors.New(
	"CreateOrderFromPayloadCommand must be created via NewCreateOrderFromPayloadCommand constructor",
)

// CreateOrderFromPayloadCommand carries a raw intake document and the schema it was
// received under.
//
// Example:
//
//	doc, err := intake.ParseDocument(body)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewCreateOrderFromPayloadCommand(doc, intake.ERP)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderFromPayloadCommand struct {
	document intake.Document
	schema   intake.Schema

	guard guard.ConstructorGuard
}

func NewCreateOrderFromPayloadCommand(document intake.Document, schema intake.Schema) (CreateOrderFromPayloadCommand, error) {
	if document == nil {
		return CreateOrderFromPayloadCommand{}, errs.NewValueIsRequiredError("payload")
	}
	parsed, err := intake.ParseSchema(string(schema))
	if err != nil {
		return CreateOrderFromPayloadCommand{}, err
	}

	return CreateOrderFromPayloadCommand{
		document: document,
		schema:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderFromPayloadCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderFromPayloadCommandIsNotConstructed)
}

func (c CreateOrderFromPayloadCommand) Document() intake.Document {
	return c.document
}

func (c CreateOrderFromPayloadCommand) Schema() intake.Schema {
	return c.schema
}
