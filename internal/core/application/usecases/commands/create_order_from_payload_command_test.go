package commands_test

import (
	"testing"

	"loading/internal/core/application/intake"
	"loading/internal/core/application/usecases/commands"
	"loading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderFromPayloadCommand_ValidInput(t *testing.T) {
	doc := intake.Document{"number": "OC-1"}
	cmd, err := commands.NewCreateOrderFromPayloadCommand(doc, "erp")
	require.NoError(t, err)
	assert.Equal(t, intake.ERP, cmd.Schema())
	assert.Equal(t, doc, cmd.Document())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateOrderFromPayloadCommand_NilDocument(t *testing.T) {
	_, err := commands.NewCreateOrderFromPayloadCommand(nil, intake.ERP)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderFromPayloadCommand_UnknownSchema(t *testing.T) {
	_, err := commands.NewCreateOrderFromPayloadCommand(intake.Document{}, "XML")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderFromPayloadCommand_ZeroValue(t *testing.T) {
	err := commands.CreateOrderFromPayloadCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrCreateOrderFromPayloadCommandIsNotConstructed)
}
