package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loading/internal/pkg/errs"
)

// Schema identifies the source of a payload.
type Schema string

const (
	// ERP payloads come from the B2B integration and are strictly validated.
	ERP Schema = "ERP"
	// Charging payloads come from the charging system and are taken as-is.
	Charging Schema = "CHARGING"
)

// ParseSchema accepts the schema name in any case.
func ParseSchema(s string) (Schema, error) {
	switch Schema(strings.ToUpper(strings.TrimSpace(s))) {
	case ERP:
		return ERP, nil
	case Charging:
		return Charging, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("schema", fmt.Errorf("unknown schema %q", s))
	}
}

type DriverData struct {
	DocumentNumber string
	FirstName      string
	LastName       string
}

type ClientData struct {
	CompanyName string
	ContactName string
	Email       string
}

type TruckData struct {
	Domain      string
	Description string
	Capacity    float64
}

type ProductData struct {
	Name        string
	Description string
}

// Payload is the canonical form of an intake document. A nil master block means the
// document did not carry one.
type Payload struct {
	Schema        Schema
	OrderNumber   string
	ExternalCode  string
	ScheduledDate time.Time
	Preset        float64

	Driver  *DriverData
	Client  *ClientData
	Truck   *TruckData
	Product *ProductData
}

// Normalizer extracts a Payload from a Document.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer returns a Normalizer. now supplies the default scheduled date and may
// be nil, in which case time.Now is used.
func NewNormalizer(now func() time.Time) Normalizer {
	if now == nil {
		now = time.Now
	}
	return Normalizer{now: now}
}

// Normalize extracts every field through its aliases, then applies the schema rules.
// The order number is always required since it is the order identity.
func (n Normalizer) Normalize(doc Document, schema Schema) (Payload, error) {
	if doc == nil {
		return Payload{}, errs.NewValueIsRequiredError("payload")
	}

	p, err := n.extract(doc)
	if err != nil {
		return Payload{}, err
	}
	p.Schema = schema

	switch schema {
	case ERP:
		if err := validateERP(p); err != nil {
			return Payload{}, err
		}
	case Charging:
		if p.OrderNumber == "" {
			return Payload{}, errs.NewValueIsRequiredError(OrderNumberField.Name)
		}
	default:
		return Payload{}, errs.NewValueIsInvalidErrorWithCause("schema", fmt.Errorf("unknown schema %q", schema))
	}

	return p, nil
}

func (n Normalizer) extract(doc Document) (Payload, error) {
	var (
		p       Payload
		errList []error
		err     error
	)

	p.OrderNumber, err = doc.String(OrderNumberField)
	errList = append(errList, err)
	p.ExternalCode, err = doc.String(ExternalCodeField)
	errList = append(errList, err)

	scheduled, ok, err := doc.Time(ScheduledDateField)
	errList = append(errList, err)
	if !ok {
		scheduled = n.now().UTC()
	}
	p.ScheduledDate = scheduled

	p.Preset, _, err = doc.Float(PresetField)
	errList = append(errList, err)

	p.Driver, err = extractDriver(doc)
	errList = append(errList, err)
	p.Client, err = extractClient(doc)
	errList = append(errList, err)
	p.Truck, err = extractTruck(doc)
	errList = append(errList, err)
	p.Product, err = extractProduct(doc)
	errList = append(errList, err)

	if err := errors.Join(errList...); err != nil {
		return Payload{}, err
	}
	return p, nil
}

func extractDriver(doc Document) (*DriverData, error) {
	sub, err := doc.Sub(DriverField)
	if err != nil || sub == nil {
		return nil, err
	}

	var d DriverData
	var e1, e2, e3 error
	d.DocumentNumber, e1 = sub.String(DriverDocumentField)
	d.FirstName, e2 = sub.String(DriverFirstNameField)
	d.LastName, e3 = sub.String(DriverLastNameField)
	return &d, errors.Join(e1, e2, e3)
}

func extractClient(doc Document) (*ClientData, error) {
	sub, err := doc.Sub(ClientField)
	if err != nil || sub == nil {
		return nil, err
	}

	var c ClientData
	var e1, e2, e3 error
	c.CompanyName, e1 = sub.String(ClientCompanyField)
	c.ContactName, e2 = sub.String(ClientContactField)
	c.Email, e3 = sub.String(ClientEmailField)
	return &c, errors.Join(e1, e2, e3)
}

func extractTruck(doc Document) (*TruckData, error) {
	sub, err := doc.Sub(TruckField)
	if err != nil || sub == nil {
		return nil, err
	}

	var t TruckData
	var e1, e2, e3 error
	t.Domain, e1 = sub.String(TruckDomainField)
	t.Description, e2 = sub.String(TruckDescriptionField)
	t.Capacity, _, e3 = sub.Float(TruckCapacityField)
	return &t, errors.Join(e1, e2, e3)
}

func extractProduct(doc Document) (*ProductData, error) {
	sub, err := doc.Sub(ProductField)
	if err != nil || sub == nil {
		return nil, err
	}

	var pr ProductData
	var e1, e2 error
	pr.Name, e1 = sub.String(ProductNameField)
	pr.Description, e2 = sub.String(ProductDescriptionField)
	return &pr, errors.Join(e1, e2)
}

// validateERP reports the first missing field in a fixed order so the caller always
// gets the same answer for the same payload.
func validateERP(p Payload) error {
	required := []struct {
		field Field
		value string
	}{
		{OrderNumberField, p.OrderNumber},
		{DriverDocumentField, driverDocument(p.Driver)},
		{ClientCompanyField, clientCompany(p.Client)},
		{TruckDomainField, truckDomain(p.Truck)},
		{ProductNameField, productName(p.Product)},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return errs.NewValueIsRequiredError(r.field.Name)
		}
	}

	if p.Preset <= 0 {
		return errs.NewValueIsRequiredErrorWithCause(
			PresetField.Name,
			fmt.Errorf("preset must be greater than zero, got %v", p.Preset),
		)
	}
	return nil
}

func driverDocument(d *DriverData) string {
	if d == nil {
		return ""
	}
	return d.DocumentNumber
}

func clientCompany(c *ClientData) string {
	if c == nil {
		return ""
	}
	return c.CompanyName
}

func truckDomain(t *TruckData) string {
	if t == nil {
		return ""
	}
	return t.Domain
}

func productName(p *ProductData) string {
	if p == nil {
		return ""
	}
	return p.Name
}
