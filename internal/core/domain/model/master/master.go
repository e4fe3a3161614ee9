package master

import (
	"errors"
	"strings"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/pkg/errs"
)

var (
	ErrClientIsNotConstructed  = errors.New("Client must be created via NewClient or RestoreClient")
	ErrDriverIsNotConstructed  = errors.New("Driver must be created via NewDriver or RestoreDriver")
	ErrTruckIsNotConstructed   = errors.New("Truck must be created via NewTruck or RestoreTruck")
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// NormalizeDomain canonicalizes a licence plate so "ab 123 cd" and "AB123CD" match.
func NormalizeDomain(domain string) string {
	return strings.ToUpper(strings.Join(strings.Fields(domain), ""))
}

func requireKey(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(name)
	}
	return value, nil
}

func validateID(id kernel.UUID) error {
	return id.Validate()
}

// Client is the company the product is loaded for.
type Client struct {
	id          kernel.UUID
	companyName string
	contactName string
	email       string
}

func NewClient(companyName, contactName, email string) (*Client, error) {
	return RestoreClient(kernel.NewUUID(), companyName, contactName, email)
}

func RestoreClient(id kernel.UUID, companyName, contactName, email string) (*Client, error) {
	name, err := requireKey("client.company_name", companyName)
	if err = errors.Join(err, validateID(id)); err != nil {
		return nil, err
	}
	return &Client{
		id:          id,
		companyName: name,
		contactName: strings.TrimSpace(contactName),
		email:       strings.TrimSpace(email),
	}, nil
}

func (c *Client) Validate() error {
	if c == nil || c.id.Validate() != nil {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID { return c.id }
func (c *Client) CompanyName() string { return c.companyName }
func (c *Client) ContactName() string { return c.contactName }
func (c *Client) Email() string { return c.email }

// Driver is identified by the document number printed on the loading pass.
type Driver struct {
	id             kernel.UUID
	documentNumber string
	firstName      string
	lastName       string
}

func NewDriver(documentNumber, firstName, lastName string) (*Driver, error) {
	return RestoreDriver(kernel.NewUUID(), documentNumber, firstName, lastName)
}

func RestoreDriver(id kernel.UUID, documentNumber, firstName, lastName string) (*Driver, error) {
	doc, err := requireKey("driver.document_number", documentNumber)
	if err = errors.Join(err, validateID(id)); err != nil {
		return nil, err
	}
	return &Driver{
		id:             id,
		documentNumber: doc,
		firstName:      strings.TrimSpace(firstName),
		lastName:       strings.TrimSpace(lastName),
	}, nil
}

func (d *Driver) Validate() error {
	if d == nil || d.id.Validate() != nil {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID { return d.id }
func (d *Driver) DocumentNumber() string { return d.documentNumber }
func (d *Driver) FirstName() string { return d.firstName }
func (d *Driver) LastName() string { return d.lastName }

// Truck is the tanker being loaded.
type Truck struct {
	id          kernel.UUID
	domain      string
	description string
	capacity    float64
}

func NewTruck(domain, description string, capacity float64) (*Truck, error) {
	return RestoreTruck(kernel.NewUUID(), domain, description, capacity)
}

func RestoreTruck(id kernel.UUID, domain, description string, capacity float64) (*Truck, error) {
	plate, err := requireKey("truck.domain", NormalizeDomain(domain))
	if capacity < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("truck.capacity", capacity, 0, "+Inf"))
	}
	if err = errors.Join(err, validateID(id)); err != nil {
		return nil, err
	}
	return &Truck{
		id:          id,
		domain:      plate,
		description: strings.TrimSpace(description),
		capacity:    capacity,
	}, nil
}

func (t *Truck) Validate() error {
	if t == nil || t.id.Validate() != nil {
		return ErrTruckIsNotConstructed
	}
	return nil
}

func (t *Truck) ID() kernel.UUID { return t.id }
func (t *Truck) Domain() string { return t.domain }
func (t *Truck) Description() string { return t.description }
func (t *Truck) Capacity() float64 { return t.capacity }

// Product is the bulk product being loaded.
type Product struct {
	id          kernel.UUID
	name        string
	description string
}

func NewProduct(name, description string) (*Product, error) {
	return RestoreProduct(kernel.NewUUID(), name, description)
}

func RestoreProduct(id kernel.UUID, name, description string) (*Product, error) {
	n, err := requireKey("product.name", name)
	if err = errors.Join(err, validateID(id)); err != nil {
		return nil, err
	}
	return &Product{id: id, name: n, description: strings.TrimSpace(description)}, nil
}

func (p *Product) Validate() error {
	if p == nil || p.id.Validate() != nil {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
