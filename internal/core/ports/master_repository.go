package ports

import (
	"context"

	"loading/internal/core/domain/model/master"
)

// MasterRepository looks up and creates master entities by natural key. Find methods
// report a missing entity with found=false rather than an error; Add methods yield
// errs.ObjectAlreadyExistsError when the natural key is taken.
type MasterRepository interface {
	FindClientByCompanyName(ctx context.Context, companyName string) (*master.Client, bool, error)
	AddClient(ctx context.Context, client *master.Client) error

	FindDriverByDocumentNumber(ctx context.Context, documentNumber string) (*master.Driver, bool, error)
	AddDriver(ctx context.Context, driver *master.Driver) error

	FindTruckByDomain(ctx context.Context, domain string) (*master.Truck, bool, error)
	AddTruck(ctx context.Context, truck *master.Truck) error

	FindProductByName(ctx context.Context, name string) (*master.Product, bool, error)
	AddProduct(ctx context.Context, product *master.Product) error
}
