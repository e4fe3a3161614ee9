package commands

import (
	"context"
	"errors"

	"loading/internal/core/application/intake"
	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/master"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/ports"
	"loading/internal/pkg/errs"
)

// MasterResolver turns the master blocks of an intake payload into references,
// creating masters seen for the first time. There is no global lock: when a
// concurrent intake creates the same master first, the unique key rejects our insert
// and the lookup is retried once.
type MasterResolver struct {
	repo ports.MasterRepository
}

func NewMasterResolver(repo ports.MasterRepository) MasterResolver {
	return MasterResolver{repo: repo}
}

// Resolve returns a reference for every block whose natural key is present.
func (r MasterResolver) Resolve(ctx context.Context, p intake.Payload) (order.References, error) {
	var refs order.References

	if p.Client != nil && p.Client.CompanyName != "" {
		c, err := findOrCreate(ctx,
			func(ctx context.Context) (*master.Client, bool, error) {
				return r.repo.FindClientByCompanyName(ctx, p.Client.CompanyName)
			},
			func() (*master.Client, error) {
				return master.NewClient(p.Client.CompanyName, p.Client.ContactName, p.Client.Email)
			},
			r.repo.AddClient,
		)
		if err != nil {
			return order.References{}, err
		}
		refs.Client = idOf(c.ID())
	}

	if p.Driver != nil && p.Driver.DocumentNumber != "" {
		d, err := findOrCreate(ctx,
			func(ctx context.Context) (*master.Driver, bool, error) {
				return r.repo.FindDriverByDocumentNumber(ctx, p.Driver.DocumentNumber)
			},
			func() (*master.Driver, error) {
				return master.NewDriver(p.Driver.DocumentNumber, p.Driver.FirstName, p.Driver.LastName)
			},
			r.repo.AddDriver,
		)
		if err != nil {
			return order.References{}, err
		}
		refs.Driver = idOf(d.ID())
	}

	if p.Truck != nil && p.Truck.Domain != "" {
		domain := master.NormalizeDomain(p.Truck.Domain)
		t, err := findOrCreate(ctx,
			func(ctx context.Context) (*master.Truck, bool, error) {
				return r.repo.FindTruckByDomain(ctx, domain)
			},
			func() (*master.Truck, error) {
				return master.NewTruck(domain, p.Truck.Description, p.Truck.Capacity)
			},
			r.repo.AddTruck,
		)
		if err != nil {
			return order.References{}, err
		}
		refs.Truck = idOf(t.ID())
	}

	if p.Product != nil && p.Product.Name != "" {
		pr, err := findOrCreate(ctx,
			func(ctx context.Context) (*master.Product, bool, error) {
				return r.repo.FindProductByName(ctx, p.Product.Name)
			},
			func() (*master.Product, error) {
				return master.NewProduct(p.Product.Name, p.Product.Description)
			},
			r.repo.AddProduct,
		)
		if err != nil {
			return order.References{}, err
		}
		refs.Product = idOf(pr.ID())
	}

	return refs, nil
}

func findOrCreate[T any](
	ctx context.Context,
	find func(context.Context) (*T, bool, error),
	build func() (*T, error),
	add func(context.Context, *T) error,
) (*T, error) {
	existing, found, err := find(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return existing, nil
	}

	created, err := build()
	if err != nil {
		return nil, err
	}

	err = add(ctx, created)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, errs.ErrObjectAlreadyExists) {
		return nil, err
	}

	existing, found, err = find(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewProcessingFailureError("resolve master", errors.New("created concurrently but not visible"))
	}
	return existing, nil
}

func idOf(id kernel.UUID) *kernel.UUID {
	return &id
}
