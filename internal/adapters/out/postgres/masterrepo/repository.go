package masterrepo

import (
	"context"
	"errors"

	"loading/internal/adapters/out/postgres/dberr"
	"loading/internal/core/domain/model/master"
	"loading/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMasterRepository implements MasterRepository using GORM.
type GormMasterRepository struct {
	db *gorm.DB
}

func NewGormMasterRepository(db *gorm.DB) *GormMasterRepository {
	return &GormMasterRepository{db: db}
}

func (r *GormMasterRepository) FindClientByCompanyName(
	ctx context.Context,
	companyName string,
) (*master.Client, bool, error) {
	var dto ClientDTO
	found, err := r.find(ctx, &dto, "company_name = ?", companyName)
	if err != nil || !found {
		return nil, false, err
	}
	c, err := clientToDomain(dto)
	return c, err == nil, err
}

func (r *GormMasterRepository) AddClient(ctx context.Context, c *master.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := clientFromDomain(c)
	return r.create(ctx, &dto, "client", c.CompanyName())
}

func (r *GormMasterRepository) FindDriverByDocumentNumber(
	ctx context.Context,
	documentNumber string,
) (*master.Driver, bool, error) {
	var dto DriverDTO
	found, err := r.find(ctx, &dto, "document_number = ?", documentNumber)
	if err != nil || !found {
		return nil, false, err
	}
	d, err := driverToDomain(dto)
	return d, err == nil, err
}

func (r *GormMasterRepository) AddDriver(ctx context.Context, d *master.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	dto := driverFromDomain(d)
	return r.create(ctx, &dto, "driver", d.DocumentNumber())
}

// FindTruckByDomain expects an already normalized domain.
func (r *GormMasterRepository) FindTruckByDomain(ctx context.Context, domain string) (*master.Truck, bool, error) {
	var dto TruckDTO
	found, err := r.find(ctx, &dto, "domain = ?", domain)
	if err != nil || !found {
		return nil, false, err
	}
	t, err := truckToDomain(dto)
	return t, err == nil, err
}

func (r *GormMasterRepository) AddTruck(ctx context.Context, t *master.Truck) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dto := truckFromDomain(t)
	return r.create(ctx, &dto, "truck", t.Domain())
}

func (r *GormMasterRepository) FindProductByName(ctx context.Context, name string) (*master.Product, bool, error) {
	var dto ProductDTO
	found, err := r.find(ctx, &dto, "name = ?", name)
	if err != nil || !found {
		return nil, false, err
	}
	p, err := productToDomain(dto)
	return p, err == nil, err
}

func (r *GormMasterRepository) AddProduct(ctx context.Context, p *master.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := productFromDomain(p)
	return r.create(ctx, &dto, "product", p.Name())
}

func (r *GormMasterRepository) find(ctx context.Context, dest any, query string, key string) (bool, error) {
	err := r.db.WithContext(ctx).Where(query, key).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *GormMasterRepository) create(ctx context.Context, dto any, kind, key string) error {
	err := r.db.WithContext(ctx).Create(dto).Error
	if dberr.IsUniqueViolation(err) {
		return errs.NewObjectAlreadyExistsErrorWithCause(kind, key, err)
	}
	return err
}
