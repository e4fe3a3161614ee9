// Package masterrepo persists the master entities orders refer to. Every table has a
// unique index on its natural key, which is what makes find-or-create safe without a
// global lock.
package masterrepo

import (
	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/master"

	"github.com/google/uuid"
)

type ClientDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName string    `gorm:"size:255;uniqueIndex;not null"`
	ContactName string    `gorm:"size:255"`
	Email       string    `gorm:"size:255"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DocumentNumber string    `gorm:"size:64;uniqueIndex;not null"`
	FirstName      string    `gorm:"size:128"`
	LastName       string    `gorm:"size:128"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

type TruckDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Domain      string    `gorm:"size:32;uniqueIndex;not null"`
	Description string    `gorm:"size:255"`
	Capacity    float64
}

func (TruckDTO) TableName() string {
	return "trucks"
}

type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:255;uniqueIndex;not null"`
	Description string    `gorm:"size:255"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func clientFromDomain(c *master.Client) ClientDTO {
	return ClientDTO{ID: c.ID().Bytes(), CompanyName: c.CompanyName(), ContactName: c.ContactName(), Email: c.Email()}
}

func clientToDomain(dto ClientDTO) (*master.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return master.RestoreClient(id, dto.CompanyName, dto.ContactName, dto.Email)
}

func driverFromDomain(d *master.Driver) DriverDTO {
	return DriverDTO{ID: d.ID().Bytes(), DocumentNumber: d.DocumentNumber(), FirstName: d.FirstName(), LastName: d.LastName()}
}

func driverToDomain(dto DriverDTO) (*master.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return master.RestoreDriver(id, dto.DocumentNumber, dto.FirstName, dto.LastName)
}

func truckFromDomain(t *master.Truck) TruckDTO {
	return TruckDTO{ID: t.ID().Bytes(), Domain: t.Domain(), Description: t.Description(), Capacity: t.Capacity()}
}

func truckToDomain(dto TruckDTO) (*master.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return master.RestoreTruck(id, dto.Domain, dto.Description, dto.Capacity)
}

func productFromDomain(p *master.Product) ProductDTO {
	return ProductDTO{ID: p.ID().Bytes(), Name: p.Name(), Description: p.Description()}
}

func productToDomain(dto ProductDTO) (*master.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return master.RestoreProduct(id, dto.Name, dto.Description)
}
