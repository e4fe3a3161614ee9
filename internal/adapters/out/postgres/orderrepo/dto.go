// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, its telemetry
// history and its status log, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number is the primary key; references to masters are plain uuid columns.
type OrderDTO struct {
	Number        string `gorm:"primaryKey;size:64"`
	ExternalCode  string `gorm:"size:128"`
	ScheduledDate time.Time
	Preset        float64

	ClientID  *uuid.UUID `gorm:"type:uuid;index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	TruckID   *uuid.UUID `gorm:"type:uuid;index"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`

	Status         int `gorm:"index"`
	InitialWeight  *float64
	FinalWeight    *float64
	ActivationCode *string `gorm:"size:5"`

	InitialWeighingAt *time.Time
	StartLoadingAt    *time.Time
	EndWeighingAt     *time.Time

	Readout ReadoutDTO `gorm:"embedded;embeddedPrefix:last_"`

	Version   int
	CreatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ReadoutDTO is the live readout embedded in the order row. All columns are null
// until the first reading arrives.
type ReadoutDTO struct {
	Timestamp       *time.Time
	AccumulatedMass *float64
	Density         *float64
	Temperature     *float64
	FlowRate        *float64
}

// OrderDetailDTO is one persisted telemetry message.
type OrderDetailDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	OrderNumber     string    `gorm:"size:64;index:idx_order_details_order_ts,priority:1;not null"`
	Timestamp       time.Time `gorm:"column:measured_at;index:idx_order_details_order_ts,priority:2;not null"`
	AccumulatedMass float64
	Density         float64
	Temperature     float64
	FlowRate        float64
	CreatedAt       time.Time
}

func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// StatusLogDTO is one row of the append-only audit trail. Statuses are stored by name
// so the trail stays readable without the application.
type StatusLogDTO struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	OrderNumber string  `gorm:"size:64;index;not null"`
	FromStatus  *string `gorm:"size:32"`
	ToStatus    string  `gorm:"size:32;not null"`
	Actor       string  `gorm:"size:32;not null"`
	Note        string
	ChangedAt   time.Time
}

func (StatusLogDTO) TableName() string {
	return "order_status_logs"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	refs := o.References()
	dto := OrderDTO{
		Number:            o.Number(),
		ExternalCode:      o.ExternalCode(),
		ScheduledDate:     o.ScheduledDate(),
		Preset:            o.Preset(),
		ClientID:          uuidPtr(refs.Client),
		DriverID:          uuidPtr(refs.Driver),
		TruckID:           uuidPtr(refs.Truck),
		ProductID:         uuidPtr(refs.Product),
		Status:            int(o.Status()),
		InitialWeight:     weightPtr(o.InitialWeight()),
		FinalWeight:       weightPtr(o.FinalWeight()),
		InitialWeighingAt: o.InitialWeighingAt(),
		StartLoadingAt:    o.StartLoadingAt(),
		EndWeighingAt:     o.EndWeighingAt(),
		Version:           o.Version(),
	}

	if code := o.ActivationCode(); code != nil {
		s := code.String()
		dto.ActivationCode = &s
	}

	if r := o.Readout(); r != nil {
		ts := r.Timestamp()
		mass, density, temp, flow := r.AccumulatedMass(), r.Density(), r.Temperature(), r.FlowRate()
		dto.Readout = ReadoutDTO{
			Timestamp:       &ts,
			AccumulatedMass: &mass,
			Density:         &density,
			Temperature:     &temp,
			FlowRate:        &flow,
		}
	}

	return dto
}

// toDomain reconstructs the aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	s := order.Snapshot{
		Number:            dto.Number,
		ExternalCode:      dto.ExternalCode,
		ScheduledDate:     dto.ScheduledDate.UTC(),
		Preset:            dto.Preset,
		Status:            order.Status(dto.Status),
		InitialWeighingAt: utcPtr(dto.InitialWeighingAt),
		StartLoadingAt:    utcPtr(dto.StartLoadingAt),
		EndWeighingAt:     utcPtr(dto.EndWeighingAt),
		Version:           dto.Version,
	}

	var err error
	if s.References.Client, err = kernelPtr(dto.ClientID); err != nil {
		return nil, err
	}
	if s.References.Driver, err = kernelPtr(dto.DriverID); err != nil {
		return nil, err
	}
	if s.References.Truck, err = kernelPtr(dto.TruckID); err != nil {
		return nil, err
	}
	if s.References.Product, err = kernelPtr(dto.ProductID); err != nil {
		return nil, err
	}

	if s.InitialWeight, err = restoreWeight(dto.InitialWeight); err != nil {
		return nil, err
	}
	if s.FinalWeight, err = restoreWeight(dto.FinalWeight); err != nil {
		return nil, err
	}

	if dto.ActivationCode != nil {
		code, codeErr := kernel.ActivationCodeFromString(*dto.ActivationCode)
		if codeErr != nil {
			return nil, codeErr
		}
		s.ActivationCode = &code
	}

	if r := dto.Readout; r.Timestamp != nil {
		reading, readErr := order.NewReading(
			*r.Timestamp,
			deref(r.AccumulatedMass),
			deref(r.Density),
			deref(r.Temperature),
			deref(r.FlowRate),
		)
		if readErr != nil {
			return nil, readErr
		}
		s.Readout = &reading
	}

	return order.RestoreOrder(s)
}

func detailFromDomain(d *order.Detail) OrderDetailDTO {
	r := d.Reading()
	return OrderDetailDTO{
		ID:              d.ID(),
		OrderNumber:     d.OrderNumber(),
		Timestamp:       r.Timestamp(),
		AccumulatedMass: r.AccumulatedMass(),
		Density:         r.Density(),
		Temperature:     r.Temperature(),
		FlowRate:        r.FlowRate(),
	}
}

func detailToDomain(dto OrderDetailDTO) (*order.Detail, error) {
	r, err := order.NewReading(dto.Timestamp, dto.AccumulatedMass, dto.Density, dto.Temperature, dto.FlowRate)
	if err != nil {
		return nil, err
	}
	return order.RestoreDetail(dto.ID, dto.OrderNumber, r)
}

func statusLogFromDomain(t order.Transition) StatusLogDTO {
	dto := StatusLogDTO{
		OrderNumber: t.OrderNumber,
		ToStatus:    t.To.String(),
		Actor:       string(t.Actor),
		Note:        t.Note,
		ChangedAt:   t.At.UTC(),
	}
	if t.From != nil {
		from := t.From.String()
		dto.FromStatus = &from
	}
	return dto
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func weightPtr(w *kernel.Weight) *float64 {
	if w == nil {
		return nil
	}
	kg := w.Kilograms()
	return &kg
}

func restoreWeight(kg *float64) (*kernel.Weight, error) {
	if kg == nil {
		return nil, nil
	}
	w, err := kernel.NewWeight(*kg)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
