package orderrepo

import (
	"context"
	"errors"
	"time"

	"loading/internal/adapters/out/postgres/dberr"
	"loading/internal/core/domain/model/order"
	"loading/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. Updates are guarded by
// the version column.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.Number(), err)
		}
		return err
	}

	return nil
}

// Update writes every column of the order when the stored version still matches and
// bumps it. On success the aggregate carries the new version.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	next := aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("number = ? AND version = ?", dto.Number, dto.Version).
		Updates(map[string]any{
			"external_code":         dto.ExternalCode,
			"scheduled_date":        dto.ScheduledDate,
			"preset":                dto.Preset,
			"client_id":             dto.ClientID,
			"driver_id":             dto.DriverID,
			"truck_id":              dto.TruckID,
			"product_id":            dto.ProductID,
			"status":                dto.Status,
			"initial_weight":        dto.InitialWeight,
			"final_weight":          dto.FinalWeight,
			"activation_code":       dto.ActivationCode,
			"initial_weighing_at":   dto.InitialWeighingAt,
			"start_loading_at":      dto.StartLoadingAt,
			"end_weighing_at":       dto.EndWeighingAt,
			"last_timestamp":        dto.Readout.Timestamp,
			"last_accumulated_mass": dto.Readout.AccumulatedMass,
			"last_density":          dto.Readout.Density,
			"last_temperature":      dto.Readout.Temperature,
			"last_flow_rate":        dto.Readout.FlowRate,
			"version":               next,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("number = ?", dto.Number).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", dto.Number)
		}
		return errs.NewVersionIsInvalidError("order")
	}

	aggregate.SetVersion(next)
	return nil
}

// Get retrieves an order by number.
func (r *GormOrderRepository) Get(ctx context.Context, number string) (*order.Order, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("order_number")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStaleLoading retrieves orders in Loading that have been silent since before.
func (r *GormOrderRepository) GetStaleLoading(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(order.Loading)).
		Where("(last_timestamp IS NOT NULL AND last_timestamp < ?) OR (last_timestamp IS NULL AND start_loading_at < ?)",
			before.UTC(), before.UTC()).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GormOrderDetailRepository stores telemetry history rows.
type GormOrderDetailRepository struct {
	db *gorm.DB
}

func NewGormOrderDetailRepository(db *gorm.DB) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{db: db}
}

// Add inserts the detail and assigns the generated id back to it.
func (r *GormOrderDetailRepository) Add(ctx context.Context, detail *order.Detail) error {
	if err := detail.Validate(); err != nil {
		return err
	}

	dto := detailFromDomain(detail)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	detail.AssignID(dto.ID)
	return nil
}

// ListByOrder returns the telemetry history ordered by timestamp, then id.
func (r *GormOrderDetailRepository) ListByOrder(ctx context.Context, orderNumber string) ([]*order.Detail, error) {
	var dtos []OrderDetailDTO
	err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("measured_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	details := make([]*order.Detail, 0, len(dtos))
	for _, dto := range dtos {
		d, err := detailToDomain(dto)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}

// GormStatusLogRepository appends audit rows. It never updates or deletes.
type GormStatusLogRepository struct {
	db *gorm.DB
}

func NewGormStatusLogRepository(db *gorm.DB) *GormStatusLogRepository {
	return &GormStatusLogRepository{db: db}
}

// Append inserts one row per transition in a single statement.
func (r *GormStatusLogRepository) Append(ctx context.Context, transitions ...order.Transition) error {
	if len(transitions) == 0 {
		return nil
	}

	dtos := make([]StatusLogDTO, 0, len(transitions))
	for _, t := range transitions {
		dtos = append(dtos, statusLogFromDomain(t))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
