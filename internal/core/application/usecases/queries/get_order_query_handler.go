package queries

import (
	"context"
	"time"

	"loading/internal/core/domain/model/order"
	"loading/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order joined with its masters.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order retrieval queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	Number            string
	ExternalCode      string
	ScheduledDate     time.Time
	Preset            float64
	Status            int
	ClientName        *string
	DriverDocument    *string
	TruckDomain       *string
	ProductName       *string
	InitialWeight     *float64
	FinalWeight       *float64
	ActivationCode    *string
	InitialWeighingAt *time.Time
	StartLoadingAt    *time.Time
	EndWeighingAt     *time.Time

	LastTimestamp       *time.Time
	LastAccumulatedMass *float64
	LastDensity         *float64
	LastTemperature     *float64
	LastFlowRate        *float64
}

// Handle yields errs.ObjectNotFoundError for an unknown order number.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row orderRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.external_code,
			o.scheduled_date,
			o.preset,
			o.status,
			c.company_name AS client_name,
			d.document_number AS driver_document,
			t.domain AS truck_domain,
			p.name AS product_name,
			o.initial_weight,
			o.final_weight,
			o.activation_code,
			o.initial_weighing_at,
			o.start_loading_at,
			o.end_weighing_at,
			o.last_timestamp,
			o.last_accumulated_mass,
			o.last_density,
			o.last_temperature,
			o.last_flow_rate
		FROM orders o
		LEFT JOIN clients c ON c.id = o.client_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN trucks t ON t.id = o.truck_id
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.number = ?
	`, query.OrderNumber()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNumber())
	}

	resp := GetOrderQueryResponse{
		Number:            row.Number,
		ExternalCode:      row.ExternalCode,
		ScheduledDate:     row.ScheduledDate.UTC(),
		Preset:            row.Preset,
		Status:            order.Status(row.Status).String(),
		Client:            row.ClientName,
		Driver:            row.DriverDocument,
		Truck:             row.TruckDomain,
		Product:           row.ProductName,
		InitialWeight:     row.InitialWeight,
		FinalWeight:       row.FinalWeight,
		ActivationCode:    row.ActivationCode,
		InitialWeighingAt: row.InitialWeighingAt,
		StartLoadingAt:    row.StartLoadingAt,
		EndWeighingAt:     row.EndWeighingAt,
	}

	if row.LastTimestamp != nil {
		resp.Readout = &ReadoutResponse{
			Timestamp:       row.LastTimestamp.UTC(),
			AccumulatedMass: valueOf(row.LastAccumulatedMass),
			Density:         valueOf(row.LastDensity),
			Temperature:     valueOf(row.LastTemperature),
			FlowRate:        valueOf(row.LastFlowRate),
		}
	}

	return resp, nil
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
