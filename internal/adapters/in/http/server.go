package http

import (
	"io"
	"net/http"

	"loading/internal/core/application/intake"
	"loading/internal/core/application/usecases/commands"
	"loading/internal/core/application/usecases/queries"
	"loading/internal/generated/servers"
	"loading/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the REST adapter exposes.
type Handlers struct {
	// Command handlers
	CreateOrder             commands.CreateOrderFromPayloadCommandHandler
	RegisterInitialWeighing commands.RegisterInitialWeighingCommandHandler
	RegisterFinalWeighing   commands.RegisterFinalWeighingCommandHandler
	IngestTelemetry         commands.IngestTelemetryCommandHandler
	UpdateAlertConfig       commands.UpdateAlertConfigCommandHandler
	ResetAlertDedup         commands.ResetAlertDedupCommandHandler
	AcknowledgeAlarm        commands.AcknowledgeAlarmCommandHandler

	// Query handlers
	GetOrder          queries.GetOrderQueryHandler
	ListOrderDetails  queries.ListOrderDetailsQueryHandler
	ListStatusLog     queries.ListStatusLogQueryHandler
	GetReconciliation queries.GetReconciliationQueryHandler
	ListAlarms        queries.ListAlarmsQueryHandler
	GetAlertConfig    queries.GetAlertConfigQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// CreateErpOrder handles POST /api/v1/orders/erp.
func (s *Server) CreateErpOrder(ctx echo.Context) error {
	return s.createOrder(ctx, intake.ERP)
}

// CreateChargingOrder handles POST /api/v1/orders/charging.
func (s *Server) CreateChargingOrder(ctx echo.Context) error {
	return s.createOrder(ctx, intake.Charging)
}

func (s *Server) createOrder(ctx echo.Context, schema intake.Schema) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	doc, err := intake.ParseDocument(body)
	if err != nil {
		return fail(ctx, "create order", err)
	}

	cmd, err := commands.NewCreateOrderFromPayloadCommand(doc, schema)
	if err != nil {
		return fail(ctx, "create order", err)
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "create order", err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, o.Number())
}

// GetOrder handles GET /api/v1/orders/{orderNumber}.
func (s *Server) GetOrder(ctx echo.Context, orderNumber string) error {
	return s.respondWithOrder(ctx, http.StatusOK, orderNumber)
}

// RegisterInitialWeighing handles POST /api/v1/orders/{orderNumber}/initial-weighing.
func (s *Server) RegisterInitialWeighing(ctx echo.Context, orderNumber string) error {
	weight, err := bindWeight(ctx)
	if err != nil {
		return fail(ctx, "register initial weighing", err)
	}

	cmd, err := commands.NewRegisterInitialWeighingCommand(orderNumber, weight)
	if err != nil {
		return fail(ctx, "register initial weighing", err)
	}

	if _, err = s.h.RegisterInitialWeighing.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "register initial weighing", err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderNumber)
}

// RegisterFinalWeighing handles POST /api/v1/orders/{orderNumber}/final-weighing.
func (s *Server) RegisterFinalWeighing(ctx echo.Context, orderNumber string) error {
	weight, err := bindWeight(ctx)
	if err != nil {
		return fail(ctx, "register final weighing", err)
	}

	cmd, err := commands.NewRegisterFinalWeighingCommand(orderNumber, weight)
	if err != nil {
		return fail(ctx, "register final weighing", err)
	}

	if _, err = s.h.RegisterFinalWeighing.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, "register final weighing", err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderNumber)
}

// IngestTelemetry handles POST /api/v1/orders/{orderNumber}/telemetry.
func (s *Server) IngestTelemetry(ctx echo.Context, orderNumber string) error {
	var req servers.TelemetryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validateTelemetry(req); err != nil {
		return fail(ctx, "ingest telemetry", err)
	}

	cmd, err := commands.NewIngestTelemetryCommand(
		orderNumber,
		*req.Timestamp,
		*req.AccumulatedMass,
		*req.Density,
		*req.Temperature,
		*req.FlowRate,
	)
	if err != nil {
		return fail(ctx, "ingest telemetry", err)
	}

	result, err := s.h.IngestTelemetry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "ingest telemetry", err)
	}

	return ctx.JSON(http.StatusCreated, toTelemetryResponse(result))
}

// GetOrderDetails handles GET /api/v1/orders/{orderNumber}/details.
func (s *Server) GetOrderDetails(ctx echo.Context, orderNumber string) error {
	query, err := queries.NewListOrderDetailsQuery(orderNumber)
	if err != nil {
		return fail(ctx, "list order details", err)
	}

	details, err := s.h.ListOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "list order details", err)
	}

	response := make([]servers.OrderDetail, len(details))
	for i, d := range details {
		response[i] = toOrderDetail(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStatusLog handles GET /api/v1/orders/{orderNumber}/status-log.
func (s *Server) GetOrderStatusLog(ctx echo.Context, orderNumber string) error {
	query, err := queries.NewListStatusLogQuery(orderNumber)
	if err != nil {
		return fail(ctx, "list status log", err)
	}

	entries, err := s.h.ListStatusLog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "list status log", err)
	}

	response := make([]servers.StatusLogEntry, len(entries))
	for i, e := range entries {
		response[i] = toStatusLogEntry(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderConciliation handles GET /api/v1/orders/{orderNumber}/conciliation.
func (s *Server) GetOrderConciliation(ctx echo.Context, orderNumber string) error {
	query, err := queries.NewGetReconciliationQuery(orderNumber)
	if err != nil {
		return fail(ctx, "get conciliation", err)
	}

	c, err := s.h.GetReconciliation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "get conciliation", err)
	}

	return ctx.JSON(http.StatusOK, toConciliation(c))
}

// GetAlertConfig handles GET /api/v1/alerts/config.
func (s *Server) GetAlertConfig(ctx echo.Context) error {
	cfg, err := s.h.GetAlertConfig.Handle(ctx.Request().Context(), queries.NewGetAlertConfigQuery())
	if err != nil {
		return fail(ctx, "get alert config", err)
	}

	return ctx.JSON(http.StatusOK, servers.AlertConfig{
		Threshold:        cfg.Threshold,
		Recipients:       nonNil(cfg.Recipients),
		EmailAlreadySent: cfg.EmailAlreadySent,
	})
}

// UpdateAlertConfig handles PUT /api/v1/alerts/config.
func (s *Server) UpdateAlertConfig(ctx echo.Context) error {
	var req servers.UpdateAlertConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.Threshold == nil {
		return fail(ctx, "update alert config", errs.NewValueIsRequiredError("threshold"))
	}

	cmd, err := commands.NewUpdateAlertConfigCommand(*req.Threshold, req.Recipients)
	if err != nil {
		return fail(ctx, "update alert config", err)
	}

	cfg, err := s.h.UpdateAlertConfig.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "update alert config", err)
	}

	return ctx.JSON(http.StatusOK, servers.AlertConfig{
		Threshold:        cfg.Threshold(),
		Recipients:       nonNil(cfg.Recipients()),
		EmailAlreadySent: cfg.EmailAlreadySent(),
	})
}

// ResetAlertDedup handles POST /api/v1/alerts/reset.
func (s *Server) ResetAlertDedup(ctx echo.Context) error {
	if err := s.h.ResetAlertDedup.Handle(ctx.Request().Context(), commands.NewResetAlertDedupCommand()); err != nil {
		return fail(ctx, "reset alert dedup", err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetAlarms handles GET /api/v1/alarms.
func (s *Server) GetAlarms(ctx echo.Context, params servers.GetAlarmsParams) error {
	onlyUnacknowledged := params.Unacknowledged != nil && *params.Unacknowledged

	alarms, err := s.h.ListAlarms.Handle(ctx.Request().Context(), queries.NewListAlarmsQuery(onlyUnacknowledged))
	if err != nil {
		return fail(ctx, "list alarms", err)
	}

	response := make([]servers.Alarm, len(alarms))
	for i, a := range alarms {
		response[i] = alarmFromQuery(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcknowledgeAlarm handles POST /api/v1/alarms/{alarmId}/acknowledge.
func (s *Server) AcknowledgeAlarm(ctx echo.Context, alarmID int64) error {
	var req servers.AcknowledgeAlarmRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	observations := ""
	if req.Observations != nil {
		observations = *req.Observations
	}

	cmd, err := commands.NewAcknowledgeAlarmCommand(alarmID, req.User, observations)
	if err != nil {
		return fail(ctx, "acknowledge alarm", err)
	}

	a, err := s.h.AcknowledgeAlarm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, "acknowledge alarm", err)
	}

	return ctx.JSON(http.StatusOK, alarmFromDomain(a))
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, orderNumber string) error {
	query, err := queries.NewGetOrderQuery(orderNumber)
	if err != nil {
		return fail(ctx, "get order", err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, "get order", err)
	}

	return ctx.JSON(status, toOrder(o))
}

func bindWeight(ctx echo.Context) (float64, error) {
	var req servers.WeighingRequest
	if err := ctx.Bind(&req); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if req.Weight == nil {
		return 0, errs.NewValueIsRequiredError("weight")
	}
	return *req.Weight, nil
}

func validateTelemetry(req servers.TelemetryRequest) error {
	switch {
	case req.Timestamp == nil:
		return errs.NewValueIsRequiredError("timestamp")
	case req.AccumulatedMass == nil:
		return errs.NewValueIsRequiredError("accumulated_mass")
	case req.Density == nil:
		return errs.NewValueIsRequiredError("density")
	case req.Temperature == nil:
		return errs.NewValueIsRequiredError("temperature")
	case req.FlowRate == nil:
		return errs.NewValueIsRequiredError("flow_rate")
	}
	return nil
}
