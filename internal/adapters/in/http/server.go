// Package http exposes the fleet capacity operations over REST.
// It coordinates between HTTP handlers and application use cases; all
// domain decisions stay in the command and query handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"gasfleet/internal/adapters/out/reports"
	"gasfleet/internal/core/application/usecases/commands"
	"gasfleet/internal/core/application/usecases/queries"
	"gasfleet/internal/core/domain/model/kernel"
	"gasfleet/internal/core/domain/model/truck"
	"gasfleet/internal/core/domain/services"
	"gasfleet/internal/pkg/errs"
	"gasfleet/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewTruck is the request body for registering a truck.
type NewTruck struct {
	Plate             string  `json:"plate"`
	CapacityCylinders int     `json:"capacity_cylinders"`
	CapacityKg        float64 `json:"capacity_kg"`
}

// PlanRequest is the request body for a planning run.
type PlanRequest struct {
	Date string `json:"date"`
}

// LoadingItem is one proposed inventory position in a loading confirmation.
type LoadingItem struct {
	ProductID string   `json:"product_id"`
	QtyFull   int      `json:"qty_full"`
	QtyEmpty  int      `json:"qty_empty"`
	WeightKg  *float64 `json:"weight_kg,omitempty"`
}

// LoadingRequest is the request body for confirming a truck loading.
type LoadingRequest struct {
	Date  string        `json:"date"`
	Items []LoadingItem `json:"items"`
}

// Server implements the HTTP handlers for the fleet capacity API.
type Server struct {
	// Command handlers
	createTruckHandler      commands.CreateTruckCommandHandler
	planAllocationsHandler  commands.PlanAllocationsCommandHandler
	confirmLoadingHandler   commands.ConfirmLoadingCommandHandler
	cancelAllocationHandler commands.CancelAllocationCommandHandler

	// Query handlers
	getTruckCapacityHandler     queries.GetTruckCapacityQueryHandler
	getDailyScheduleHandler     queries.GetDailyScheduleQueryHandler
	getFleetUtilizationHandler  queries.GetFleetUtilizationQueryHandler
	getUnallocatedOrdersHandler queries.GetUnallocatedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createTruckHandler commands.CreateTruckCommandHandler,
	planAllocationsHandler commands.PlanAllocationsCommandHandler,
	confirmLoadingHandler commands.ConfirmLoadingCommandHandler,
	cancelAllocationHandler commands.CancelAllocationCommandHandler,
	getTruckCapacityHandler queries.GetTruckCapacityQueryHandler,
	getDailyScheduleHandler queries.GetDailyScheduleQueryHandler,
	getFleetUtilizationHandler queries.GetFleetUtilizationQueryHandler,
	getUnallocatedOrdersHandler queries.GetUnallocatedOrdersQueryHandler,
) *Server {
	return &Server{
		createTruckHandler:          createTruckHandler,
		planAllocationsHandler:      planAllocationsHandler,
		confirmLoadingHandler:       confirmLoadingHandler,
		cancelAllocationHandler:     cancelAllocationHandler,
		getTruckCapacityHandler:     getTruckCapacityHandler,
		getDailyScheduleHandler:     getDailyScheduleHandler,
		getFleetUtilizationHandler:  getFleetUtilizationHandler,
		getUnallocatedOrdersHandler: getUnallocatedOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/trucks", s.CreateTruck)
	api.GET("/trucks/:truckId/capacity", s.GetTruckCapacity)
	api.POST("/trucks/:truckId/loading", s.ConfirmLoading)
	api.POST("/allocations/plan", s.PlanAllocations)
	api.POST("/allocations/:allocationId/cancel", s.CancelAllocation)
	api.GET("/schedule", s.GetDailySchedule)
	api.GET("/schedule/export", s.ExportDailySchedule)
	api.GET("/fleet/utilization", s.GetFleetUtilization)
	api.GET("/orders/unallocated", s.GetUnallocatedOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateTruck handles POST /api/v1/trucks - registers a new truck.
func (s *Server) CreateTruck(ctx echo.Context) error {
	var newTruck NewTruck
	if err := ctx.Bind(&newTruck); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateTruckCommand(newTruck.Plate, newTruck.CapacityCylinders, newTruck.CapacityKg)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid truck data: " + err.Error(),
		})
	}

	if handleErr := s.createTruckHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create truck",
		})
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id": cmd.TruckID().String(),
	})
}

// PlanAllocations handles POST /api/v1/allocations/plan - runs a planning pass.
func (s *Server) PlanAllocations(ctx echo.Context) error {
	var req PlanRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	cmd, err := commands.NewPlanAllocationsCommand(date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid planning data: " + err.Error(),
		})
	}

	result, err := s.planAllocationsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Planning run failed",
		})
	}

	metrics.RecordPlanningRun(
		result.Summary.AllocatedOrders,
		len(result.Unallocated),
		result.Summary.FleetUtilizationPct,
	)

	return ctx.JSON(http.StatusOK, toOptimizationResponse(result))
}

// ConfirmLoading handles POST /api/v1/trucks/:truckId/loading.
func (s *Server) ConfirmLoading(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("truckId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid truck id",
		})
	}

	var req LoadingRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	items, err := toInventoryItems(req.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid loading items: " + err.Error(),
		})
	}

	cmd, err := commands.NewConfirmLoadingCommand(truckID, date, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid loading data: " + err.Error(),
		})
	}

	result, err := s.confirmLoadingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Loading confirmation failed")
	}

	if !result.IsValid {
		metrics.RecordLoadingRejection()
		return ctx.JSON(http.StatusUnprocessableEntity, toLoadingResponse(result))
	}

	return ctx.JSON(http.StatusOK, toLoadingResponse(result))
}

// CancelAllocation handles POST /api/v1/allocations/:allocationId/cancel.
func (s *Server) CancelAllocation(ctx echo.Context) error {
	allocationID, err := kernel.UUIDFromString(ctx.Param("allocationId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid allocation id",
		})
	}

	cmd, err := commands.NewCancelAllocationCommand(allocationID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	if handleErr := s.cancelAllocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.errorResponse(ctx, handleErr, "Failed to cancel allocation")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTruckCapacity handles GET /api/v1/trucks/:truckId/capacity?date=YYYY-MM-DD.
func (s *Server) GetTruckCapacity(ctx echo.Context) error {
	truckID, err := kernel.UUIDFromString(ctx.Param("truckId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid truck id",
		})
	}

	date, err := s.queryDate(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	query, err := queries.NewGetTruckCapacityQuery(truckID, date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	info, err := s.getTruckCapacityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to compute truck capacity")
	}

	return ctx.JSON(http.StatusOK, toCapacityResponse(info))
}

// GetDailySchedule handles GET /api/v1/schedule?date=YYYY-MM-DD.
func (s *Server) GetDailySchedule(ctx echo.Context) error {
	schedules, err := s.dailySchedules(ctx)
	if err != nil {
		return err
	}
	if schedules == nil {
		return nil // error response already written
	}

	response := make([]ScheduleEntry, len(schedules))
	for i, schedule := range schedules {
		response[i] = toScheduleEntry(schedule)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ExportDailySchedule handles GET /api/v1/schedule/export?date=YYYY-MM-DD.
// Streams the daily schedule as an xlsx workbook.
func (s *Server) ExportDailySchedule(ctx echo.Context) error {
	schedules, err := s.dailySchedules(ctx)
	if err != nil {
		return err
	}
	if schedules == nil {
		return nil
	}

	workbook, filename, err := reports.BuildDailyScheduleWorkbook(schedules)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render schedule workbook",
		})
	}
	defer func() { _ = workbook.Close() }()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render schedule workbook",
		})
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GetFleetUtilization handles GET /api/v1/fleet/utilization?date=YYYY-MM-DD.
func (s *Server) GetFleetUtilization(ctx echo.Context) error {
	date, err := s.queryDate(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	query, err := queries.NewGetFleetUtilizationQuery(date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	summary, err := s.getFleetUtilizationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute fleet utilization",
		})
	}

	metrics.SetFleetUtilization(summary.UtilizationPct)

	return ctx.JSON(http.StatusOK, toUtilizationResponse(summary))
}

// GetUnallocatedOrders handles GET /api/v1/orders/unallocated?date=YYYY-MM-DD.
func (s *Server) GetUnallocatedOrders(ctx echo.Context) error {
	date, err := s.queryDate(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	query, err := queries.NewGetUnallocatedOrdersQuery(date)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	orders, err := s.getUnallocatedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve unallocated orders",
		})
	}

	response := make([]UnallocatedOrder, len(orders))
	for i, o := range orders {
		response[i] = UnallocatedOrder{
			ID:           o.ID.String(),
			CustomerID:   o.CustomerID.String(),
			DeliveryDate: o.DeliveryDate.Format(dateLayout),
			LinesCount:   o.LinesCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// dailySchedules resolves the date parameter and runs the schedule query.
// On failure it writes the error response itself and returns (nil, nil).
func (s *Server) dailySchedules(ctx echo.Context) ([]services.DailySchedule, error) {
	date, err := s.queryDate(ctx)
	if err != nil {
		return nil, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	query, err := queries.NewGetDailyScheduleQuery(date)
	if err != nil {
		return nil, ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	schedules, err := s.getDailyScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return nil, ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build daily schedule",
		})
	}

	return schedules, nil
}

// queryDate parses the mandatory date query parameter.
func (s *Server) queryDate(ctx echo.Context) (time.Time, error) {
	raw := ctx.QueryParam("date")
	if raw == "" {
		return time.Time{}, errors.New("date query parameter is required")
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
	}

	return date, nil
}

// errorResponse maps application errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error, message string) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}

// toInventoryItems converts request items into domain inventory items.
func toInventoryItems(items []LoadingItem) ([]truck.InventoryItem, error) {
	result := make([]truck.InventoryItem, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		domainItem, err := truck.NewInventoryItem(productID, item.QtyFull, item.QtyEmpty, item.WeightKg)
		if err != nil {
			return nil, err
		}
		result = append(result, domainItem)
	}

	return result, nil
}
