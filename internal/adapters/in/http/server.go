// Package http exposes the application over two surfaces: the messaging
// gateway webhook at POST /api/v1/events, which drives the conversational
// flows, and a small staff REST API for order review and monitoring.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler    commands.RegisterUserCommandHandler
	acceptAgreementHandler commands.AcceptAgreementCommandHandler
	startWizardHandler     commands.StartWizardCommandHandler
	advanceWizardHandler   commands.AdvanceWizardCommandHandler
	acceptOrderHandler     commands.AcceptOrderCommandHandler
	rejectOrderHandler     commands.RejectOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	failOrderHandler       commands.FailOrderCommandHandler

	// Query handlers
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderDetailsHandler   queries.GetOrderDetailsQueryHandler
	getUserOrdersHandler     queries.GetUserOrdersQueryHandler
	getStatsHandler          queries.GetStatsQueryHandler
	getProfileHandler        queries.GetProfileQueryHandler
	checkAdminHandler        queries.CheckAdminQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	acceptAgreementHandler commands.AcceptAgreementCommandHandler,
	startWizardHandler commands.StartWizardCommandHandler,
	advanceWizardHandler commands.AdvanceWizardCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	failOrderHandler commands.FailOrderCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
	checkAdminHandler queries.CheckAdminQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		acceptAgreementHandler:   acceptAgreementHandler,
		startWizardHandler:       startWizardHandler,
		advanceWizardHandler:     advanceWizardHandler,
		acceptOrderHandler:       acceptOrderHandler,
		rejectOrderHandler:       rejectOrderHandler,
		completeOrderHandler:     completeOrderHandler,
		failOrderHandler:         failOrderHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderDetailsHandler:   getOrderDetailsHandler,
		getUserOrdersHandler:     getUserOrdersHandler,
		getStatsHandler:          getStatsHandler,
		getProfileHandler:        getProfileHandler,
		checkAdminHandler:        checkAdminHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/events", s.HandleEvent)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderDetails)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/fail", s.FailOrder)

	api.GET("/users/:id/orders", s.GetUserOrders)
	api.GET("/stats", s.GetStats)
}

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// httpError maps application errors onto HTTP status codes.
func httpError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// OrderView is the staff-facing JSON representation of one order.
type OrderView struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	Category    string `json:"category"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Budget      string `json:"budget"`
	Status      string `json:"status"`
	Comment     string `json:"comment,omitempty"`
}

func toOrderView(resp queries.OrderResponse) OrderView {
	return OrderView{
		ID:          resp.ID,
		UserID:      resp.UserID,
		CreatedAt:   resp.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		Category:    resp.Category.String(),
		Platform:    resp.Platform.String(),
		Description: resp.Description,
		Currency:    resp.Currency.String(),
		Budget:      resp.Budget,
		Status:      resp.Status.String(),
		Comment:     resp.Comment,
	}
}

// GetOrders handles GET /api/v1/orders. An optional status parameter narrows
// the listing to one queue.
func (s *Server) GetOrders(ctx echo.Context) error {
	rawStatus := ctx.QueryParam("status")

	var orders []queries.OrderResponse
	var err error
	if rawStatus == "" {
		orders, err = s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	} else {
		status, parseErr := order.ParseStatus(rawStatus)
		if parseErr != nil {
			return httpError(ctx, parseErr)
		}

		query, queryErr := queries.NewGetOrdersByStatusQuery(status)
		if queryErr != nil {
			return httpError(ctx, queryErr)
		}
		orders, err = s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	}
	if err != nil {
		return httpError(ctx, err)
	}

	views := make([]OrderView, len(orders))
	for i, resp := range orders {
		views[i] = toOrderView(resp)
	}
	return ctx.JSON(http.StatusOK, views)
}

// OrderDetailsView is one order plus the owner's contact data.
type OrderDetailsView struct {
	Order       OrderView `json:"order"`
	OwnerHandle string    `json:"owner_handle,omitempty"`
	OwnerName   string    `json:"owner_name"`
}

// GetOrderDetails handles GET /api/v1/orders/:id.
func (s *Server) GetOrderDetails(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return httpError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return httpError(ctx, err)
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return httpError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetailsView{
		Order:       toOrderView(details.Order),
		OwnerHandle: details.OwnerHandle,
		OwnerName:   details.OwnerName,
	})
}

// StaffActionRequest identifies the staff user performing a lifecycle action.
// Reason is only meaningful for rejections and may be empty.
type StaffActionRequest struct {
	ActorID int64  `json:"actor_id"`
	Reason  string `json:"reason,omitempty"`
}

func pathID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func bindStaffAction(ctx echo.Context) (StaffActionRequest, int64, error) {
	orderID, err := pathID(ctx)
	if err != nil {
		return StaffActionRequest{}, 0, err
	}

	var req StaffActionRequest
	if err = ctx.Bind(&req); err != nil {
		return StaffActionRequest{}, 0, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return req, orderID, nil
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	req, orderID, err := bindStaffAction(ctx)
	if err != nil {
		return httpError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(req.ActorID, orderID)
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	req, orderID, err := bindStaffAction(ctx)
	if err != nil {
		return httpError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(req.ActorID, orderID, req.Reason)
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	req, orderID, err := bindStaffAction(ctx)
	if err != nil {
		return httpError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(req.ActorID, orderID)
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// FailOrder handles POST /api/v1/orders/:id/fail.
func (s *Server) FailOrder(ctx echo.Context) error {
	req, orderID, err := bindStaffAction(ctx)
	if err != nil {
		return httpError(ctx, err)
	}

	cmd, err := commands.NewFailOrderCommand(req.ActorID, orderID)
	if err != nil {
		return httpError(ctx, err)
	}

	if err = s.failOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return httpError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/users/:id/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := pathID(ctx)
	if err != nil {
		return httpError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return httpError(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return httpError(ctx, err)
	}

	views := make([]OrderView, len(orders))
	for i, resp := range orders {
		views[i] = toOrderView(resp)
	}
	return ctx.JSON(http.StatusOK, views)
}

// StatsView holds the dashboard counters.
type StatsView struct {
	Users          int64 `json:"users"`
	Orders         int64 `json:"orders"`
	NewOrders      int64 `json:"new_orders"`
	OrdersInReview int64 `json:"orders_in_review"`
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), queries.NewGetStatsQuery())
	if err != nil {
		return httpError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsView{
		Users:          stats.Users,
		Orders:         stats.Orders,
		NewOrders:      stats.NewOrders,
		OrdersInReview: stats.OrdersInReview,
	})
}
