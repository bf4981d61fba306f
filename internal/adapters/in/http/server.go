// Package http exposes the order lifecycle over a REST API. Handlers bind
// and validate requests, translate them into commands and queries, and map
// application errors onto the HTTP status taxonomy. All business rules live
// in the core; nothing here inspects or mutates order state directly.
package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler
	updateItemsHandler  commands.UpdateOrderItemsCommandHandler
	setChargesHandler   commands.SetDeliveryChargesCommandHandler
	markPaymentHandler  commands.MarkPaymentCommandHandler
	rateOrderHandler    commands.RateOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	vendorOrdersHandler   queries.GetVendorOrdersQueryHandler
	supplierOrdersHandler queries.GetSupplierOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	updateItemsHandler commands.UpdateOrderItemsCommandHandler,
	setChargesHandler commands.SetDeliveryChargesCommandHandler,
	markPaymentHandler commands.MarkPaymentCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	vendorOrdersHandler queries.GetVendorOrdersQueryHandler,
	supplierOrdersHandler queries.GetSupplierOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:     placeOrderHandler,
		changeStatusHandler:   changeStatusHandler,
		updateItemsHandler:    updateItemsHandler,
		setChargesHandler:     setChargesHandler,
		markPaymentHandler:    markPaymentHandler,
		rateOrderHandler:      rateOrderHandler,
		getOrderHandler:       getOrderHandler,
		vendorOrdersHandler:   vendorOrdersHandler,
		supplierOrdersHandler: supplierOrdersHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind bearer authentication.
// The health endpoint stays outside the authenticated group.
func (s *Server) RegisterRoutes(e *echo.Echo, identity ports.IdentityProvider) {
	e.Validator = NewRequestValidator()
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", BearerAuth(identity))
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:number", s.GetOrder)
	api.PATCH("/orders/:number/status", s.ChangeStatus)
	api.PATCH("/orders/:number/items", s.UpdateItems)
	api.PATCH("/orders/:number/charges", s.SetCharges)
	api.PATCH("/orders/:number/payment", s.MarkPayment)
	api.POST("/orders/:number/rating", s.RateOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders - vendor checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return renderError(ctx, err)
	}

	supplierID, err := kernel.UUIDFromString(request.SupplierID)
	if err != nil {
		return renderError(ctx, err)
	}

	specs, err := toItemSpecs(request.Items)
	if err != nil {
		return renderError(ctx, err)
	}

	charges, err := kernel.NewMoney(request.DeliveryCharges)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		by,
		supplierID,
		specs,
		request.DeliveryAddress,
		request.DeliveryInstructions,
		charges,
	)
	if err != nil {
		return renderError(ctx, err)
	}

	created, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// ListOrders handles GET /api/v1/orders - the caller's own orders, newest
// first, optionally filtered with ?status=.
func (s *Server) ListOrders(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	statusFilter, err := statusFilterFromQuery(ctx)
	if err != nil {
		return renderError(ctx, err)
	}

	var summaries []queries.OrderSummary
	switch by.Role() {
	case actor.RoleVendor:
		query, queryErr := queries.NewGetVendorOrdersQuery(by.ID(), statusFilter)
		if queryErr != nil {
			return renderError(ctx, queryErr)
		}
		summaries, err = s.vendorOrdersHandler.Handle(ctx.Request().Context(), query)
	default:
		query, queryErr := queries.NewGetSupplierOrdersQuery(by.ID(), statusFilter)
		if queryErr != nil {
			return renderError(ctx, queryErr)
		}
		summaries, err = s.supplierOrdersHandler.Handle(ctx.Request().Context(), query)
	}
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summaries)
}

// GetOrder handles GET /api/v1/orders/:number - single order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	number, err := order.NumberFromString(ctx.Param("number"))
	if err != nil {
		return renderError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(number, by)
	if err != nil {
		return renderError(ctx, err)
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(aggregate))
}

// ChangeStatus handles PATCH /api/v1/orders/:number/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var request changeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return renderError(ctx, err)
	}

	number, err := order.NumberFromString(ctx.Param("number"))
	if err != nil {
		return renderError(ctx, err)
	}

	newStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(number, newStatus, by)
	if err != nil {
		return renderError(ctx, err)
	}

	changed, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(changed))
}

// UpdateItems handles PATCH /api/v1/orders/:number/items.
func (s *Server) UpdateItems(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var request updateItemsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return renderError(ctx, err)
	}

	number, err := order.NumberFromString(ctx.Param("number"))
	if err != nil {
		return renderError(ctx, err)
	}

	specs, err := toItemSpecs(request.Items)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(number, specs, by)
	if err != nil {
		return renderError(ctx, err)
	}

	updated, err := s.updateItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// SetCharges handles PATCH /api/v1/orders/:number/charges.
func (s *Server) SetCharges(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var request setChargesRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return renderError(ctx, err)
	}

	number, err := order.NumberFromString(ctx.Param("number"))
	if err != nil {
		return renderError(ctx, err)
	}

	charges, err := kernel.NewMoney(request.DeliveryCharges)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewSetDeliveryChargesCommand(number, charges, by)
	if err != nil {
		return renderError(ctx, err)
	}

	updated, err := s.setChargesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// MarkPayment handles PATCH /api/v1/orders/:number/payment.
func (s *Server) MarkPayment(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var request markPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return renderError(ctx, err)
	}

	number, err := order.NumberFromString(ctx.Param("number"))
	if err != nil {
		return renderError(ctx, err)
	}

	paymentStatus, err := order.PaymentStatusFromString(request.PaymentStatus)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewMarkPaymentCommand(number, paymentStatus, by)
	if err != nil {
		return renderError(ctx, err)
	}

	updated, err := s.markPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// RateOrder handles POST /api/v1/orders/:number/rating.
func (s *Server) RateOrder(ctx echo.Context) error {
	by, ok := actorFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	var request rateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(&request); err != nil {
		return renderError(ctx, err)
	}

	number, err := order.NumberFromString(ctx.Param("number"))
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(
		number,
		request.Quality,
		request.Delivery,
		request.Service,
		request.Value,
		request.Comment,
		by,
	)
	if err != nil {
		return renderError(ctx, err)
	}

	rated, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(rated))
}

// toItemSpecs converts request items into command item specifications.
func toItemSpecs(items []itemRequest) ([]commands.ItemSpec, error) {
	specs := make([]commands.ItemSpec, 0, len(items))
	for _, item := range items {
		materialID, err := kernel.UUIDFromString(item.MaterialID)
		if err != nil {
			return nil, err
		}

		spec, err := commands.NewItemSpec(materialID, item.Quantity)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
