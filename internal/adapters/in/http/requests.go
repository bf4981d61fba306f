package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"marketplace/internal/core/domain/model/order"
)

// RequestValidator adapts validator/v10 to echo's Validator interface so
// handlers can call ctx.Validate on bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the request validator for the server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks a bound request body against its struct tags.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

var _ echo.Validator = (*RequestValidator)(nil)

// itemRequest is one requested line in checkout or item replacement. Name,
// price, and unit are never accepted from the client; they are snapshotted
// from the catalog server-side.
type itemRequest struct {
	MaterialID string `json:"material_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity"    validate:"required,min=1"`
}

// placeOrderRequest is the body of POST /api/v1/orders.
type placeOrderRequest struct {
	SupplierID           string        `json:"supplier_id"           validate:"required,uuid"`
	Items                []itemRequest `json:"items"                 validate:"required,min=1,dive"`
	DeliveryAddress      string        `json:"delivery_address"      validate:"required"`
	DeliveryInstructions string        `json:"delivery_instructions" validate:"omitempty,max=500"`
	DeliveryCharges      int64         `json:"delivery_charges"      validate:"min=0"`
}

// changeStatusRequest is the body of PATCH /api/v1/orders/:number/status.
type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// updateItemsRequest is the body of PATCH /api/v1/orders/:number/items.
type updateItemsRequest struct {
	Items []itemRequest `json:"items" validate:"required,min=1,dive"`
}

// setChargesRequest is the body of PATCH /api/v1/orders/:number/charges.
type setChargesRequest struct {
	DeliveryCharges int64 `json:"delivery_charges" validate:"min=0"`
}

// markPaymentRequest is the body of PATCH /api/v1/orders/:number/payment.
type markPaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

// statusFilterFromQuery parses the optional ?status= list filter. An empty
// parameter means no filter.
func statusFilterFromQuery(ctx echo.Context) (*order.Status, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return nil, nil
	}
	status, err := order.StatusFromString(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// rateOrderRequest is the body of POST /api/v1/orders/:number/rating.
type rateOrderRequest struct {
	Quality  int    `json:"quality"  validate:"required,min=1,max=5"`
	Delivery int    `json:"delivery" validate:"required,min=1,max=5"`
	Service  int    `json:"service"  validate:"required,min=1,max=5"`
	Value    int    `json:"value"    validate:"required,min=1,max=5"`
	Comment  string `json:"comment"  validate:"omitempty,max=1000"`
}
