package http

import (
	"context"
	"database/sql/driver"
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// renderError maps an application error onto the HTTP status taxonomy:
// invalid input 400, authorization 403, unknown object 404, state conflicts
// (transition, lock, lost concurrent write) 409, storage unreachable 503.
func renderError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderStateLocked),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.As(err, &validationErrs):
		status = http.StatusBadRequest
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// itemResponse is one line-item snapshot in the detail view.
type itemResponse struct {
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	Unit       string `json:"unit"`
	Subtotal   int64  `json:"subtotal"`
}

// trackingStepResponse is one tracking-log entry in the detail view.
type trackingStepResponse struct {
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Completed   bool      `json:"completed"`
}

// ratingResponse is the vendor's rating in the detail view.
type ratingResponse struct {
	Quality  int    `json:"quality"`
	Delivery int    `json:"delivery"`
	Service  int    `json:"service"`
	Value    int    `json:"value"`
	Comment  string `json:"comment,omitempty"`
}

// orderResponse is the full detail view of an order.
type orderResponse struct {
	Number               string                 `json:"number"`
	VendorID             string                 `json:"vendor_id"`
	SupplierID           string                 `json:"supplier_id"`
	Status               string                 `json:"status"`
	PaymentStatus        string                 `json:"payment_status"`
	Items                []itemResponse         `json:"items"`
	TotalAmount          int64                  `json:"total_amount"`
	DeliveryCharges      int64                  `json:"delivery_charges"`
	FinalAmount          int64                  `json:"final_amount"`
	DeliveryAddress      string                 `json:"delivery_address"`
	DeliveryInstructions string                 `json:"delivery_instructions,omitempty"`
	Tracking             []trackingStepResponse `json:"tracking"`
	Rating               *ratingResponse        `json:"rating,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

// toOrderResponse renders an order aggregate for the API.
func toOrderResponse(aggregate *order.Order) orderResponse {
	response := orderResponse{
		Number:               aggregate.Number().String(),
		VendorID:             aggregate.VendorID().String(),
		SupplierID:           aggregate.SupplierID().String(),
		Status:               aggregate.Status().String(),
		PaymentStatus:        aggregate.PaymentStatus().String(),
		Items:                make([]itemResponse, 0, len(aggregate.Items())),
		TotalAmount:          aggregate.TotalAmount().Amount(),
		DeliveryCharges:      aggregate.DeliveryCharges().Amount(),
		FinalAmount:          aggregate.FinalAmount().Amount(),
		DeliveryAddress:      aggregate.DeliveryAddress(),
		DeliveryInstructions: aggregate.DeliveryInstructions(),
		Tracking:             make([]trackingStepResponse, 0, len(aggregate.TrackingSteps())),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}

	for _, item := range aggregate.Items() {
		response.Items = append(response.Items, itemResponse{
			MaterialID: item.MaterialID().String(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			Unit:       item.Unit(),
			Subtotal:   item.Subtotal().Amount(),
		})
	}

	for _, step := range aggregate.TrackingSteps() {
		response.Tracking = append(response.Tracking, trackingStepResponse{
			Status:      step.Status().String(),
			Title:       step.Title(),
			Description: step.Description(),
			Timestamp:   step.Timestamp(),
			Completed:   step.Completed(),
		})
	}

	if rating := aggregate.Rating(); rating != nil {
		response.Rating = &ratingResponse{
			Quality:  rating.Quality(),
			Delivery: rating.Delivery(),
			Service:  rating.Service(),
			Value:    rating.Value(),
			Comment:  rating.Comment(),
		}
	}

	return response
}
