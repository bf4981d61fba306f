// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and its relational shape.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. The external order
// number carries a unique index (storage-level uniqueness guarantee); vendor,
// supplier, and status are indexed because role-scoped, status-filtered
// lookups are the dominant query pattern.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number               string    `gorm:"type:varchar(16);uniqueIndex"`
	VendorID             uuid.UUID `gorm:"type:uuid;index"`
	SupplierID           uuid.UUID `gorm:"type:uuid;index"`
	Status               int       `gorm:"index"`
	PaymentStatus        int
	TotalAmount          int64
	DeliveryCharges      int64
	FinalAmount          int64
	DeliveryAddress      string
	DeliveryInstructions string
	Rated                bool
	Rating               RatingDTO `gorm:"embedded;embeddedPrefix:rating_"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Version              int64

	Items         []ItemDTO         `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	TrackingSteps []TrackingStepDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RatingDTO is the embedded rating columns; meaningful only when Rated is set.
type RatingDTO struct {
	Quality  int
	Delivery int
	Service  int
	Value    int
	Comment  string
}

// ItemDTO is one immutable line-item snapshot. Position preserves the order
// the vendor submitted the items in.
type ItemDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Position   int
	MaterialID uuid.UUID `gorm:"type:uuid"`
	Name       string
	Quantity   int
	UnitPrice  int64
	Unit       string
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// TrackingStepDTO is one tracking-log entry. Position preserves the order
// the statuses were first reached in.
type TrackingStepDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	Status      int
	Title       string
	Description string
	Timestamp   time.Time
	Completed   bool
}

// TableName overrides GORM's default naming to use "order_tracking_steps".
func (TrackingStepDTO) TableName() string {
	return "order_tracking_steps"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		Number:               aggregate.Number().String(),
		VendorID:             aggregate.VendorID().Bytes(),
		SupplierID:           aggregate.SupplierID().Bytes(),
		Status:               int(aggregate.Status()),
		PaymentStatus:        int(aggregate.PaymentStatus()),
		TotalAmount:          aggregate.TotalAmount().Amount(),
		DeliveryCharges:      aggregate.DeliveryCharges().Amount(),
		FinalAmount:          aggregate.FinalAmount().Amount(),
		DeliveryAddress:      aggregate.DeliveryAddress(),
		DeliveryInstructions: aggregate.DeliveryInstructions(),
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		Version:              aggregate.Version(),
	}

	if rating := aggregate.Rating(); rating != nil {
		dto.Rated = true
		dto.Rating = RatingDTO{
			Quality:  rating.Quality(),
			Delivery: rating.Delivery(),
			Service:  rating.Service(),
			Value:    rating.Value(),
			Comment:  rating.Comment(),
		}
	}

	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:    dto.ID,
			Position:   i,
			MaterialID: item.MaterialID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			Unit:       item.Unit(),
		})
	}

	for i, step := range aggregate.TrackingSteps() {
		dto.TrackingSteps = append(dto.TrackingSteps, TrackingStepDTO{
			OrderID:     dto.ID,
			Position:    i,
			Status:      int(step.Status()),
			Title:       step.Title(),
			Description: step.Description(),
			Timestamp:   step.Timestamp(),
			Completed:   step.Completed(),
		})
	}

	return dto
}

// toDomain converts a database row (with preloaded items and tracking steps)
// back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		materialID, materialErr := kernel.UUIDFromBytes(itemDTO.MaterialID[:])
		if materialErr != nil {
			return nil, materialErr
		}

		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(materialID, itemDTO.Name, itemDTO.Quantity, unitPrice, itemDTO.Unit)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	steps := make([]order.TrackingStep, 0, len(dto.TrackingSteps))
	for _, stepDTO := range dto.TrackingSteps {
		steps = append(steps, order.RestoreTrackingStep(
			order.Status(stepDTO.Status),
			stepDTO.Title,
			stepDTO.Description,
			stepDTO.Timestamp,
			stepDTO.Completed,
		))
	}

	var rating *order.Rating
	if dto.Rated {
		restored, ratingErr := order.NewRating(
			dto.Rating.Quality,
			dto.Rating.Delivery,
			dto.Rating.Service,
			dto.Rating.Value,
			dto.Rating.Comment,
		)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &restored
	}

	charges, err := kernel.NewMoney(dto.DeliveryCharges)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		vendorID,
		supplierID,
		items,
		dto.DeliveryAddress,
		dto.DeliveryInstructions,
		charges,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		steps,
		rating,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
