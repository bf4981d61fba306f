package order

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrRatingIsNotConstructed is returned when a Rating was not created through
// the NewRating factory method.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

const (
	minScore = 1
	maxScore = 5
)

// Rating is the vendor's post-delivery feedback: four 1-5 sub-scores plus a
// free-text comment. It can be attached to an order exactly once, and only
// after the order reaches delivered.
type Rating struct {
	quality  int
	delivery int
	service  int
	value    int
	comment  string

	guard guard.ConstructorGuard
}

// NewRating creates a rating, validating every sub-score against the 1-5 range.
func NewRating(quality, delivery, service, value int, comment string) (Rating, error) {
	scores := map[string]int{
		"quality score":  quality,
		"delivery score": delivery,
		"service score":  service,
		"value score":    value,
	}
	for name, score := range scores {
		if score < minScore || score > maxScore {
			return Rating{}, errs.NewValueIsOutOfRangeError(name, score, minScore, maxScore)
		}
	}

	return Rating{
		quality:  quality,
		delivery: delivery,
		service:  service,
		value:    value,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the rating was created through NewRating.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// Quality returns the material-quality score.
func (r Rating) Quality() int {
	return r.quality
}

// Delivery returns the delivery-experience score.
func (r Rating) Delivery() int {
	return r.delivery
}

// Service returns the supplier-service score.
func (r Rating) Service() int {
	return r.service
}

// Value returns the value-for-money score.
func (r Rating) Value() int {
	return r.value
}

// Comment returns the free-text comment, possibly empty.
func (r Rating) Comment() string {
	return r.comment
}
