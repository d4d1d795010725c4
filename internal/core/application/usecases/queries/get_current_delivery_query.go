package queries

import (
	"errors"

	"foodtiger/internal/core/domain/model/kernel"
	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/core/domain/model/rider"
	"foodtiger/internal/pkg/guard"
)

var (
	ErrGetCurrentDeliveryQueryIsNotConstructed = errors.New(
		"GetCurrentDeliveryQuery must be created via NewGetCurrentDeliveryQuery constructor",
	)
	ErrRiderIsRequired = errors.New("rider is required")
)

// GetCurrentDeliveryQuery retrieves the delivery a rider is currently
// working on, if any.
//
// Example:
//
//	query, _ := NewGetCurrentDeliveryQuery(rider)
//	handler := NewGetCurrentDeliveryQueryHandler(orderRegistry)
//
//	delivery, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if delivery == nil {
//	    fmt.Println("rider is idle")
//	}
type GetCurrentDeliveryQuery struct {
	rider *rider.Rider

	guard guard.ConstructorGuard
}

// NewGetCurrentDeliveryQuery creates a query for a rider's active delivery.
// Returns ErrRiderIsRequired if rider is nil.
func NewGetCurrentDeliveryQuery(r *rider.Rider) (GetCurrentDeliveryQuery, error) {
	if r == nil {
		return GetCurrentDeliveryQuery{}, ErrRiderIsRequired
	}

	return GetCurrentDeliveryQuery{
		rider: r,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Rider returns the rider whose active delivery is requested.
func (q GetCurrentDeliveryQuery) Rider() *rider.Rider {
	return q.rider
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentDeliveryQueryIsNotConstructed if validation fails.
func (q GetCurrentDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentDeliveryQueryIsNotConstructed)
}

// GetCurrentDeliveryQueryResponse represents a rider's active delivery.
type GetCurrentDeliveryQueryResponse struct {
	OrderID kernel.OrderID
	Status  order.Status
	Items   string
}
