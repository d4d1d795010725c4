package queries

import (
	"context"

	"foodtiger/internal/core/ports"
)

// GetCurrentDeliveryQueryHandler resolves a rider's active delivery against
// the order registry. Returns nil (and no error) when the rider is idle.
type GetCurrentDeliveryQueryHandler struct {
	orders ports.OrderRegistry
}

// NewGetCurrentDeliveryQueryHandler creates a handler for active delivery
// queries. Requires an OrderRegistry to read from.
func NewGetCurrentDeliveryQueryHandler(orders ports.OrderRegistry) GetCurrentDeliveryQueryHandler {
	return GetCurrentDeliveryQueryHandler{orders: orders}
}

// Handle executes the query. Scans all registered orders for one assigned to
// the rider and not yet in a terminal status; returns nil when none is found.
func (h GetCurrentDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentDeliveryQuery,
) (*GetCurrentDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	o := query.Rider().GetCurrentDelivery(all)
	if o == nil {
		return nil, nil
	}

	return &GetCurrentDeliveryQueryResponse{
		OrderID: o.ID(),
		Status:  o.Status(),
		Items:   o.ItemSummary(),
	}, nil
}
