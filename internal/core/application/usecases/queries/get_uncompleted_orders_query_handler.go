package queries

import (
	"context"

	"foodtiger/internal/core/ports"
)

// GetUncompletedOrdersQueryHandler retrieves orders in flight from the registry.
// Filters out terminal orders to provide active workload visibility.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(orderRegistry)
//	query := NewGetUncompletedOrdersQuery()
//
//	pendingOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pending orders: %v", err)
//	    return err
//	}
//
//	if len(pendingOrders) > 0 {
//	    fmt.Printf("%d orders in flight\n", len(pendingOrders))
//	}
type GetUncompletedOrdersQueryHandler struct {
	orders ports.OrderRegistry
}

// NewGetUncompletedOrdersQueryHandler creates a handler for in-flight order queries.
// Requires an OrderRegistry to read from.
func NewGetUncompletedOrdersQueryHandler(orders ports.OrderRegistry) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{orders: orders}
}

// Handle executes the query to retrieve all uncompleted orders.
// Returns orders in any non-terminal status, in registration order. Each
// response row carries the status observed at read time; orders keep moving
// while the caller holds the result.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uncompleted, err := h.orders.GetAllUncompleted(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetUncompletedOrdersQueryResponse, 0, len(uncompleted))
	for _, o := range uncompleted {
		responses = append(responses, GetUncompletedOrdersQueryResponse{
			ID:     o.ID(),
			Status: o.Status(),
			Items:  o.ItemSummary(),
		})
	}

	return responses, nil
}
