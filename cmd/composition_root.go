package cmd

import (
	"log/slog"

	"foodtiger/internal/adapters/out/memory/orderregistry"
	"foodtiger/internal/adapters/out/memory/riderpool"
	"foodtiger/internal/core/application/usecases/commands"
	"foodtiger/internal/core/application/usecases/queries"
	"foodtiger/internal/core/ports"
	"foodtiger/internal/jobs"
)

// CompositionRoot wires the in-memory adapters to the application handlers.
type CompositionRoot struct {
	configs       Config
	orderRegistry *orderregistry.Registry
	riderPool     *riderpool.Pool
}

func NewCompositionRoot(configs Config) CompositionRoot {
	return CompositionRoot{
		configs:       configs,
		orderRegistry: orderregistry.NewRegistry(),
		riderPool:     riderpool.NewPool(),
	}
}

func (c *CompositionRoot) OrderRegistry() ports.OrderRegistry {
	return c.orderRegistry
}

func (c *CompositionRoot) RiderPool() ports.RiderPool {
	return c.riderPool
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderRegistry)
}

func (c *CompositionRoot) CreateDispatchRiderCommandHandler() commands.DispatchRiderCommandHandler {
	return commands.NewDispatchRiderCommandHandler(c.orderRegistry, c.riderPool)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.orderRegistry)
}

func (c *CompositionRoot) CreateGetCurrentDeliveryQueryHandler() queries.GetCurrentDeliveryQueryHandler {
	return queries.NewGetCurrentDeliveryQueryHandler(c.orderRegistry)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchRiderCommandHandler(), logger)
}
