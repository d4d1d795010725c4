package main

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"foodtiger/cmd"
	"foodtiger/internal/core/application/usecases/commands"
	"foodtiger/internal/core/application/usecases/queries"
	"foodtiger/internal/core/domain/model/customer"
	"foodtiger/internal/core/domain/model/order"
	"foodtiger/internal/core/domain/model/restaurant"
	"foodtiger/internal/core/domain/model/rider"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	events := log.New("foodtiger")
	events.SetHeader("${level}")
	events.Infof("FoodTiger delivery system starting")

	root := cmd.NewCompositionRoot(configs)
	ctx := context.Background()

	customer1 := mustCustomer("CUST001", "Mr. Rahman", "9876543210", events)
	customer2 := mustCustomer("CUST002", "Ms. Sultana", "8765432109", events)

	restaurant1 := mustRestaurant("Spice Garden", "45 Commercial Street", "080-23456789", configs.PrepTime, events)
	restaurant2 := mustRestaurant("Pizza Palace", "67 Mall Road", "080-34567890", configs.PrepTime, events)

	rider1 := mustRider("Abdul", "7654321098", "Motorcycle", configs.TransitTime, events)
	rider2 := mustRider("Akmol", "6543210987", "Scooter", configs.TransitTime, events)

	for _, r := range []*rider.Rider{rider1, rider2} {
		if err := root.RiderPool().Add(ctx, r); err != nil {
			events.Fatalf("failed to register rider: %v", err)
		}
	}

	events.Infof("%s", customer1.Info())
	events.Infof("%s", restaurant1.Info())
	events.Infof("%s", rider1.Info())

	placeHandler := root.CreatePlaceOrderCommandHandler()
	dispatchHandler := root.CreateDispatchRiderCommandHandler()

	// Order 1: placed through the application layer, dispatched to the
	// first free rider.
	events.Infof("=== ORDER 1 ===")
	placeOrder(ctx, events, placeHandler, customer1, restaurant1,
		[]string{"Butter Chicken", "Garlic Naan", "Rice"})
	if err := dispatchHandler.Handle(ctx, commands.NewDispatchRiderCommand()); err != nil {
		events.Errorf("dispatch failed: %v", err)
	}
	order1 := customer1.OrderHistory()[0]

	// Order 2: delivered by a rider picked by hand.
	events.Infof("=== ORDER 2 ===")
	placeOrder(ctx, events, placeHandler, customer2, restaurant2,
		[]string{"Pepperoni Pizza", "Garlic Bread", "Coke"})
	order2 := customer2.OrderHistory()[0]
	if err := rider2.Deliver(order2); err != nil {
		events.Errorf("delivery failed: %v", err)
	}

	events.Infof("=== SYSTEM STATUS ===")
	events.Infof("order 1 status: %s", order1.Status())
	events.Infof("order 2 status: %s", order2.Status())
	events.Infof("rider %s available: %t", rider1.Name(), rider1.IsAvailable())
	events.Infof("rider %s available: %t", rider2.Name(), rider2.IsAvailable())

	// A completed order refuses further movement.
	if err := order1.UpdateStatus(order.Preparing); err != nil {
		events.Infof("rejected as expected: %v", err)
	}

	// Two riders race for the same order; exactly one wins the assignment.
	events.Infof("=== ORDER 3 (contended) ===")
	placeOrder(ctx, events, placeHandler, customer1, restaurant1, []string{"Biryani"})
	order3 := customer1.OrderHistory()[1]
	raceForOrder(events, order3, rider1, rider2)

	reportUncompleted(ctx, events, root.CreateGetUncompletedOrdersQueryHandler())
	reportCurrentDelivery(ctx, events, root.CreateGetCurrentDeliveryQueryHandler(), rider1)

	if configs.DispatchJobEnabled {
		runDispatchDemo(ctx, events, root, placeHandler, customer2, restaurant2)
	}

	events.Infof("FoodTiger system completed successfully")
}

func placeOrder(
	ctx context.Context,
	events *log.Logger,
	handler commands.PlaceOrderCommandHandler,
	c *customer.Customer,
	r *restaurant.Restaurant,
	items []string,
) {
	placeCmd, err := commands.NewPlaceOrderCommand(c, r, items)
	if err != nil {
		events.Fatalf("invalid order: %v", err)
	}
	if err := handler.Handle(ctx, placeCmd); err != nil {
		events.Fatalf("order placement failed: %v", err)
	}
}

func raceForOrder(events *log.Logger, o *order.Order, riders ...*rider.Rider) {
	var wg sync.WaitGroup
	for _, r := range riders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Deliver(o); err != nil {
				events.Infof("rider %s lost the race: %v", r.Name(), err)
			}
		}()
	}
	wg.Wait()
}

func reportUncompleted(
	ctx context.Context,
	events *log.Logger,
	handler queries.GetUncompletedOrdersQueryHandler,
) {
	uncompleted, err := handler.Handle(ctx, queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		events.Errorf("query failed: %v", err)
		return
	}
	events.Infof("orders in flight: %d", len(uncompleted))
	for _, o := range uncompleted {
		events.Infof("  %s: %s (%s)", o.ID, o.Status, o.Items)
	}
}

func reportCurrentDelivery(
	ctx context.Context,
	events *log.Logger,
	handler queries.GetCurrentDeliveryQueryHandler,
	r *rider.Rider,
) {
	query, err := queries.NewGetCurrentDeliveryQuery(r)
	if err != nil {
		events.Fatalf("invalid query: %v", err)
	}
	delivery, err := handler.Handle(ctx, query)
	if err != nil {
		events.Errorf("query failed: %v", err)
		return
	}
	if delivery == nil {
		events.Infof("rider %s is idle", r.Name())
		return
	}
	events.Infof("rider %s is delivering order %s", r.Name(), delivery.OrderID)
}

// runDispatchDemo places one more order and lets the background dispatch job
// pick it up instead of calling the handler directly.
func runDispatchDemo(
	ctx context.Context,
	events *log.Logger,
	root cmd.CompositionRoot,
	placeHandler commands.PlaceOrderCommandHandler,
	c *customer.Customer,
	r *restaurant.Restaurant,
) {
	events.Infof("=== BACKGROUND DISPATCH ===")
	jobManager := root.CreateJobManager(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := jobManager.StartAll(); err != nil {
		events.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	placeOrder(ctx, events, placeHandler, c, r, []string{"Masala Dosa"})
	time.Sleep(2 * time.Second)
}

func mustCustomer(id, name, contact string, events *log.Logger) *customer.Customer {
	c, err := customer.NewCustomer(id, name, contact, events)
	if err != nil {
		events.Fatalf("invalid customer: %v", err)
	}
	return c
}

func mustRestaurant(name, address, phone string, prepTime time.Duration, events *log.Logger) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(name, address, phone, prepTime, events)
	if err != nil {
		events.Fatalf("invalid restaurant: %v", err)
	}
	return r
}

func mustRider(name, contact, vehicle string, transitTime time.Duration, events *log.Logger) *rider.Rider {
	r, err := rider.NewRider(name, contact, vehicle, transitTime, events)
	if err != nil {
		events.Fatalf("invalid rider: %v", err)
	}
	return r
}

func getConfigs() cmd.Config {
	return cmd.Config{
		PrepTime:           goDotEnvDuration("PREP_TIME", 500*time.Millisecond),
		TransitTime:        goDotEnvDuration("TRANSIT_TIME", time.Second),
		DispatchJobEnabled: goDotEnvVariable("DISPATCH_JOB_ENABLED", "true") == "true",
	}
}

func goDotEnvVariable(key, fallback string) string {
	_ = godotenv.Load(".env")
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func goDotEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid duration for %s: %v", key, err)
	}
	return d
}
