package commands

import (
	"errors"

	"foodtiger/internal/pkg/guard"
)

var ErrDispatchRiderCommandIsNotConstructed = errors.New(
	"DispatchRiderCommand must be created via NewDispatchRiderCommand constructor",
)

// DispatchRiderCommand triggers the dispatch of an available rider to the
// first order awaiting pickup. It is the explicit external action that
// assigns riders; orders never pick riders themselves.
//
// Example:
//
//	cmd := NewDispatchRiderCommand()
//	handler := NewDispatchRiderCommandHandler(orderRegistry, riderPool)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("no orders awaiting pickup or no free riders: %v", err)
//	}
type DispatchRiderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchRiderCommand creates a new command to trigger rider dispatch.
// This is a parameterless command that initiates the rider-order matching.
func NewDispatchRiderCommand() DispatchRiderCommand {
	return DispatchRiderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchRiderCommandIsNotConstructed if validation fails.
func (c *DispatchRiderCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchRiderCommandIsNotConstructed,
	)
}
