package kernel

import (
	"fmt"
	"strings"

	"foodtiger/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderIDPrefix is prepended to generated order identifiers so they are
// recognizable in traces and notifications.
const orderIDPrefix = "ORD-"

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// one of the constructor functions. It is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or GenerateOrderID",
)

// OrderID is a value object identifying a single order. Identifiers are
// externally generated strings and must be unique per creation event.
//
// The zero value of OrderID is invalid; construct one with NewOrderID or
// GenerateOrderID. OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Generate a fresh identifier
//	id := kernel.GenerateOrderID()
//
//	// Adopt an identifier from an external system
//	id, err := kernel.NewOrderID("ORD-2024-000123")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from an externally supplied string.
// The value must be non-blank. Surrounding whitespace is not trimmed;
// callers own the exact representation.
func NewOrderID(value string) (OrderID, error) {
	if strings.TrimSpace(value) == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: value}, nil
}

// GenerateOrderID creates a new unique order identifier of the form
// "ORD-<uuid>". Uniqueness comes from a random version 4 UUID.
func GenerateOrderID() OrderID {
	return OrderID{value: fmt.Sprintf("%s%s", orderIDPrefix, uuid.NewString())}
}

// String returns the identifier's string representation.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
