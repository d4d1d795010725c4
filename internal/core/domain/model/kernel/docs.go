// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation that enforce basic
// invariants (such as order identity) independently of any aggregate.
package kernel
