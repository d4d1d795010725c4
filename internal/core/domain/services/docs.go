// Package services contains domain services that coordinate behavior across
// aggregates. RiderDispatcher matches ready orders with available riders and
// starts their delivery workflow.
package services
