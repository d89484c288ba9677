// Package kernel contains shared value objects used across the domain model.
//
// Value objects here are immutable, created through validating constructors,
// and compared by value. They carry no persistence or transport concerns.
package kernel
