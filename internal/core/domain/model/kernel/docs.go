// Package kernel contains shared value objects used across all domain models.
// These are the building blocks of the domain layer: identity (UUID) and the
// date normalization used to key daily capacity calculations.
//
// Value objects in this package are immutable and validated at construction.
package kernel
