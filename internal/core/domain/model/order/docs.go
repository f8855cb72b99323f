// Package order models customer orders and their lifecycle as consumed by
// the fleet capacity core: identity, customer reference, status, delivery
// date and the product lines a physical weight is estimated from.
package order
