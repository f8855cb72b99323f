// Package product models the cylinder product catalog as read-only reference
// data: products, their full/empty variants, and the cylinder weight class
// table used to estimate physical weights.
package product
