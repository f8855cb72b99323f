// Package allocation models the assignment of orders to trucks for a
// delivery date, from planned proposal through loading to delivery.
package allocation
