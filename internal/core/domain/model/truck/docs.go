// Package truck models the delivery fleet: the truck aggregate with its dual
// capacity limits (cylinder slots and mass), operational status, maintenance
// and fuel figures, and the on-board cylinder inventory.
package truck
