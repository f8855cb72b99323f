// Package services contains the fleet capacity core: pure, synchronous
// domain services that turn a caller-supplied snapshot of trucks, orders and
// allocations into weight estimates, capacity snapshots, loading verdicts,
// truck rankings, batch allocation proposals and daily schedules.
//
// Nothing in this package performs I/O or holds state between calls; every
// function is deterministic in its inputs. Persistence and the serialization
// of allocation commits belong to the application layer above.
package services
