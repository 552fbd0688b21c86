// Package services provides domain services that do not belong to a single
// aggregate.
//
// The package includes:
//   - SerialAllocator: the shared, monotonically increasing source of
//     container serial numbers
//
// A SerialAllocator is created once by the composition root and injected into
// the container factory, which makes the scope of the counter explicit: every
// container built by that factory draws from the same sequence.
package services
