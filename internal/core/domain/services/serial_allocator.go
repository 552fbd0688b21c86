package services

import (
	"go.uber.org/atomic"
)

// DefaultSerialSeed is the first serial handed out by a fresh allocator.
const DefaultSerialSeed int64 = 1337

// SerialAllocator hands out a strictly increasing, gap-free sequence of
// serial numbers starting at its seed. It is safe for concurrent use; each
// call to Next is a single atomic increment.
//
// Example:
//
//	serials := services.NewSerialAllocator(services.DefaultSerialSeed)
//	serials.Next() // 1337
//	serials.Next() // 1338
type SerialAllocator struct {
	next *atomic.Int64
}

// NewSerialAllocator creates an allocator whose first serial is seed.
func NewSerialAllocator(seed int64) *SerialAllocator {
	return &SerialAllocator{
		next: atomic.NewInt64(seed),
	}
}

// Next returns the current serial and advances the counter by one.
func (a *SerialAllocator) Next() int64 {
	return a.next.Inc() - 1
}

// Peek returns the serial the next call to Next will return.
func (a *SerialAllocator) Peek() int64 {
	return a.next.Load()
}
