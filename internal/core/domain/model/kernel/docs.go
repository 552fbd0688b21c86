// Package kernel provides the value objects shared by the shipping domain.
//
// The package includes:
//   - UUID: surrogate identifier for aggregates
//   - Position: a validated latitude/longitude pair on a celestial body
//   - Celsius/Fahrenheit conversion helpers
//
// Values are immutable once constructed and safe for concurrent use.
package kernel
