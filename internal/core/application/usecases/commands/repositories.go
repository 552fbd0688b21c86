// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, domain call, and persistence.
package commands

import (
	"shipping/internal/core/domain/model/container"
)

// Metrics counts the outcome of command handlers. It is satisfied by
// *metrics.Recorder.
type Metrics interface {
	ContainerCreated(kind string)
	TemperatureChanged(kind string)
	TemperatureRejected(kind string)
	CargoLoaded(items int)
}

// ContainerFactory creates containers of any kind. It is satisfied by
// *container.Factory.
type ContainerFactory interface {
	Create(kind container.Kind, params container.Params, celsius *float64, items []string) (container.Unit, error)
}
