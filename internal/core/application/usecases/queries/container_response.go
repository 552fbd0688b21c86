// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built from the container repository.
package queries

import (
	"shipping/internal/core/domain/model/container"
)

// ContainerResponse is the read model of a single container. Celsius and
// Fahrenheit are set only for temperature controlled containers.
type ContainerResponse struct {
	ID            string   `json:"id"                   yaml:"id"`
	Kind          string   `json:"kind"                 yaml:"kind"`
	Code          string   `json:"code"                 yaml:"code"`
	OwnerCode     string   `json:"owner_code"           yaml:"owner_code"`
	Serial        int64    `json:"serial"               yaml:"serial"`
	LengthFt      float64  `json:"length_ft"            yaml:"length_ft"`
	VolumeCubicFt float64  `json:"volume_cubic_ft"      yaml:"volume_cubic_ft"`
	Items         []string `json:"items"                yaml:"items"`
	Celsius       *float64 `json:"celsius,omitempty"    yaml:"celsius,omitempty"`
	Fahrenheit    *float64 `json:"fahrenheit,omitempty" yaml:"fahrenheit,omitempty"`
}

func toResponse(unit container.Unit) ContainerResponse {
	response := ContainerResponse{
		ID:            unit.ID().String(),
		Kind:          unit.Kind().String(),
		Code:          unit.Code(),
		OwnerCode:     unit.OwnerCode(),
		Serial:        unit.Serial(),
		LengthFt:      unit.LengthFt(),
		VolumeCubicFt: unit.Volume(),
		Items:         unit.Contents(),
	}

	if controlled, ok := unit.(container.TemperatureControlled); ok {
		celsius, fahrenheit := controlled.Celsius(), controlled.Fahrenheit()
		response.Celsius = &celsius
		response.Fahrenheit = &fahrenheit
	}

	return response
}
