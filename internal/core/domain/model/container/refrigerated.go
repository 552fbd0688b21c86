package container

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrNotTemperatureControlled is returned when a temperature is given for a dry container.
	ErrNotTemperatureControlled = errors.New("container is not temperature controlled")

	errInitialTemperatureRequired = errs.NewValueIsRequiredError("celsius")
)

// Refrigerated is a Container that keeps its cargo cold. The temperature is
// stored in Celsius; Fahrenheit is a converted view. Every write, including
// the initial one during construction, goes through SetCelsius and the
// container's TemperaturePolicy.
type Refrigerated struct {
	*Container

	celsius float64
	policy  TemperaturePolicy
}

func newRefrigerated(kind Kind, policy TemperaturePolicy) *Refrigerated {
	return &Refrigerated{
		Container: newContainer(kind, insulatedBody{inner: dryBody{}}),
		policy:    policy,
	}
}

// Validate fails for refrigerated containers that did not come from a Factory.
func (r *Refrigerated) Validate() error {
	if r == nil {
		return ErrContainerIsNotConstructed
	}
	return r.Container.Validate()
}

func (r *Refrigerated) Celsius() float64 {
	return r.celsius
}

// SetCelsius stores value if the policy accepts it. On error the previous
// temperature is kept.
func (r *Refrigerated) SetCelsius(value float64) error {
	if err := r.policy.Check(value); err != nil {
		return err
	}
	r.celsius = value
	return nil
}

func (r *Refrigerated) Fahrenheit() float64 {
	return kernel.CelsiusToFahrenheit(r.celsius)
}

// SetFahrenheit converts value to Celsius and delegates to SetCelsius, so the
// same bounds apply.
func (r *Refrigerated) SetFahrenheit(value float64) error {
	return r.SetCelsius(kernel.RoundNano(kernel.FahrenheitToCelsius(value)))
}

// SetTemperature writes value in the given unit.
func (r *Refrigerated) SetTemperature(value float64, unit kernel.TemperatureUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	if unit == kernel.Fahrenheit {
		return r.SetFahrenheit(value)
	}
	return r.SetCelsius(value)
}

// Policy returns the bound checks applied to temperature writes.
func (r *Refrigerated) Policy() TemperaturePolicy {
	return r.policy
}

func (r *Refrigerated) String() string {
	return fmt.Sprintf("%sContainer(code=%s, owner_code=%s, length_ft=%g, celsius=%g)",
		r.kind, r.code, r.ownerCode, r.lengthFt, r.celsius)
}
