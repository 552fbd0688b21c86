package kernel

import (
	"fmt"
	"math"
	"strings"

	"shipping/internal/pkg/errs"
)

// TemperatureUnit selects the scale a temperature value is given in.
type TemperatureUnit int

const (
	UnknownUnit TemperatureUnit = iota
	Celsius
	Fahrenheit
)

func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case UnknownUnit:
		return "Unknown"
	}
	return "Unknown"
}

// Validate rejects UnknownUnit and values outside the declared constants.
func (u TemperatureUnit) Validate() error {
	if u != Celsius && u != Fahrenheit {
		return errs.NewValueIsInvalidErrorWithCause("temperature unit", fmt.Errorf("%d is not a known unit", u))
	}
	return nil
}

// ParseTemperatureUnit accepts "c", "celsius", "f" and "fahrenheit" in any case.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return UnknownUnit, fmt.Errorf("unknown temperature unit %q", s)
}

// CelsiusToFahrenheit converts with F = C*9/5 + 32.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// FahrenheitToCelsius converts with C = (F-32)*5/9.
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// RoundNano rounds to nine decimal places. Converted values are rounded before
// they are stored so that converting 4 °C to Fahrenheit and back yields
// exactly 4 again.
func RoundNano(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1e9) / 1e9
}
