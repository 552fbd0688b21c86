package commands

import (
	"errors"
	"math"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrSetTemperatureCommandIsNotConstructed = errors.New(
	"SetTemperatureCommand must be created via NewSetTemperatureCommand constructor",
)

// SetTemperatureCommand changes the temperature of a refrigerated container.
// The value is interpreted in the given unit; bounds are checked by the container.
type SetTemperatureCommand struct { //nolint:recvcheck //using for validation
	code  string
	value float64
	unit  kernel.TemperatureUnit

	guard guard.ConstructorGuard
}

func NewSetTemperatureCommand(code string, value float64, unit kernel.TemperatureUnit) (SetTemperatureCommand, error) {
	cmd := SetTemperatureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setValue(value),
		cmd.setUnit(unit),
	); err != nil {
		return SetTemperatureCommand{}, err
	}

	return cmd, nil
}

func (c SetTemperatureCommand) Validate() error {
	return c.guard.Validate(ErrSetTemperatureCommandIsNotConstructed)
}

func (c SetTemperatureCommand) Code() string {
	return c.code
}

func (c SetTemperatureCommand) Value() float64 {
	return c.value
}

func (c SetTemperatureCommand) Unit() kernel.TemperatureUnit {
	return c.unit
}

func (c *SetTemperatureCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

func (c *SetTemperatureCommand) setValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidError("temperature")
	}

	c.value = value
	return nil
}

func (c *SetTemperatureCommand) setUnit(unit kernel.TemperatureUnit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	c.unit = unit
	return nil
}
