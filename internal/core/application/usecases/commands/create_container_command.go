package commands

import (
	"errors"
	"slices"

	"shipping/internal/core/domain/model/container"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateContainerCommandIsNotConstructed = errors.New(
	"CreateContainerCommand must be created via NewCreateContainerCommand constructor",
)

// CreateContainerCommand represents a request to put a new container into service.
// Celsius is required for temperature controlled kinds and must be nil otherwise.
//
// Example:
//
//	celsius := -18.0
//	cmd, err := NewCreateContainerCommand(container.KindRefrigerated, "ABC", 40, &celsius, []string{"fish"})
//	if err != nil {
//	    return fmt.Errorf("invalid container data: %w", err)
//	}
//
//	code, err := handler.Handle(ctx, cmd)
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	kind      container.Kind
	ownerCode string
	lengthFt  float64
	celsius   *float64
	items     []string

	guard guard.ConstructorGuard
}

// NewCreateContainerCommand validates the kind and owner code. Dimensions and
// temperature are validated by the container factory.
func NewCreateContainerCommand(
	kind container.Kind,
	ownerCode string,
	lengthFt float64,
	celsius *float64,
	items []string,
) (CreateContainerCommand, error) {
	cmd := CreateContainerCommand{
		lengthFt: lengthFt,
		items:    slices.Clone(items),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setOwnerCode(ownerCode),
	); err != nil {
		return CreateContainerCommand{}, err
	}

	if celsius != nil {
		value := *celsius
		cmd.celsius = &value
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

func (c CreateContainerCommand) Kind() container.Kind {
	return c.kind
}

func (c CreateContainerCommand) OwnerCode() string {
	return c.ownerCode
}

func (c CreateContainerCommand) LengthFt() float64 {
	return c.lengthFt
}

// Celsius returns the initial temperature, or nil for dry containers.
func (c CreateContainerCommand) Celsius() *float64 {
	if c.celsius == nil {
		return nil
	}
	value := *c.celsius
	return &value
}

func (c CreateContainerCommand) Items() []string {
	return slices.Clone(c.items)
}

func (c *CreateContainerCommand) setKind(kind container.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateContainerCommand) setOwnerCode(ownerCode string) error {
	if ownerCode == "" {
		return errs.NewValueIsRequiredError("owner code")
	}

	c.ownerCode = ownerCode
	return nil
}
