package commands

import (
	"errors"
	"fmt"
	"slices"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrLoadCargoCommandIsNotConstructed = errors.New(
	"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
)

// LoadCargoCommand appends items to a container's contents.
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	code  string
	items []string

	guard guard.ConstructorGuard
}

func NewLoadCargoCommand(code string, items []string) (LoadCargoCommand, error) {
	cmd := LoadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setItems(items),
	); err != nil {
		return LoadCargoCommand{}, err
	}

	return cmd, nil
}

func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

func (c LoadCargoCommand) Code() string {
	return c.code
}

func (c LoadCargoCommand) Items() []string {
	return slices.Clone(c.items)
}

func (c *LoadCargoCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

func (c *LoadCargoCommand) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item == "" {
			return errs.NewValueIsRequiredErrorWithCause("item", fmt.Errorf("item %d is empty", i))
		}
	}

	c.items = slices.Clone(items)
	return nil
}
