package container

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	// ErrContainerIsNotConstructed is returned for containers that did not come from a Factory.
	ErrContainerIsNotConstructed = errors.New("Container must be created via Factory")

	// ErrInvalidDimension is carried by errors about a non-positive or non-finite length.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrItemNotLoaded is returned when unloading an item the container does not hold.
	ErrItemNotLoaded = errors.New("item is not loaded in this container")
)

// Unit is implemented by every container variant.
type Unit interface {
	ID() kernel.UUID
	Code() string
	OwnerCode() string
	Serial() int64
	Kind() Kind
	LengthFt() float64
	Volume() float64
	Contents() []string
	Load(items ...string) error
	Unload(item string) error
	Validate() error
	String() string
}

// TemperatureControlled is implemented by Refrigerated and HeatedRefrigerated.
type TemperatureControlled interface {
	Unit
	Celsius() float64
	Fahrenheit() float64
	SetCelsius(value float64) error
	SetFahrenheit(value float64) error
	SetTemperature(value float64, unit kernel.TemperatureUnit) error
	Policy() TemperaturePolicy
}

// Container is a dry freight container. It is the base every variant embeds.
//
// Invariants:
//   - code is generated once by the Factory and never changes
//   - lengthFt is positive and finite
//   - contents is owned by the container; callers only see copies
//
// Container is not safe for concurrent mutation.
type Container struct {
	// id is the surrogate identity used by repositories
	id kernel.UUID

	// ownerCode is passed through to the code formatter unchanged
	ownerCode string

	// code is the ISO 6346 code built from ownerCode and serial
	code   string
	serial int64

	kind     Kind
	lengthFt float64

	// contents holds the loaded cargo in loading order
	contents []string

	// body computes the volume for this variant
	body body

	guard guard.ConstructorGuard
}

func newContainer(kind Kind, b body) *Container {
	return &Container{
		id:       kernel.NewUUID(),
		kind:     kind,
		body:     b,
		contents: make([]string, 0),
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate fails for containers that were declared instead of created by a Factory.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

func (c *Container) ID() kernel.UUID {
	return c.id
}

// Code returns the container's ISO 6346 code, e.g. "ABCU0013375".
func (c *Container) Code() string {
	return c.code
}

func (c *Container) OwnerCode() string {
	return c.ownerCode
}

// Serial returns the serial number embedded in Code.
func (c *Container) Serial() int64 {
	return c.serial
}

func (c *Container) Kind() Kind {
	return c.kind
}

func (c *Container) LengthFt() float64 {
	return c.lengthFt
}

// Volume returns the usable volume in cubic feet. Variants change the
// computation through their body, never this method.
func (c *Container) Volume() float64 {
	return c.body.computeVolume(c.lengthFt)
}

// Contents returns a copy of the loaded items in loading order.
func (c *Container) Contents() []string {
	return slices.Clone(c.contents)
}

// Load appends items to the contents. Nothing is loaded if any item is empty.
func (c *Container) Load(items ...string) error {
	if err := validateItems(items); err != nil {
		return err
	}
	c.contents = append(c.contents, items...)
	return nil
}

// Unload removes the first occurrence of item.
func (c *Container) Unload(item string) error {
	i := slices.Index(c.contents, item)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrItemNotLoaded, item)
	}
	c.contents = slices.Delete(c.contents, i, i+1)
	return nil
}

// IsEqual compares containers by code.
func (c *Container) IsEqual(other Unit) bool {
	return other != nil && c.code == other.Code()
}

func (c *Container) String() string {
	return fmt.Sprintf("%sContainer(code=%s, owner_code=%s, length_ft=%g)", c.kind, c.code, c.ownerCode, c.lengthFt)
}

func (c *Container) setOwnerCode(ownerCode string) error {
	if ownerCode == "" {
		return errs.NewValueIsRequiredError("owner code")
	}
	c.ownerCode = ownerCode
	return nil
}

func (c *Container) setLengthFt(lengthFt float64) error {
	if math.IsNaN(lengthFt) || math.IsInf(lengthFt, 0) || lengthFt <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"length",
			fmt.Errorf("%w: %g ft is not a positive length", ErrInvalidDimension, lengthFt),
		)
	}
	c.lengthFt = lengthFt
	return nil
}

// setContents copies items so later changes to the caller's slice are not seen.
func (c *Container) setContents(items []string) error {
	if err := validateItems(items); err != nil {
		return err
	}
	c.contents = append(make([]string, 0, len(items)), items...)
	return nil
}

func (c *Container) assignCode(serial int64, code string) {
	c.serial = serial
	c.code = code
}

func validateItems(items []string) error {
	for i, item := range items {
		if item == "" {
			return errs.NewValueIsRequiredErrorWithCause("item", fmt.Errorf("item %d is empty", i))
		}
	}
	return nil
}
