package kernel

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

var (
	// ErrInvalidCoordinate is carried by every latitude or longitude range error.
	ErrInvalidCoordinate = errors.New("coordinate out of range")

	ErrPositionIsNotConstructed = errs.NewValueIsRequiredError(
		"position must be created via NewPosition, NewEarthPosition or NewMarsPosition")
)

// Body is the celestial body a Position refers to.
type Body int

const (
	UnknownBody Body = iota
	Earth
	Mars
)

func (b Body) String() string {
	switch b {
	case Earth:
		return "Earth"
	case Mars:
		return "Mars"
	case UnknownBody:
		return "Unknown"
	}
	return "Unknown"
}

// Validate rejects UnknownBody and values outside the declared constants.
func (b Body) Validate() error {
	if b != Earth && b != Mars {
		return errs.NewValueIsInvalidErrorWithCause("body", fmt.Errorf("%d is not a known body", b))
	}
	return nil
}

// Position is a point given by latitude and longitude in degrees. The zero
// value is invalid; use one of the constructors.
//
// Example:
//
//	pos, err := kernel.NewEarthPosition(60.0, 25.0)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pos) // EarthPosition(latitude=60, longitude=25)
type Position struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	body      Body
	guard     guard.ConstructorGuard
}

// NewPosition validates both coordinates; nothing is returned unless both are in range.
func NewPosition(body Body, latitude, longitude float64) (Position, error) {
	pos := Position{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pos.setBody(body),
		pos.setLatitude(latitude),
		pos.setLongitude(longitude),
	); err != nil {
		return Position{}, err
	}

	return pos, nil
}

func NewEarthPosition(latitude, longitude float64) (Position, error) {
	return NewPosition(Earth, latitude, longitude)
}

func NewMarsPosition(latitude, longitude float64) (Position, error) {
	return NewPosition(Mars, latitude, longitude)
}

// Validate fails for positions that were not built by a constructor.
func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

func (p Position) Latitude() float64 {
	return p.latitude
}

func (p Position) Longitude() float64 {
	return p.longitude
}

func (p Position) Body() Body {
	return p.body
}

// String renders the position with its body as the type name, e.g.
// "MarsPosition(latitude=-4.5, longitude=137.4)".
func (p Position) String() string {
	return fmt.Sprintf("%sPosition(latitude=%g, longitude=%g)", p.body, p.latitude, p.longitude)
}

// IsEqual reports whether both positions are on the same body at the same
// coordinates. Both positions must be constructed.
func (p Position) IsEqual(other Position) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p == other, nil
}

func (p *Position) setBody(body Body) error {
	if err := body.Validate(); err != nil {
		return err
	}
	p.body = body
	return nil
}

// NaN fails the range check because every comparison with it is false.
func (p *Position) setLatitude(latitude float64) error {
	if !(latitude >= MinLatitude && latitude <= MaxLatitude) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"latitude", latitude, MinLatitude, MaxLatitude, ErrInvalidCoordinate)
	}
	p.latitude = latitude
	return nil
}

func (p *Position) setLongitude(longitude float64) error {
	if !(longitude >= MinLongitude && longitude <= MaxLongitude) {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"longitude", longitude, MinLongitude, MaxLongitude, ErrInvalidCoordinate)
	}
	p.longitude = longitude
	return nil
}
