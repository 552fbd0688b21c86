package container

import (
	"errors"

	"shipping/internal/pkg/iso6346"
)

// SerialAllocator hands out unique, increasing serial numbers.
type SerialAllocator interface {
	Next() int64
}

// CodeFormatter turns an owner code, a serial and an optional category into a
// container code. Implementations zero-pad the serial to six digits and return
// a *iso6346.FormatError for malformed input.
type CodeFormatter interface {
	Format(ownerCode string, serial int64, category iso6346.Category) (string, error)
}

// Params are the construction parameters shared by every container kind.
type Params struct {
	OwnerCode string
	LengthFt  float64
}

// RefrigeratedParams add the required initial temperature.
type RefrigeratedParams struct {
	Params
	Celsius float64
}

// Factory creates containers. All containers created by one Factory draw
// their serials from the same allocator.
//
// Construction validates every parameter first and reports all failures
// together; only then is a serial allocated and the code formatted. A
// formatter error is returned unchanged and no container escapes.
//
// Example:
//
//	factory := container.NewFactory(services.NewSerialAllocator(services.DefaultSerialSeed), iso6346.NewFormatter())
//	reefer, err := factory.CreateEmptyRefrigerated(container.RefrigeratedParams{
//	    Params:  container.Params{OwnerCode: "ABC", LengthFt: 20},
//	    Celsius: 2.0,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(reefer.Code(), reefer.Volume()) // ABCR0013373 1260
type Factory struct {
	serials SerialAllocator
	codes   CodeFormatter
}

func NewFactory(serials SerialAllocator, codes CodeFormatter) *Factory {
	return &Factory{
		serials: serials,
		codes:   codes,
	}
}

// CreateEmpty creates a dry container with no contents.
func (f *Factory) CreateEmpty(params Params) (*Container, error) {
	return f.CreateWithItems(params, nil)
}

// CreateWithItems creates a dry container holding a copy of items.
func (f *Factory) CreateWithItems(params Params, items []string) (*Container, error) {
	c := newContainer(KindDry, dryBody{})

	if err := errors.Join(
		c.setOwnerCode(params.OwnerCode),
		c.setLengthFt(params.LengthFt),
		c.setContents(items),
	); err != nil {
		return nil, err
	}

	if err := f.identify(c); err != nil {
		return nil, err
	}

	return c, nil
}

// CreateEmptyRefrigerated creates a refrigerated container with no contents.
func (f *Factory) CreateEmptyRefrigerated(params RefrigeratedParams) (*Refrigerated, error) {
	return f.CreateRefrigeratedWithItems(params, nil)
}

// CreateRefrigeratedWithItems creates a refrigerated container holding a copy of items.
func (f *Factory) CreateRefrigeratedWithItems(params RefrigeratedParams, items []string) (*Refrigerated, error) {
	r := newRefrigerated(KindRefrigerated, RefrigeratedPolicy())

	if err := f.initRefrigerated(r, params, items); err != nil {
		return nil, err
	}

	return r, nil
}

// CreateEmptyHeatedRefrigerated creates a heated refrigerated container with no contents.
func (f *Factory) CreateEmptyHeatedRefrigerated(params RefrigeratedParams) (*HeatedRefrigerated, error) {
	return f.CreateHeatedRefrigeratedWithItems(params, nil)
}

// CreateHeatedRefrigeratedWithItems creates a heated refrigerated container holding a copy of items.
func (f *Factory) CreateHeatedRefrigeratedWithItems(
	params RefrigeratedParams,
	items []string,
) (*HeatedRefrigerated, error) {
	h := newHeatedRefrigerated()

	if err := f.initRefrigerated(h.Refrigerated, params, items); err != nil {
		return nil, err
	}

	return h, nil
}

// Create builds a container of the given kind. celsius is required for
// temperature controlled kinds and must be nil for dry ones.
func (f *Factory) Create(kind Kind, params Params, celsius *float64, items []string) (Unit, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	if !kind.IsTemperatureControlled() {
		if celsius != nil {
			return nil, ErrNotTemperatureControlled
		}
		c, err := f.CreateWithItems(params, items)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	if celsius == nil {
		return nil, errInitialTemperatureRequired
	}

	refrigeratedParams := RefrigeratedParams{Params: params, Celsius: *celsius}
	if kind == KindHeatedRefrigerated {
		h, err := f.CreateHeatedRefrigeratedWithItems(refrigeratedParams, items)
		if err != nil {
			return nil, err
		}
		return h, nil
	}

	r, err := f.CreateRefrigeratedWithItems(refrigeratedParams, items)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (f *Factory) initRefrigerated(r *Refrigerated, params RefrigeratedParams, items []string) error {
	if err := errors.Join(
		r.setOwnerCode(params.OwnerCode),
		r.setLengthFt(params.LengthFt),
		r.setContents(items),
		r.SetCelsius(params.Celsius),
	); err != nil {
		return err
	}

	return f.identify(r.Container)
}

// identify allocates the next serial and formats the container's code.
func (f *Factory) identify(c *Container) error {
	serial := f.serials.Next()

	code, err := f.codes.Format(c.ownerCode, serial, c.kind.Category())
	if err != nil {
		return err
	}

	c.assignCode(serial, code)
	return nil
}
