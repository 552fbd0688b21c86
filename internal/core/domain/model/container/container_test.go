package container_test

import (
	"errors"
	"math"
	"testing"

	"shipping/internal/core/domain/model/container"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/iso6346"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFactory() *container.Factory {
	return container.NewFactory(services.NewSerialAllocator(services.DefaultSerialSeed), iso6346.NewFormatter())
}

func dryParams(lengthFt float64) container.Params {
	return container.Params{OwnerCode: "ABC", LengthFt: lengthFt}
}

type MockCodeFormatter struct{ mock.Mock }

func (m *MockCodeFormatter) Format(ownerCode string, serial int64, category iso6346.Category) (string, error) {
	args := m.Called(ownerCode, serial, category)
	return args.String(0), args.Error(1)
}

func TestFactory_CreateEmpty(t *testing.T) {
	t.Run("first container embeds the seed serial", func(t *testing.T) {
		// Given
		factory := newFactory()

		// When
		c, err := factory.CreateEmpty(dryParams(10))

		// Then
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		require.NoError(t, c.ID().Validate())
		assert.Equal(t, "ABCU0013375", c.Code())
		assert.Contains(t, c.Code(), "001337")
		assert.Equal(t, int64(1337), c.Serial())
		assert.Equal(t, "ABC", c.OwnerCode())
		assert.Equal(t, container.KindDry, c.Kind())
		assert.InDelta(t, 10.0, c.LengthFt(), 1e-9)
		assert.Empty(t, c.Contents())
	})

	t.Run("next container gets the next serial", func(t *testing.T) {
		// Given
		factory := newFactory()
		_, err := factory.CreateEmpty(dryParams(10))
		require.NoError(t, err)

		// When
		second, err := factory.CreateEmpty(dryParams(10))

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(1338), second.Serial())
		assert.Contains(t, second.Code(), "001338")
	})

	t.Run("rejects non-positive and non-finite lengths", func(t *testing.T) {
		for _, length := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			// Given
			factory := newFactory()

			// When
			c, err := factory.CreateEmpty(dryParams(length))

			// Then
			require.ErrorIs(t, err, container.ErrInvalidDimension, "length %v", length)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, c)
		}
	})

	t.Run("rejected parameters do not consume a serial", func(t *testing.T) {
		// Given
		factory := newFactory()
		_, err := factory.CreateEmpty(dryParams(-5))
		require.Error(t, err)

		// When
		c, err := factory.CreateEmpty(dryParams(20))

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(1337), c.Serial())
	})

	t.Run("requires an owner code", func(t *testing.T) {
		c, err := newFactory().CreateEmpty(container.Params{LengthFt: 20})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("reports every invalid parameter", func(t *testing.T) {
		_, err := newFactory().CreateEmpty(container.Params{LengthFt: 0})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, container.ErrInvalidDimension)
	})

	t.Run("malformed owner code fails with a format error", func(t *testing.T) {
		c, err := newFactory().CreateEmpty(container.Params{OwnerCode: "AB1", LengthFt: 20})

		var formatErr *iso6346.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "owner code", formatErr.Field)
		assert.Nil(t, c)
	})
}

func TestFactory_FormatterErrorsArePropagatedUnchanged(t *testing.T) {
	// Given
	formatErr := &iso6346.FormatError{Field: "owner code", Value: "??", Reason: "rejected"}
	formatter := new(MockCodeFormatter)
	formatter.On("Format", "??X", int64(1337), iso6346.Category("")).Return("", formatErr).Once()
	factory := container.NewFactory(services.NewSerialAllocator(services.DefaultSerialSeed), formatter)

	// When
	c, err := factory.CreateEmpty(container.Params{OwnerCode: "??X", LengthFt: 20})

	// Then
	assert.Nil(t, c)
	assert.Same(t, formatErr, err)
	formatter.AssertExpectations(t)
}

func TestFactory_PassesCategoryToFormatter(t *testing.T) {
	// Given
	formatter := new(MockCodeFormatter)
	formatter.On("Format", "ABC", int64(1), iso6346.Category("")).Return("ABCU0000013", nil).Once()
	formatter.On("Format", "ABC", int64(2), iso6346.Refrigerated).Return("ABCR0000024", nil).Once()
	formatter.On("Format", "ABC", int64(3), iso6346.Refrigerated).Return("ABCR0000035", nil).Once()
	factory := container.NewFactory(services.NewSerialAllocator(1), formatter)
	reeferParams := container.RefrigeratedParams{Params: dryParams(20), Celsius: 0}

	// When
	dry, dryErr := factory.CreateEmpty(dryParams(20))
	reefer, reeferErr := factory.CreateEmptyRefrigerated(reeferParams)
	heated, heatedErr := factory.CreateEmptyHeatedRefrigerated(reeferParams)

	// Then
	require.NoError(t, errors.Join(dryErr, reeferErr, heatedErr))
	assert.Equal(t, "ABCU0000013", dry.Code())
	assert.Equal(t, "ABCR0000024", reefer.Code())
	assert.Equal(t, "ABCR0000035", heated.Code())
	formatter.AssertExpectations(t)
}

func TestFactory_SerialsIncreaseAcrossKinds(t *testing.T) {
	// Given
	factory := newFactory()
	reeferParams := container.RefrigeratedParams{Params: dryParams(20), Celsius: -5}

	units := make([]container.Unit, 0, 9)
	for range 3 {
		dry, err := factory.CreateEmpty(dryParams(20))
		require.NoError(t, err)
		reefer, err := factory.CreateEmptyRefrigerated(reeferParams)
		require.NoError(t, err)
		heated, err := factory.CreateEmptyHeatedRefrigerated(reeferParams)
		require.NoError(t, err)
		units = append(units, dry, reefer, heated)
	}

	// Then
	seen := make(map[string]bool, len(units))
	for i, unit := range units {
		code, err := iso6346.Parse(unit.Code())
		require.NoError(t, err)
		assert.Equal(t, services.DefaultSerialSeed+int64(i), code.SerialNumber())
		assert.Equal(t, unit.Serial(), code.SerialNumber())
		assert.False(t, seen[unit.Code()], "duplicate code %s", unit.Code())
		seen[unit.Code()] = true
	}
}

func TestFactory_CreateWithItems(t *testing.T) {
	t.Run("copies the items", func(t *testing.T) {
		// Given
		items := []string{"bananas", "coffee"}

		// When
		c, err := newFactory().CreateWithItems(dryParams(20), items)
		require.NoError(t, err)
		items[0] = "rocks"

		// Then
		assert.Equal(t, []string{"bananas", "coffee"}, c.Contents())
	})

	t.Run("contents returns a copy", func(t *testing.T) {
		// Given
		c, err := newFactory().CreateWithItems(dryParams(20), []string{"bananas"})
		require.NoError(t, err)

		// When
		contents := c.Contents()
		contents[0] = "rocks"

		// Then
		assert.Equal(t, []string{"bananas"}, c.Contents())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		c, err := newFactory().CreateWithItems(dryParams(20), []string{"bananas", ""})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})
}

func TestFactory_Create(t *testing.T) {
	celsius := 2.0

	tests := []struct {
		name     string
		kind     container.Kind
		celsius  *float64
		wantKind container.Kind
		wantErr  error
	}{
		{name: "dry", kind: container.KindDry, wantKind: container.KindDry},
		{name: "refrigerated", kind: container.KindRefrigerated, celsius: &celsius, wantKind: container.KindRefrigerated},
		{
			name:     "heated refrigerated",
			kind:     container.KindHeatedRefrigerated,
			celsius:  &celsius,
			wantKind: container.KindHeatedRefrigerated,
		},
		{name: "dry with temperature", kind: container.KindDry, celsius: &celsius, wantErr: container.ErrNotTemperatureControlled},
		{name: "refrigerated without temperature", kind: container.KindRefrigerated, wantErr: errs.ErrValueIsRequired},
		{name: "unknown kind", kind: container.KindUnknown, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := newFactory().Create(tt.kind, dryParams(20), tt.celsius, []string{"cargo"})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, unit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, unit.Kind())
			assert.Equal(t, []string{"cargo"}, unit.Contents())

			_, controlled := unit.(container.TemperatureControlled)
			assert.Equal(t, tt.kind.IsTemperatureControlled(), controlled)
		})
	}
}

func TestContainer_Volume(t *testing.T) {
	tests := []struct {
		lengthFt float64
		want     float64
	}{
		{lengthFt: 20, want: 1360},
		{lengthFt: 40, want: 2720},
		{lengthFt: 10, want: 680},
	}

	for _, tt := range tests {
		c, err := newFactory().CreateEmpty(dryParams(tt.lengthFt))
		require.NoError(t, err)

		assert.InDelta(t, tt.want, c.Volume(), 1e-9)
	}
}

func TestContainer_LoadAndUnload(t *testing.T) {
	t.Run("load appends in order", func(t *testing.T) {
		// Given
		c, err := newFactory().CreateWithItems(dryParams(20), []string{"bananas"})
		require.NoError(t, err)

		// When
		err = c.Load("coffee", "tea")

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{"bananas", "coffee", "tea"}, c.Contents())
	})

	t.Run("load with an empty item loads nothing", func(t *testing.T) {
		// Given
		c, err := newFactory().CreateEmpty(dryParams(20))
		require.NoError(t, err)

		// When
		err = c.Load("coffee", "")

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Empty(t, c.Contents())
	})

	t.Run("unload removes the first occurrence", func(t *testing.T) {
		// Given
		c, err := newFactory().CreateWithItems(dryParams(20), []string{"tea", "coffee", "tea"})
		require.NoError(t, err)

		// When
		err = c.Unload("tea")

		// Then
		require.NoError(t, err)
		assert.Equal(t, []string{"coffee", "tea"}, c.Contents())
	})

	t.Run("unload of a missing item fails", func(t *testing.T) {
		// Given
		c, err := newFactory().CreateWithItems(dryParams(20), []string{"coffee"})
		require.NoError(t, err)

		// When
		err = c.Unload("tea")

		// Then
		require.ErrorIs(t, err, container.ErrItemNotLoaded)
		assert.Equal(t, []string{"coffee"}, c.Contents())
	})
}

func TestContainer_IdentityAndFormatting(t *testing.T) {
	factory := newFactory()
	first, err := factory.CreateEmpty(dryParams(20))
	require.NoError(t, err)
	second, err := factory.CreateEmpty(dryParams(20))
	require.NoError(t, err)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
	assert.False(t, first.ID().IsEqual(second.ID()))
	assert.Equal(t, "DryContainer(code=ABCU0013375, owner_code=ABC, length_ft=20)", first.String())
}

func TestContainer_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var c container.Container

		assert.Equal(t, container.ErrContainerIsNotConstructed, c.Validate())
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		var c *container.Container

		assert.Equal(t, container.ErrContainerIsNotConstructed, c.Validate())
	})

	t.Run("zero value variants are rejected", func(t *testing.T) {
		var r container.Refrigerated
		var h container.HeatedRefrigerated

		assert.Equal(t, container.ErrContainerIsNotConstructed, r.Validate())
		assert.Equal(t, container.ErrContainerIsNotConstructed, h.Validate())
	})
}
