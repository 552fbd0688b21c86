package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"shipping/internal/core/domain/model/container"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/iso6346"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Add(ctx context.Context, unit container.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, unit container.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, code string) (container.Unit, error) {
	args := m.Called(ctx, code)
	unit, _ := args.Get(0).(container.Unit)
	return unit, args.Error(1)
}

func (m *MockContainerRepository) GetAll(ctx context.Context) ([]container.Unit, error) {
	args := m.Called(ctx)
	units, _ := args.Get(0).([]container.Unit)
	return units, args.Error(1)
}

type MockContainerFactory struct{ mock.Mock }

func (m *MockContainerFactory) Create(
	kind container.Kind,
	params container.Params,
	celsius *float64,
	items []string,
) (container.Unit, error) {
	args := m.Called(kind, params, celsius, items)
	unit, _ := args.Get(0).(container.Unit)
	return unit, args.Error(1)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) ContainerCreated(kind string) {
	m.Called(kind)
}

func (m *MockMetrics) TemperatureChanged(kind string) {
	m.Called(kind)
}

func (m *MockMetrics) TemperatureRejected(kind string) {
	m.Called(kind)
}

func (m *MockMetrics) CargoLoaded(items int) {
	m.Called(items)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newFactory() *container.Factory {
	return container.NewFactory(services.NewSerialAllocator(services.DefaultSerialSeed), iso6346.NewFormatter())
}

func newDry(t *testing.T) *container.Container {
	t.Helper()
	c, err := newFactory().CreateWithItems(container.Params{OwnerCode: "ABC", LengthFt: 20}, []string{"coffee"})
	require.NoError(t, err)
	return c
}

func newReefer(t *testing.T, celsius float64) *container.Refrigerated {
	t.Helper()
	r, err := newFactory().CreateEmptyRefrigerated(container.RefrigeratedParams{
		Params:  container.Params{OwnerCode: "ABC", LengthFt: 20},
		Celsius: celsius,
	})
	require.NoError(t, err)
	return r
}
