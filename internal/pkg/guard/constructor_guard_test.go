package guard_test

import (
	"errors"
	"sync"
	"testing"

	"shipping/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("container must be created via its factory")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		copied := g

		// Then
		require.NoError(t, copied.Validate(errNotConstructed))
	})
}

// TestConstructorGuard_EmbeddedUsage shows the guard inside a value object the
// way domain packages use it.
func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errReadingNotConstructed := errors.New("Reading must be created via NewReading")

	type Reading struct {
		celsius float64
		guard   guard.ConstructorGuard
	}

	newReading := func(celsius float64) (Reading, error) {
		if celsius > 4.0 {
			return Reading{}, errors.New("temperature too hot")
		}
		return Reading{celsius: celsius, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(r Reading) error {
		return r.guard.Validate(errReadingNotConstructed)
	}

	t.Run("constructed_reading_is_valid", func(t *testing.T) {
		reading, err := newReading(2.5)

		require.NoError(t, err)
		require.NoError(t, validate(reading))
		assert.InDelta(t, 2.5, reading.celsius, 1e-9)
	})

	t.Run("declared_reading_is_rejected", func(t *testing.T) {
		var reading Reading

		assert.Equal(t, errReadingNotConstructed, validate(reading))
	})

	t.Run("constructor_keeps_business_rules", func(t *testing.T) {
		_, err := newReading(4.1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "too hot")
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	errNotConstructed := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, g.Validate(errNotConstructed))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Validate(err)
	}
}
