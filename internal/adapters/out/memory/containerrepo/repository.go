// Package containerrepo keeps containers in process memory.
package containerrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"shipping/internal/core/domain/model/container"
	"shipping/internal/pkg/errs"
)

var ErrContainerAlreadyExists = errors.New("container already exists")

// Repository implements ports.ContainerRepository with a map guarded by a
// sync.RWMutex. Stored containers are shared with callers, so a caller that
// mutates a container must persist it with Update.
type Repository struct {
	mu    sync.RWMutex
	units map[string]container.Unit
	order []string
}

func NewRepository() *Repository {
	return &Repository{
		units: make(map[string]container.Unit),
	}
}

// Add stores a new container.
func (r *Repository) Add(ctx context.Context, unit container.Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(unit); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code := unit.Code()
	if _, ok := r.units[code]; ok {
		return fmt.Errorf("%w: %s", ErrContainerAlreadyExists, code)
	}

	r.units[code] = unit
	r.order = append(r.order, code)
	return nil
}

// Update replaces an existing container.
func (r *Repository) Update(ctx context.Context, unit container.Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(unit); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code := unit.Code()
	if _, ok := r.units[code]; !ok {
		return errs.NewObjectNotFoundError("code", code)
	}

	r.units[code] = unit
	return nil
}

// Get retrieves a container by code.
func (r *Repository) Get(ctx context.Context, code string) (container.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, ok := r.units[code]
	if !ok {
		return nil, errs.NewObjectNotFoundError("code", code)
	}
	return unit, nil
}

// GetAll retrieves all containers in insertion order.
func (r *Repository) GetAll(ctx context.Context) ([]container.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]container.Unit, 0, len(r.order))
	for _, code := range r.order {
		units = append(units, r.units[code])
	}
	return units, nil
}

func validate(unit container.Unit) error {
	if unit == nil {
		return errs.NewValueIsRequiredError("container")
	}
	return unit.Validate()
}
