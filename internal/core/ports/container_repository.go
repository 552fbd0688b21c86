package ports

import (
	"context"

	"shipping/internal/core/domain/model/container"
)

// ContainerRepository stores containers by their code.
type ContainerRepository interface {
	// Add stores a new container. Its code must not be stored yet.
	Add(ctx context.Context, unit container.Unit) error

	// Update replaces a stored container with the same code.
	Update(ctx context.Context, unit container.Unit) error

	// Get returns the container with the given code or an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, code string) (container.Unit, error)

	// GetAll returns every stored container in the order they were added.
	GetAll(ctx context.Context) ([]container.Unit, error)
}
