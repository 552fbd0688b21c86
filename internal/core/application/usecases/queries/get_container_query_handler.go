package queries

import (
	"context"

	"shipping/internal/core/ports"
)

// GetContainerQueryHandler reads a single container from the repository.
type GetContainerQueryHandler struct {
	repository ports.ContainerRepository
}

func NewGetContainerQueryHandler(repository ports.ContainerRepository) GetContainerQueryHandler {
	return GetContainerQueryHandler{repository: repository}
}

// Handle returns the container's read model or the repository's
// errs.ObjectNotFoundError.
func (h GetContainerQueryHandler) Handle(ctx context.Context, query GetContainerQuery) (ContainerResponse, error) {
	if err := query.Validate(); err != nil {
		return ContainerResponse{}, err
	}

	unit, err := h.repository.Get(ctx, query.Code())
	if err != nil {
		return ContainerResponse{}, err
	}

	return toResponse(unit), nil
}
