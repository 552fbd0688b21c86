package queries

import (
	"context"

	"shipping/internal/core/ports"
)

// GetAllContainersQueryHandler lists every stored container.
type GetAllContainersQueryHandler struct {
	repository ports.ContainerRepository
}

func NewGetAllContainersQueryHandler(repository ports.ContainerRepository) GetAllContainersQueryHandler {
	return GetAllContainersQueryHandler{repository: repository}
}

// Handle returns the read models in the order the containers were added.
// The result is never nil.
func (h GetAllContainersQueryHandler) Handle(
	ctx context.Context,
	query GetAllContainersQuery,
) ([]ContainerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	units, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ContainerResponse, 0, len(units))
	for _, unit := range units {
		responses = append(responses, toResponse(unit))
	}

	return responses, nil
}
