package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrGetAllContainersQueryIsNotConstructed = errors.New(
	"GetAllContainersQuery must be created via NewGetAllContainersQuery constructor",
)

// GetAllContainersQuery retrieves the manifest of every container in service.
// This is a parameterless query.
type GetAllContainersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllContainersQuery() GetAllContainersQuery {
	return GetAllContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllContainersQueryIsNotConstructed)
}
