package queries

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetContainerQueryIsNotConstructed = errors.New(
	"GetContainerQuery must be created via NewGetContainerQuery constructor",
)

// GetContainerQuery looks up one container by its code.
//
// Example:
//
//	query, err := NewGetContainerQuery("ABCR0013373")
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve container: %w", err)
//	}
//	fmt.Printf("%s holds %d items\n", response.Code, len(response.Items))
type GetContainerQuery struct {
	code string

	guard guard.ConstructorGuard
}

func NewGetContainerQuery(code string) (GetContainerQuery, error) {
	if code == "" {
		return GetContainerQuery{}, errs.NewValueIsRequiredError("code")
	}

	return GetContainerQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContainerQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerQueryIsNotConstructed)
}

func (q GetContainerQuery) Code() string {
	return q.code
}
