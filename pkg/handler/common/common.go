// Package common holds helpers shared by event handlers.
package common

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/amirasaad/aifinance/pkg/repository"
)

var ErrInvalidRepositoryType = errors.New("invalid repository type")

// Repository resolves the repository interface R bound to uow, for example
// Repository[transaction.Repository](uow).
func Repository[R any](uow repository.UnitOfWork) (R, error) {
	var zero R
	repoAny, err := uow.GetRepository(reflect.TypeFor[R]())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not %s", ErrInvalidRepositoryType, repoAny, reflect.TypeFor[R]())
	}
	return repo, nil
}
