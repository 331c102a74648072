package repository

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"

	"github.com/amirasaad/aifinance/infra/repository/fraudalert"
	"github.com/amirasaad/aifinance/infra/repository/transaction"
	"github.com/amirasaad/aifinance/pkg/repository"
	fraudrepo "github.com/amirasaad/aifinance/pkg/repository/fraudalert"
	txrepo "github.com/amirasaad/aifinance/pkg/repository/transaction"
)

type constructors map[reflect.Type]func(*gorm.DB) any

func register[R any](c constructors, newRepo func(*gorm.DB) R) {
	c[reflect.TypeFor[R]()] = func(db *gorm.DB) any { return newRepo(db) }
}

// UoW binds repositories to a gorm session. Repositories obtained inside Do
// share its database transaction; outside Do they use the connection pool.
type UoW struct {
	db    *gorm.DB
	inTx  bool
	repos constructors
}

// NewUoW creates a unit of work over db.
func NewUoW(db *gorm.DB) *UoW {
	repos := constructors{}
	register(repos, transaction.New)
	register(repos, fraudalert.New)
	return &UoW{db: db, repos: repos}
}

// Do runs fn in a database transaction that commits when fn returns nil.
// Nested calls run in a savepoint of the enclosing transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: tx, inTx: true, repos: u.repos})
	})
}

// GetRepository returns the repository implementing repoType, bound to this
// unit of work's session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	newRepo, ok := u.repos[repoType]
	if !ok {
		return nil, fmt.Errorf("no repository registered for %v", repoType)
	}
	return newRepo(u.db), nil
}

func (u *UoW) TransactionRepository() (txrepo.Repository, error) {
	return resolve[txrepo.Repository](u)
}

func (u *UoW) FraudAlertRepository() (fraudrepo.Repository, error) {
	return resolve[fraudrepo.Repository](u)
}

// InTransaction reports whether the unit of work is bound to a transaction.
func (u *UoW) InTransaction() bool { return u.inTx }

func resolve[R any](u *UoW) (R, error) {
	var zero R
	repo, err := u.GetRepository(reflect.TypeFor[R]())
	if err != nil {
		return zero, err
	}
	return repo.(R), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
