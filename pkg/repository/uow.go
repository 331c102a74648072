package repository

import (
	"context"
	"reflect"

	"github.com/amirasaad/aifinance/pkg/repository/fraudalert"
	"github.com/amirasaad/aifinance/pkg/repository/transaction"
)

// UnitOfWork scopes repository access to one database session.
//
// Services that must change several rows atomically wrap the work in Do and
// take their repositories from the UnitOfWork handed to the callback:
//
//	err := uow.Do(ctx, func(tx UnitOfWork) error {
//		alerts, err := tx.FraudAlertRepository()
//		...
//	})
type UnitOfWork interface {
	// Do runs fn in a transaction, rolled back when fn returns an error.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository looks a repository up by its interface type.
	GetRepository(repoType reflect.Type) (any, error)

	TransactionRepository() (transaction.Repository, error)
	FraudAlertRepository() (fraudalert.Repository, error)
}
