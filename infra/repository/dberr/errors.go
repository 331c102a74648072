// Package dberr maps database errors to domain errors.
package dberr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/amirasaad/aifinance/pkg/domain"
)

// gormToDomain pairs gorm sentinels with the domain category they belong to.
var gormToDomain = []struct {
	gorm   error
	domain error
}{
	{gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
	{gorm.ErrRecordNotFound, domain.ErrNotFound},
	// A row is still referenced, e.g. a transaction that has a fraud alert.
	{gorm.ErrForeignKeyViolated, domain.ErrConflict},
	{gorm.ErrCheckConstraintViolated, domain.ErrValidation},
}

// MapGormErrorToDomain tags err with the domain category of the first gorm
// sentinel found in its chain; both stay reachable with errors.Is. Other
// errors are returned unchanged. Unique violations only surface as
// gorm.ErrDuplicatedKey on connections opened with TranslateError.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range gormToDomain {
		if errors.Is(err, m.gorm) {
			return fmt.Errorf("%w: %w", m.domain, err)
		}
	}
	return err
}

// WrapError runs a gorm operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(&row).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// RequireAffected maps a write that touched no rows to domain.ErrNotFound.
func RequireAffected(res *gorm.DB) error {
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
