package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "duplicate key", input: gorm.ErrDuplicatedKey, expected: domain.ErrAlreadyExists},
		{name: "record not found", input: gorm.ErrRecordNotFound, expected: domain.ErrNotFound},
		{name: "foreign key", input: gorm.ErrForeignKeyViolated, expected: domain.ErrConflict},
		{name: "check constraint", input: gorm.ErrCheckConstraintViolated, expected: domain.ErrValidation},
		{
			name:     "joined duplicate key",
			input:    errors.Join(errors.New("outer"), gorm.ErrDuplicatedKey),
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "wrapped not found",
			input:    fmt.Errorf("load alert: %w", gorm.ErrRecordNotFound),
			expected: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			if tt.expected == nil {
				require.NoError(t, result)
				return
			}
			assert.ErrorIs(t, result, tt.expected)
			assert.ErrorIs(t, result, tt.input, "cause stays reachable")
		})
	}
}

func TestMapGormErrorToDomain_UnmappedReturnsOriginal(t *testing.T) {
	t.Parallel()
	orig := errors.New("connection reset by peer")
	assert.Same(t, orig, MapGormErrorToDomain(orig))
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrDuplicatedKey }), domain.ErrAlreadyExists)

	assert.Panics(t, func() {
		_ = WrapError(func() error { panic("boom") })
	})
}

func TestRequireAffected(t *testing.T) {
	t.Parallel()
	assert.NoError(t, RequireAffected(&gorm.DB{RowsAffected: 1}))
	assert.ErrorIs(t, RequireAffected(&gorm.DB{RowsAffected: 0}), domain.ErrNotFound)
	assert.ErrorIs(t, RequireAffected(&gorm.DB{Error: gorm.ErrDuplicatedKey}), domain.ErrAlreadyExists)
}
