package fraud

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertStatus is the lifecycle state of a fraud alert.
type AlertStatus string

const (
	StatusPending       AlertStatus = "PENDING"
	StatusUnderReview   AlertStatus = "UNDER_REVIEW"
	StatusConfirmed     AlertStatus = "CONFIRMED"
	StatusFalsePositive AlertStatus = "FALSE_POSITIVE"
)

func (s AlertStatus) String() string { return string(s) }

// Valid reports whether s is a known status.
func (s AlertStatus) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusConfirmed, StatusFalsePositive:
		return true
	}
	return false
}

// Terminal reports whether s ends the lifecycle. Terminal alerts carry a
// resolution timestamp.
func (s AlertStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusFalsePositive
}

// ParseStatus parses an alert status case-insensitively.
func ParseStatus(s string) (AlertStatus, error) {
	st := AlertStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown alert status %q", domain.ErrValidation, s)
	}
	return st, nil
}

var transitions = map[AlertStatus][]AlertStatus{
	StatusPending:     {StatusUnderReview, StatusConfirmed, StatusFalsePositive},
	StatusUnderReview: {StatusConfirmed, StatusFalsePositive},
}

// CanTransition reports whether an alert may move from one status to another.
// Transitions only move toward a terminal state.
func CanTransition(from, to AlertStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns ErrInvalidTransition when from -> to is not allowed.
func CheckTransition(from, to AlertStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown alert status %q", domain.ErrValidation, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// ResolvedAt returns the resolution timestamp a transition into to must carry,
// or nil for non-terminal targets.
func ResolvedAt(to AlertStatus, now time.Time) *time.Time {
	if !to.Terminal() {
		return nil
	}
	return &now
}

// Alert is a suspected fraudulent transaction awaiting resolution.
type Alert struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	UserID        string
	Score         decimal.Decimal
	Reason        string
	Status        AlertStatus
	DetectedAt    time.Time
	ResolvedAt    *time.Time
}

// NewAlert creates a PENDING alert for the given transaction.
func NewAlert(transactionID uuid.UUID, userID string, score decimal.Decimal, reason string) *Alert {
	return &Alert{
		ID:            uuid.New(),
		TransactionID: transactionID,
		UserID:        userID,
		Score:         score.Round(2),
		Reason:        reason,
		Status:        StatusPending,
		DetectedAt:    time.Now().UTC(),
	}
}
