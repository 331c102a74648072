// Package fraud screens transactions with the fraud model and manages the
// lifecycle of the alerts it raises.
package fraud

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/aifinance/pkg/domain/fraud"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/shopspring/decimal"
)

// MaxHistory is the number of past transactions shown to the fraud model.
const MaxHistory = 10

// PatternAnalyzer returns the raw RISK_LEVEL|Explanation verdict of the
// fraud model for a transaction description.
type PatternAnalyzer interface {
	AnalyzeFraudPattern(ctx context.Context, transactionDetails string) (string, error)
}

// Analyzer scores transactions against a fraud threshold.
type Analyzer struct {
	model     PatternAnalyzer
	threshold decimal.Decimal
	logger    *slog.Logger
}

// NewAnalyzer creates an Analyzer. A transaction is fraudulent when its
// score is at or above threshold.
func NewAnalyzer(model PatternAnalyzer, threshold decimal.Decimal, logger *slog.Logger) *Analyzer {
	return &Analyzer{model: model, threshold: threshold, logger: logger}
}

// Threshold returns the configured fraud threshold.
func (a *Analyzer) Threshold() decimal.Decimal { return a.threshold }

// Analyze asks the fraud model about tx given the user's recent history.
// Malformed model output is not an error; a failed model call is.
func (a *Analyzer) Analyze(
	ctx context.Context,
	tx *dto.TransactionRead,
	history []*dto.TransactionRead,
) (fraud.Analysis, error) {
	raw, err := a.model.AnalyzeFraudPattern(ctx, BuildTransactionContext(tx, history))
	if err != nil {
		return fraud.Analysis{}, err
	}
	analysis := fraud.ParseAnalysis(raw, a.threshold)
	if analysis.Risk == fraud.RiskUnknown && analysis.Reason == fraud.UnparsableReason {
		a.logger.Warn("Invalid AI response format, defaulting to LOW risk",
			"transaction_id", tx.ID, "response", truncate(raw, 200))
	}
	return analysis, nil
}

// BuildTransactionContext describes the transaction and at most MaxHistory
// entries of history in the layout the fraud prompt expects.
func BuildTransactionContext(tx *dto.TransactionRead, history []*dto.TransactionRead) string {
	var b strings.Builder
	b.WriteString("Current Transaction:\n")
	fmt.Fprintf(&b, "Amount: $%s\n", tx.Amount.StringFixed(2))
	fmt.Fprintf(&b, "Category: %s\n", tx.Category)
	fmt.Fprintf(&b, "Merchant: %s\n", tx.Merchant)
	fmt.Fprintf(&b, "Location: %s\n", tx.Location)
	fmt.Fprintf(&b, "Time: %s\n\n", tx.TransactionDate.Format(time.RFC3339))

	b.WriteString("Recent Transaction History:\n")
	for i, h := range history {
		if i == MaxHistory {
			break
		}
		fmt.Fprintf(&b, "- $%s at %s (%s)\n", h.Amount.StringFixed(2), h.Merchant, h.Category)
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
