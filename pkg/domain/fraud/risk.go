package fraud

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RiskLevel is the bucket the fraud model assigns to a transaction.
type RiskLevel string

const (
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
	RiskUnknown RiskLevel = "UNKNOWN"
)

// UnparsableReason is reported when the model output does not follow the
// RISK_LEVEL|explanation grammar.
const UnparsableReason = "Unable to parse AI response"

var (
	ScoreHigh    = decimal.RequireFromString("0.90")
	ScoreMedium  = decimal.RequireFromString("0.60")
	ScoreDefault = decimal.RequireFromString("0.20")
)

// ParseRiskLevel maps model text to a bucket. Anything that is not LOW,
// MEDIUM or HIGH is UNKNOWN.
func ParseRiskLevel(s string) RiskLevel {
	switch RiskLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case RiskHigh:
		return RiskHigh
	case RiskMedium:
		return RiskMedium
	case RiskLow:
		return RiskLow
	}
	return RiskUnknown
}

// Score is a pure function of the bucket.
func (r RiskLevel) Score() decimal.Decimal {
	switch r {
	case RiskHigh:
		return ScoreHigh
	case RiskMedium:
		return ScoreMedium
	default:
		return ScoreDefault
	}
}

// Analysis is the outcome of evaluating one transaction.
type Analysis struct {
	Risk       RiskLevel
	Score      decimal.Decimal
	Reason     string
	Fraudulent bool
}

// ParseAnalysis turns raw model output into an Analysis. Malformed output
// fails open to the default score instead of returning an error.
func ParseAnalysis(raw string, threshold decimal.Decimal) Analysis {
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) < 2 {
		return Analysis{
			Risk:       RiskUnknown,
			Score:      ScoreDefault,
			Reason:     UnparsableReason,
			Fraudulent: false,
		}
	}
	risk := ParseRiskLevel(parts[0])
	score := risk.Score()
	return Analysis{
		Risk:       risk,
		Score:      score,
		Reason:     strings.TrimSpace(parts[1]),
		Fraudulent: score.GreaterThanOrEqual(threshold),
	}
}
