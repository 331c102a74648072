package dto

import "github.com/shopspring/decimal"

// CategoryTotal aggregates a user's transactions in one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Count    int64           `json:"count"`
	Total    decimal.Decimal `json:"total"`
}

// FinancialSummary aggregates a user's transactions over a trailing window.
type FinancialSummary struct {
	UserID          string          `json:"userId"`
	PeriodDays      int             `json:"periodDays"`
	Period          string          `json:"period"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	NetSavings      decimal.Decimal `json:"netSavings"`
	TopCategories   []CategoryTotal `json:"topCategories"`
}
