package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirasaad/aifinance/pkg/domain/document"
	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/service/retrieval"
)

const (
	// SummaryDays is the window of the financial summary shown to the model.
	SummaryDays = 90
	// MaxRelevantDocuments caps the chunks retrieved per query.
	MaxRelevantDocuments = 3
)

// SummaryProvider aggregates a user's finances over a trailing window.
type SummaryProvider interface {
	Summarize(ctx context.Context, userID string, days int) (*dto.FinancialSummary, error)
}

// Retriever finds document chunks relevant to a query.
type Retriever interface {
	FindRelevant(ctx context.Context, query string, limit int) ([]*document.Chunk, error)
}

// AdviceContext is the prompt context for one advice request together with
// the documents it was built from.
type AdviceContext struct {
	Text      string
	Documents []string
}

// ContextBuilder merges a user's financial summary with retrieved knowledge.
type ContextBuilder struct {
	summaries   SummaryProvider
	retriever   Retriever
	summaryDays int
	maxDocs     int
}

// NewContextBuilder creates a ContextBuilder. Non-positive windows fall back
// to SummaryDays and MaxRelevantDocuments.
func NewContextBuilder(summaries SummaryProvider, retriever Retriever, summaryDays, maxDocs int) *ContextBuilder {
	if summaryDays <= 0 {
		summaryDays = SummaryDays
	}
	if maxDocs <= 0 {
		maxDocs = MaxRelevantDocuments
	}
	return &ContextBuilder{
		summaries:   summaries,
		retriever:   retriever,
		summaryDays: summaryDays,
		maxDocs:     maxDocs,
	}
}

// Build assembles the context. Retrieval runs at most once and its result
// feeds both the prompt and the reported documents.
func (b *ContextBuilder) Build(ctx context.Context, userID, query string, includeDocs bool) (AdviceContext, error) {
	summary, err := b.summaries.Summarize(ctx, userID, b.summaryDays)
	if err != nil {
		return AdviceContext{}, fmt.Errorf("financial summary: %w", err)
	}

	var sb strings.Builder
	writeSummary(&sb, summary, b.summaryDays)

	out := AdviceContext{Documents: []string{}}
	if includeDocs {
		chunks, err := b.retriever.FindRelevant(ctx, query, b.maxDocs)
		if err != nil {
			return AdviceContext{}, err
		}
		if len(chunks) > 0 {
			sb.WriteString("Relevant Financial Knowledge:\n\n")
			sb.WriteString(retrieval.BuildContext(chunks))
			sb.WriteString("\n\n")
			out.Documents = retrieval.DocumentNames(chunks)
		}
	}
	out.Text = sb.String()
	return out, nil
}

func writeSummary(sb *strings.Builder, s *dto.FinancialSummary, days int) {
	fmt.Fprintf(sb, "User's Financial Summary (Last %d days):\n", days)
	fmt.Fprintf(sb, "Total Income: $%s\n", s.TotalIncome.StringFixed(2))
	fmt.Fprintf(sb, "Total Expenses: $%s\n", s.TotalExpenses.StringFixed(2))
	fmt.Fprintf(sb, "Total Investments: $%s\n", s.TotalInvestment.StringFixed(2))
	fmt.Fprintf(sb, "Net Savings: $%s\n\n", s.NetSavings.StringFixed(2))

	if len(s.TopCategories) == 0 {
		return
	}
	sb.WriteString("Top Categories:\n")
	for _, c := range s.TopCategories {
		fmt.Fprintf(sb, "- %s: $%s (%d transactions)\n", c.Category, c.Total.StringFixed(2), c.Count)
	}
	sb.WriteString("\n")
}
