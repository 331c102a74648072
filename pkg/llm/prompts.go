package llm

import (
	"fmt"
	"strings"
)

const advisorSystemPrompt = `You are an expert financial advisor with deep knowledge of personal finance,
investment strategies, stock management, and financial planning.

Your role is to provide accurate, helpful, and actionable financial advice
based on the user's query and their financial data.

Guidelines:
- Be specific and practical in your recommendations
- Consider risk tolerance and time horizons
- Cite relevant financial principles when applicable
- Always remind users that this is educational advice, not professional financial planning
- Be concise but thorough
- Use the provided context from financial documents to support your advice
`

const advicePromptTemplate = `Based on the following financial knowledge and context:

%s

Please answer the following question:
%s

Provide specific, actionable advice referencing the context where relevant.
`

const fraudPromptTemplate = `Analyze the following transaction for potential fraud indicators.
Consider factors like:
- Unusual amount patterns
- Location anomalies
- Merchant reputation
- Transaction timing
- Spending patterns

Transaction Details:
%s

Provide a fraud risk assessment (LOW, MEDIUM, HIGH) and explain the reasoning.
Format your response as: RISK_LEVEL|Explanation
Example: HIGH|Transaction amount is 500%% higher than average monthly spending
`

// AdvisorSystemPrompt returns the persona used for advice requests.
func AdvisorSystemPrompt() string { return advisorSystemPrompt }

// BuildAdvicePrompt places a non-blank context ahead of the query.
func BuildAdvicePrompt(query, context string) string {
	if strings.TrimSpace(context) == "" {
		return query
	}
	return fmt.Sprintf(advicePromptTemplate, context, query)
}

// BuildFraudPrompt asks for a RISK_LEVEL|Explanation answer about the
// given transaction details.
func BuildFraudPrompt(transactionDetails string) string {
	return fmt.Sprintf(fraudPromptTemplate, transactionDetails)
}
