package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/pkg/llm"
)

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Chunk, embed and store the configured document source",
		Long: `Ingest every supported document from the configured source (a local
directory or a GCS bucket). Documents already in the store are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.IngestionService.Ingest(cmd.Context(), a.Deps.DocumentSource)
			if err != nil {
				return fmt.Errorf("ingestion failed: %w", err)
			}
			printIngestResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the knowledge base",
		Long: `Search stored document chunks by semantic similarity.

Examples:
  aifinance search "emergency fund"
  aifinance search "index funds" --limit 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			chunks, err := a.RetrievalService.FindRelevant(cmd.Context(), args[0], limit)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			printChunks(cmd.OutOrStdout(), args[0], chunks)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum results")
	return cmd
}

func adviseCmd() *cobra.Command {
	var (
		userID   string
		provider string
		noDocs   bool
	)
	cmd := &cobra.Command{
		Use:   "advise [question]",
		Short: "Ask the financial advisor",
		Long: `Answer a question using the user's recent transactions and, unless
--no-docs is set, the most relevant knowledge base passages.

Examples:
  aifinance advise --user u1 "How much should I keep in savings?"
  aifinance advise --user u1 --provider gemini "Should I pay off my loan early?"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider != "" {
				if _, err := llm.ParseProvider(provider); err != nil {
					return err
				}
			}
			a, cleanup, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := a.AdvisorService.GetAdvice(cmd.Context(), dto.AdvisorQuery{
				UserID:                 userID,
				Query:                  args[0],
				Provider:               strings.ToUpper(provider),
				IncludeDocumentContext: !noDocs,
			})
			if err != nil {
				return fmt.Errorf("advice failed: %w", err)
			}
			printAdvice(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id (required)")
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "model provider (ollama, openai, gemini)")
	cmd.Flags().BoolVar(&noDocs, "no-docs", false, "answer without knowledge base context")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func alertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Review fraud alerts",
	}
	cmd.AddCommand(alertsListCmd(), alertsUpdateCmd())
	return cmd
}

func alertsListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list [user]",
		Short: "List a user's fraud alerts, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var alerts []*dto.FraudAlertRead
			if status != "" {
				alerts, err = a.FraudLifecycle.ListUserAlertsByStatus(cmd.Context(), args[0], strings.ToUpper(status))
			} else {
				alerts, err = a.FraudLifecycle.ListUserAlerts(cmd.Context(), args[0])
			}
			if err != nil {
				return fmt.Errorf("listing alerts failed: %w", err)
			}
			printAlerts(cmd.OutOrStdout(), alerts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "filter by status (PENDING, UNDER_REVIEW, CONFIRMED, FALSE_POSITIVE)")
	return cmd
}

func alertsUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [alert-id] [status]",
		Short: "Move an alert to a new review status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid alert id %q: %w", args[0], err)
			}
			a, cleanup, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			alert, err := a.FraudLifecycle.UpdateStatus(cmd.Context(), id, strings.ToUpper(args[1]))
			if err != nil {
				return err
			}
			printAlerts(cmd.OutOrStdout(), []*dto.FraudAlertRead{alert})
			return nil
		},
	}
}
