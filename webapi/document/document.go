package document

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/amirasaad/aifinance/pkg/domain/document"
	"github.com/amirasaad/aifinance/pkg/service/ingestion"
	"github.com/amirasaad/aifinance/webapi/common"
)

// Ingester loads the configured document source into the store.
type Ingester interface {
	Ingest(ctx context.Context) (ingestion.Result, error)
}

// IngesterFunc adapts a function to Ingester.
type IngesterFunc func(ctx context.Context) (ingestion.Result, error)

func (f IngesterFunc) Ingest(ctx context.Context) (ingestion.Result, error) { return f(ctx) }

// Searcher finds chunks relevant to a query.
type Searcher interface {
	FindRelevant(ctx context.Context, query string, limit int) ([]*document.Chunk, error)
}

const defaultSearchLimit = 5

// ChunkView is a search hit without its embedding.
type ChunkView struct {
	DocumentName string `json:"documentName"`
	Content      string `json:"content"`
	ChunkIndex   int    `json:"chunkIndex"`
	TotalChunks  int    `json:"totalChunks"`
}

// IngestResponse reports one ingestion run.
type IngestResponse struct {
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Failures  []string `json:"failures,omitempty"`
}

func Routes(app *fiber.App, ingester Ingester, searcher Searcher) {
	g := app.Group("/api/documents")
	g.Post("/ingest", Ingest(ingester))
	g.Get("/search", Search(searcher))
}

// Ingest runs document ingestion synchronously.
// @Summary Ingest documents
// @Tags documents
// @Produce json
// @Success 200 {object} common.Response
// @Failure 500 {object} common.ProblemDetails
// @Router /api/documents/ingest [post]
func Ingest(ingester Ingester) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := ingester.Ingest(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Document ingestion failed", err)
		}
		out := IngestResponse{Processed: res.Processed, Skipped: res.Skipped, Failed: res.Failed}
		for _, f := range res.Failures {
			out.Failures = append(out.Failures, f.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Documents ingested", out)
	}
}

// Search returns the stored chunks most similar to q.
// @Summary Search documents
// @Tags documents
// @Produce json
// @Param q query string true "Query"
// @Param limit query int false "Maximum hits"
// @Success 200 {object} common.Response
// @Router /api/documents/search [get]
func Search(searcher Searcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			return common.ProblemDetailsJSON(c, "Query is required", nil, "query parameter q is required", fiber.StatusBadRequest)
		}
		limit, err := common.QueryInt(c, "limit", defaultSearchLimit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid limit", err)
		}
		chunks, err := searcher.FindRelevant(c.UserContext(), q, limit)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Search failed", err)
		}
		views := make([]ChunkView, 0, len(chunks))
		for _, ch := range chunks {
			views = append(views, ChunkView{
				DocumentName: ch.DocumentName,
				Content:      ch.Content,
				ChunkIndex:   ch.Metadata.ChunkIndex,
				TotalChunks:  ch.Metadata.TotalChunks,
			})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Documents found", views)
	}
}
