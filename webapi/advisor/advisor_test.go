package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/dto"
)

type advisorFunc func(ctx context.Context, q dto.AdvisorQuery) (*dto.AdvisorResponse, error)

func (f advisorFunc) GetAdvice(ctx context.Context, q dto.AdvisorQuery) (*dto.AdvisorResponse, error) {
	return f(ctx, q)
}

func post(t *testing.T, svc Service, body string) (int, []byte) {
	t.Helper()
	app := fiber.New()
	Routes(app, svc)
	req := httptest.NewRequest(fiber.MethodPost, "/api/advisor/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	return resp.StatusCode, raw
}

func TestQuery(t *testing.T) {
	var got dto.AdvisorQuery
	svc := advisorFunc(func(_ context.Context, q dto.AdvisorQuery) (*dto.AdvisorResponse, error) {
		got = q
		return &dto.AdvisorResponse{
			Advice:            "Build an emergency fund first.",
			Provider:          "OLLAMA",
			RelevantDocuments: []string{"budgeting.md"},
		}, nil
	})

	code, raw := post(t, svc, `{"userId":"u1","query":"How should I save?","includeDocumentContext":true}`)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "u1", got.UserID)
	assert.True(t, got.IncludeDocumentContext)

	var body struct {
		Data dto.AdvisorResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Build an emergency fund first.", body.Data.Advice)
	assert.Equal(t, []string{"budgeting.md"}, body.Data.RelevantDocuments)
}

func TestQuery_Errors(t *testing.T) {
	ok := advisorFunc(func(context.Context, dto.AdvisorQuery) (*dto.AdvisorResponse, error) {
		return &dto.AdvisorResponse{}, nil
	})
	failing := advisorFunc(func(context.Context, dto.AdvisorQuery) (*dto.AdvisorResponse, error) {
		return nil, fmt.Errorf("%w: model unreachable", domain.ErrLLMProcessing)
	})

	tests := []struct {
		name string
		svc  Service
		body string
		want int
	}{
		{"missing query", ok, `{"userId":"u1"}`, fiber.StatusBadRequest},
		{"unknown provider", ok, `{"userId":"u1","query":"q","provider":"CLAUDE"}`, fiber.StatusBadRequest},
		{"malformed body", ok, `{"userId":`, fiber.StatusBadRequest},
		{"model failure", failing, `{"userId":"u1","query":"q"}`, fiber.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := post(t, tt.svc, tt.body)
			assert.Equal(t, tt.want, code)
		})
	}
}
