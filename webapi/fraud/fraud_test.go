package fraud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasaad/aifinance/pkg/domain"
	"github.com/amirasaad/aifinance/pkg/dto"
)

type fakeLifecycle struct {
	statusFilter string
	updateErr    error
}

func (f *fakeLifecycle) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*dto.FraudAlertRead, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dto.FraudAlertRead{ID: id, Status: status}, nil
}

func (f *fakeLifecycle) ListUserAlerts(_ context.Context, userID string) ([]*dto.FraudAlertRead, error) {
	return []*dto.FraudAlertRead{{UserID: userID, Status: "PENDING"}}, nil
}

func (f *fakeLifecycle) ListUserAlertsByStatus(_ context.Context, userID, status string) ([]*dto.FraudAlertRead, error) {
	f.statusFilter = status
	return []*dto.FraudAlertRead{}, nil
}

func (f *fakeLifecycle) CountPending(context.Context, string) (int64, error) { return 3, nil }

func (f *fakeLifecycle) GetAlert(_ context.Context, id uuid.UUID) (*dto.FraudAlertRead, error) {
	return nil, fmt.Errorf("alert %s: %w", id, domain.ErrNotFound)
}

func newApp(svc Service) *fiber.App {
	app := fiber.New()
	Routes(app, svc)
	return app
}

func TestUpdateStatus(t *testing.T) {
	svc := &fakeLifecycle{}
	app := newApp(svc)
	id := uuid.New()

	req := httptest.NewRequest(fiber.MethodPatch, "/api/fraud-alerts/"+id.String()+"/status",
		strings.NewReader(`{"status":"UNDER_REVIEW"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.FraudAlertRead `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNDER_REVIEW", body.Data.Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"unknown status", `{"status":"CLOSED"}`, nil, fiber.StatusBadRequest},
		{"invalid transition", `{"status":"PENDING"}`, domain.ErrInvalidTransition, fiber.StatusUnprocessableEntity},
		{"lost race", `{"status":"CONFIRMED"}`, domain.ErrConflict, fiber.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(&fakeLifecycle{updateErr: tt.err})
			req := httptest.NewRequest(fiber.MethodPatch, "/api/fraud-alerts/"+uuid.NewString()+"/status",
				strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestListUserAlerts_StatusFilter(t *testing.T) {
	svc := &fakeLifecycle{}
	app := newApp(svc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/fraud-alerts/user/u1?status=CONFIRMED", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "CONFIRMED", svc.statusFilter)
}

func TestCountPendingAndGetAlert(t *testing.T) {
	app := newApp(&fakeLifecycle{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/fraud-alerts/user/u1/pending/count", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	var body struct {
		Data map[string]int64 `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.Data["count"])

	missing, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/fraud-alerts/"+uuid.NewString(), nil))
	require.NoError(t, err)
	defer missing.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}
