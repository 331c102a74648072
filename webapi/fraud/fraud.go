package fraud

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/webapi/common"
)

// Service is the part of the alert lifecycle the HTTP layer uses.
type Service interface {
	UpdateStatus(ctx context.Context, alertID uuid.UUID, status string) (*dto.FraudAlertRead, error)
	ListUserAlerts(ctx context.Context, userID string) ([]*dto.FraudAlertRead, error)
	ListUserAlertsByStatus(ctx context.Context, userID, status string) ([]*dto.FraudAlertRead, error)
	CountPending(ctx context.Context, userID string) (int64, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*dto.FraudAlertRead, error)
}

// Routes registers HTTP routes for fraud alerts.
func Routes(app *fiber.App, svc Service) {
	g := app.Group("/api/fraud-alerts")
	g.Get("/user/:userId", ListUserAlerts(svc))
	g.Get("/user/:userId/pending/count", CountPending(svc))
	g.Get("/:id", GetAlert(svc))
	g.Patch("/:id/status", UpdateStatus(svc))
}

// ListUserAlerts lists a user's alerts, newest first, optionally filtered by
// status.
// @Summary List fraud alerts
// @Tags fraud
// @Produce json
// @Param userId path string true "User ID"
// @Param status query string false "Status filter"
// @Success 200 {object} common.Response
// @Router /api/fraud-alerts/user/{userId} [get]
func ListUserAlerts(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		var (
			alerts []*dto.FraudAlertRead
			err    error
		)
		if status := c.Query("status"); status != "" {
			alerts, err = svc.ListUserAlertsByStatus(c.UserContext(), userID, status)
		} else {
			alerts, err = svc.ListUserAlerts(c.UserContext(), userID)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list fraud alerts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fraud alerts fetched", alerts)
	}
}

// CountPending returns the number of alerts awaiting review.
// @Summary Count pending alerts
// @Tags fraud
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Router /api/fraud-alerts/user/{userId}/pending/count [get]
func CountPending(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.CountPending(c.UserContext(), c.Params("userId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to count fraud alerts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Pending alerts counted", fiber.Map{"count": n})
	}
}

// GetAlert returns one alert.
// @Summary Get a fraud alert
// @Tags fraud
// @Produce json
// @Param id path string true "Alert ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /api/fraud-alerts/{id} [get]
func GetAlert(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid alert ID", err, fiber.StatusBadRequest)
		}
		alert, err := svc.GetAlert(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Fraud alert not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fraud alert fetched", alert)
	}
}

// UpdateStatus moves an alert through its review lifecycle.
// @Summary Update alert status
// @Tags fraud
// @Accept json
// @Produce json
// @Param id path string true "Alert ID"
// @Param request body dto.AlertStatusUpdate true "New status"
// @Success 200 {object} common.Response
// @Failure 409 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /api/fraud-alerts/{id}/status [patch]
func UpdateStatus(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid alert ID", err, fiber.StatusBadRequest)
		}
		req, err := common.BindAndValidate[dto.AlertStatusUpdate](c)
		if err != nil {
			return nil
		}
		alert, err := svc.UpdateStatus(c.UserContext(), id, req.Status)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update fraud alert", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Fraud alert updated", alert)
	}
}
