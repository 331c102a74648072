package advisor

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/amirasaad/aifinance/pkg/dto"
	"github.com/amirasaad/aifinance/webapi/common"
)

// Service answers financial questions.
type Service interface {
	GetAdvice(ctx context.Context, q dto.AdvisorQuery) (*dto.AdvisorResponse, error)
}

func Routes(app *fiber.App, svc Service) {
	app.Post("/api/advisor/query", Query(svc))
}

// Query returns advice for the user's question.
// @Summary Ask the financial advisor
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body dto.AdvisorQuery true "Question"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 502 {object} common.ProblemDetails
// @Router /api/advisor/query [post]
func Query(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := common.BindAndValidate[dto.AdvisorQuery](c)
		if err != nil {
			return nil
		}
		resp, err := svc.GetAdvice(c.UserContext(), *q)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to generate advice", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Advice generated", resp)
	}
}
