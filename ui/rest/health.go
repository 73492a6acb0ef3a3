package rest

import (
	domainHealth "github.com/AzielCF/az-photofeed/domains/health"
	"github.com/AzielCF/az-photofeed/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

type Health struct {
	Service domainHealth.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service domainHealth.IHealthUsecase) Health {
	rest := Health{Service: service}
	app.Get("/health", rest.Check)
	return rest
}

func (controller *Health) Check(c *fiber.Ctx) error {
	report := controller.Service.Check(c.UserContext())

	status := 200
	if report.Status != domainHealth.StatusOk {
		status = 503
	}

	return c.Status(status).JSON(utils.ResponseData{
		Status:  status,
		Code:    string(report.Status),
		Message: "Health check",
		Results: report,
	})
}
