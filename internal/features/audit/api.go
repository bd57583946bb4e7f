package audit

import (
	"go-portal/internal/common/api"
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	controller *AuditController
	config     *config.Config
}

func NewAuditApi(controller *AuditController, config *config.Config) api.Route {
	return &AuditApi{
		controller: controller,
		config:     config,
	}
}

func (h *AuditApi) Setup(app *fiber.App) {
	audit := app.Group("/api/audit-logs", middleware.AuthMiddleware(h.config.SkipAuth))

	audit.Get("/", middleware.RequireRole(common_models.RoleAdmin), h.controller.ListLogs)
}
