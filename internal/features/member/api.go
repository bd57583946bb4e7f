package member

import (
	"go-portal/internal/common/api"
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MemberApi struct {
	Controller *MemberController
	Config     *config.Config
}

func NewMemberApi(controller *MemberController, config *config.Config) api.Route {
	return &MemberApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *MemberApi) Setup(app *fiber.App) {
	group := app.Group("/api/members", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.ListMembers)
	group.Get("/:id", a.Controller.GetMember)
	group.Post("/", middleware.RequireRole(common_models.RoleAdmin, common_models.RoleLead), a.Controller.CreateMember)
	group.Put("/:id", middleware.RequireRole(common_models.RoleAdmin, common_models.RoleLead), a.Controller.UpdateMember)
	group.Patch("/:id/status", middleware.RequireRole(common_models.RoleAdmin), a.Controller.UpdateMemberStatus)
	group.Delete("/:id", middleware.RequireRole(common_models.RoleAdmin), a.Controller.DeleteMember)
}
