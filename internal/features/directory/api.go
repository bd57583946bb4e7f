package directory

import (
	"go-portal/internal/common/api"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DirectoryApi struct {
	Controller *DirectoryController
	Config     *config.Config
}

func NewDirectoryApi(controller *DirectoryController, config *config.Config) api.Route {
	return &DirectoryApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *DirectoryApi) Setup(app *fiber.App) {
	group := app.Group("/api/directory", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.Query)
	group.Get("/export", a.Controller.Export)
	group.Get("/columns", a.Controller.GetColumns)
	group.Put("/columns/:id/toggle", a.Controller.ToggleColumn)
	group.Delete("/columns", a.Controller.ResetColumns)
}
