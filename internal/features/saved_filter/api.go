package saved_filter

import (
	"go-portal/internal/common/api"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SavedFilterApi struct {
	Controller *SavedFilterController
	Config     *config.Config
}

func NewSavedFilterApi(controller *SavedFilterController, config *config.Config) api.Route {
	return &SavedFilterApi{
		Controller: controller,
		Config:     config,
	}
}

func (a *SavedFilterApi) Setup(app *fiber.App) {
	group := app.Group("/api/saved-filters", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Get("/", a.Controller.ListFilters)
	group.Post("/", a.Controller.CreateFilter)
	group.Get("/:id", a.Controller.GetFilter)
	group.Put("/:id", a.Controller.UpdateFilter)
	group.Delete("/:id", a.Controller.DeleteFilter)
}
