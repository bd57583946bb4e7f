package auth

import (
	"go-portal/internal/common/api"
	"go-portal/internal/config"
	"go-portal/internal/middleware"
	"go-portal/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	config     *config.Config
}

func NewAuthApi(controller *AuthController, config *config.Config) api.Route {
	// JWT signing key comes from config, not the compiled-in default
	utils.SetSecret(config.JWTSecret)

	return &AuthApi{
		controller: controller,
		config:     config,
	}
}

// Setup registers all auth-related routes
func (h *AuthApi) Setup(app *fiber.App) {
	app.Post("/api/register", h.controller.Register)
	app.Post("/api/login", h.controller.Login)

	app.Get("/api/me", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.Me)
}
