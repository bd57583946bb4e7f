package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature's API type. Constructors return it
// tagged into the fx "routes" group; Setup attaches the feature's handlers.
type Route interface {
	Setup(app *fiber.App)
}
