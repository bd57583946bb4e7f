package saved_filter

import (
	"go-portal/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedFilterController struct {
	FilterService SavedFilterService
}

func NewSavedFilterController(filterService SavedFilterService) *SavedFilterController {
	return &SavedFilterController{
		FilterService: filterService,
	}
}

func actorObjectID(ctx *fiber.Ctx) (primitive.ObjectID, bool) {
	claims, ok := ctx.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func (c *SavedFilterController) CreateFilter(ctx *fiber.Ctx) error {
	var filter SavedFilter
	if err := ctx.BodyParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	userID, ok := actorObjectID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	filter.UserID = userID

	if err := c.FilterService.CreateFilter(ctx.UserContext(), &filter); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(filter)
}

func (c *SavedFilterController) GetFilter(ctx *fiber.Ctx) error {
	filter, err := c.FilterService.GetFilter(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Filter not found"})
	}

	return ctx.JSON(filter)
}

func (c *SavedFilterController) UpdateFilter(ctx *fiber.Ctx) error {
	var filter SavedFilter
	if err := ctx.BodyParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	objID, err := primitive.ObjectIDFromHex(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filter id"})
	}
	filter.ID = objID

	if err := c.FilterService.UpdateFilter(ctx.UserContext(), &filter); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(filter)
}

func (c *SavedFilterController) DeleteFilter(ctx *fiber.Ctx) error {
	userID, ok := actorObjectID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := c.FilterService.DeleteFilter(ctx.UserContext(), ctx.Params("id"), userID); err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true})
}

func (c *SavedFilterController) ListFilters(ctx *fiber.Ctx) error {
	userID, ok := actorObjectID(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	filters, err := c.FilterService.GetUserFilters(ctx.UserContext(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"filters": filters})
}
