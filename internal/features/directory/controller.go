package directory

import (
	"fmt"
	"strings"

	"go-portal/internal/features/export"

	"github.com/gofiber/fiber/v2"
)

type DirectoryController struct {
	Service DirectoryService
}

func NewDirectoryController(service DirectoryService) *DirectoryController {
	return &DirectoryController{
		Service: service,
	}
}

// filterStateFromQuery reads the filter dimensions the UI re-sends on every
// change: q, roles, statuses (comma separated), selected (comma separated
// member ids).
func filterStateFromQuery(c *fiber.Ctx) (FilterState, []string) {
	state := FilterState{
		SearchText:       c.Query("q"),
		SelectedRoles:    splitParam(c.Query("roles")),
		SelectedStatuses: splitParam(c.Query("statuses")),
	}
	return state, splitParam(c.Query("selected"))
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Query godoc
func (ctrl *DirectoryController) Query(c *fiber.Ctx) error {
	state, selected := filterStateFromQuery(c)

	response, err := ctrl.Service.Query(c.UserContext(), state, selected)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to query directory",
		})
	}

	return c.JSON(response)
}

// GetColumns godoc
func (ctrl *DirectoryController) GetColumns(c *fiber.Ctx) error {
	columns, err := ctrl.Service.GetColumns(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load columns",
		})
	}
	return c.JSON(fiber.Map{"columns": columns})
}

// ToggleColumn godoc
func (ctrl *DirectoryController) ToggleColumn(c *fiber.Ctx) error {
	id := ColumnID(c.Params("id"))
	columns, err := ctrl.Service.ToggleColumn(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle column",
		})
	}
	return c.JSON(fiber.Map{"columns": columns})
}

// ResetColumns godoc
func (ctrl *DirectoryController) ResetColumns(c *fiber.Ctx) error {
	columns, err := ctrl.Service.ResetColumns(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset columns",
		})
	}
	return c.JSON(fiber.Map{"columns": columns})
}

// Export godoc
func (ctrl *DirectoryController) Export(c *fiber.Ctx) error {
	state, selected := filterStateFromQuery(c)

	format := export.Format(c.Query("format", string(export.FormatCSV)))
	scope := export.Scope(c.Query("scope", string(export.ScopeFiltered)))

	file, err := ctrl.Service.Export(c.UserContext(), state, scope, selected, format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, file.Name))
	return c.Send(file.Data)
}
