package member

import (
	"go-portal/internal/common/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type MemberController struct {
	MemberService MemberService
}

func NewMemberController(memberService MemberService) *MemberController {
	return &MemberController{
		MemberService: memberService,
	}
}

type CreateMemberRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
	Status     string `json:"status,omitempty"`
}

type UpdateMemberRequest struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
	Status     string `json:"status,omitempty"`
}

type UpdateMemberStatusRequest struct {
	Status string `json:"status"`
}

func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	members, err := ctrl.MemberService.ListMembers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch members",
		})
	}

	return c.JSON(fiber.Map{
		"members": members,
		"total":   len(members),
	})
}

func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	member, err := ctrl.MemberService.GetMemberByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Member not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch member",
		})
	}
	return c.JSON(member)
}

func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and email are required",
		})
	}

	member := &models.TeamMember{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Department: req.Department,
		Role:       req.Role,
		Status:     req.Status,
	}
	if err := ctrl.MemberService.CreateMember(c.UserContext(), member); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create member",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	updates := make(map[string]interface{})
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.MemberService.UpdateMember(c.UserContext(), c.Params("id"), updates); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Member not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update member",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (ctrl *MemberController) UpdateMemberStatus(c *fiber.Ctx) error {
	var req UpdateMemberStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.MemberService.UpdateMemberStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	if err := ctrl.MemberService.DeleteMember(c.UserContext(), c.Params("id")); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Member not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete member",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
