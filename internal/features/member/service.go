package member

import (
	"context"
	"fmt"
	"time"

	"go-portal/internal/common/models"
	"go-portal/internal/features/audit"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemberService interface {
	ListMembers(ctx context.Context) ([]models.TeamMember, error)
	GetMemberByID(ctx context.Context, id string) (*models.TeamMember, error)
	CreateMember(ctx context.Context, member *models.TeamMember) error
	UpdateMember(ctx context.Context, id string, updates map[string]interface{}) error
	UpdateMemberStatus(ctx context.Context, id string, status string) error
	DeleteMember(ctx context.Context, id string) error
}

type MemberServiceImpl struct {
	MemberRepo   MemberRepository
	AuditService audit.AuditService
}

func NewMemberService(memberRepo MemberRepository, auditService audit.AuditService) MemberService {
	return &MemberServiceImpl{
		MemberRepo:   memberRepo,
		AuditService: auditService,
	}
}

func (s *MemberServiceImpl) ListMembers(ctx context.Context) ([]models.TeamMember, error) {
	return s.MemberRepo.List(ctx)
}

func (s *MemberServiceImpl) GetMemberByID(ctx context.Context, id string) (*models.TeamMember, error) {
	return s.MemberRepo.FindByID(ctx, id)
}

func (s *MemberServiceImpl) CreateMember(ctx context.Context, member *models.TeamMember) error {
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	member.UpdatedAt = time.Now()

	if member.Status == "" {
		member.Status = models.StatusPending
	}
	if member.Role == "" {
		member.Role = models.RoleMember
	}

	if err := s.MemberRepo.Create(ctx, member); err != nil {
		return err
	}

	changes := map[string]models.Change{
		"name":    {New: member.Name},
		"email":   {New: member.Email},
		"created": {New: true},
	}
	_ = s.AuditService.LogChange(ctx, models.AuditActionCreate, "member", member.ID.Hex(), changes)

	return nil
}

func (s *MemberServiceImpl) UpdateMember(ctx context.Context, id string, updates map[string]interface{}) error {
	member, err := s.MemberRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	changes := make(map[string]models.Change)

	if name, ok := updates["name"].(string); ok && name != member.Name {
		changes["name"] = models.Change{Old: member.Name, New: name}
		member.Name = name
	}
	if email, ok := updates["email"].(string); ok && email != member.Email {
		changes["email"] = models.Change{Old: member.Email, New: email}
		member.Email = email
	}
	if phone, ok := updates["phone"].(string); ok && phone != member.Phone {
		changes["phone"] = models.Change{Old: member.Phone, New: phone}
		member.Phone = phone
	}
	if company, ok := updates["company"].(string); ok && company != member.Company {
		changes["company"] = models.Change{Old: member.Company, New: company}
		member.Company = company
	}
	if department, ok := updates["department"].(string); ok && department != member.Department {
		changes["department"] = models.Change{Old: member.Department, New: department}
		member.Department = department
	}
	if role, ok := updates["role"].(string); ok && role != member.Role {
		changes["role"] = models.Change{Old: member.Role, New: role}
		member.Role = role
	}
	if status, ok := updates["status"].(string); ok && status != member.Status {
		changes["status"] = models.Change{Old: member.Status, New: status}
		member.Status = status
	}

	if len(changes) == 0 {
		return nil
	}

	member.UpdatedAt = time.Now()
	if err := s.MemberRepo.Update(ctx, id, member); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, models.AuditActionUpdate, "member", id, changes)
	return nil
}

func (s *MemberServiceImpl) UpdateMemberStatus(ctx context.Context, id string, status string) error {
	switch status {
	case models.StatusActive, models.StatusInactive, models.StatusPending:
	default:
		return fmt.Errorf("invalid status: %s", status)
	}
	return s.UpdateMember(ctx, id, map[string]interface{}{"status": status})
}

func (s *MemberServiceImpl) DeleteMember(ctx context.Context, id string) error {
	member, err := s.MemberRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.MemberRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, models.AuditActionDelete, "member", id, map[string]models.Change{
		"member": {Old: member.Email, New: "DELETED"},
	})
	return nil
}
