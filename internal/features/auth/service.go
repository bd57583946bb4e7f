package auth

import (
	"context"
	"errors"
	"time"

	"go-portal/internal/common/models"
	"go-portal/internal/features/audit"
	"go-portal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthServiceImpl struct {
	UserRepo     UserRepository
	AuditService audit.AuditService
}

func NewAuthService(userRepo UserRepository, auditService audit.AuditService) AuthService {
	return &AuthServiceImpl{
		UserRepo:     userRepo,
		AuditService: auditService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	if _, err := s.UserRepo.FindByUsername(ctx, username); err == nil {
		return nil, errors.New("username already taken")
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// First user of a registration owns a fresh tenant
	user := &models.User{
		ID:        primitive.NewObjectID(),
		TenantID:  primitive.NewObjectID(),
		Username:  username,
		Password:  string(hashed),
		Email:     email,
		Role:      models.RoleAdmin,
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.UserRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if user.Status != models.StatusActive {
		return "", errors.New("account is not active")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.TenantID, user.Role)
	if err != nil {
		return "", err
	}

	_ = s.UserRepo.TouchLastLogin(ctx, username)
	_ = s.AuditService.LogChange(ctx, models.AuditActionLogin, "auth", user.ID.Hex(), map[string]models.Change{
		"login": {New: username},
	})

	return token, nil
}
