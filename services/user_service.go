package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/repository"
	"firestation-backend/utils"
	"firestation-backend/utils/logger"
)

// TokenIssuer signs access tokens for authenticated staff
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

type UserService struct {
	repo      repository.UserRepositoryInterface
	tokens    TokenIssuer
	expiresIn time.Duration
	logger    logger.Logger
	now       func() time.Time
}

func NewUserService(repo repository.UserRepositoryInterface, tokens TokenIssuer, expiresIn time.Duration, log logger.Logger) *UserService {
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		expiresIn: expiresIn,
		logger:    log,
		now:       time.Now,
	}
}

// Register creates a staff account with a bcrypt password hash
func (s *UserService) Register(ctx context.Context, req *models.RegisterUser) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Title:        strings.TrimSpace(req.Title),
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}
	if req.Phone != "" {
		phone := strings.TrimSpace(req.Phone)
		user.Phone = &phone
	}
	return s.repo.CreateUser(ctx, user)
}

// Login checks credentials and issues a token. Unknown emails and wrong
// passwords yield the same models.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warnf("Failed login attempt for %s", user.Email)
		return nil, models.ErrInvalidCredentials
	}
	if user.Status != models.UserStatusActive {
		return nil, fmt.Errorf("account is %s: %w", user.Status, models.ErrForbidden)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := s.now()
	if _, err := s.repo.UpdateUser(ctx, user.ID, map[string]interface{}{"last_login_at": now}); err != nil {
		s.logger.Warnf("Failed to record last login for %s: %v", user.ID, err)
	} else {
		user.LastLoginAt = &now
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.expiresIn.Seconds()),
		User:      user,
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("user id is required")
	}
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		updates["last_name"] = strings.TrimSpace(req.LastName)
	}
	if req.Title != "" {
		updates["title"] = strings.TrimSpace(req.Title)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if len(updates) == 0 {
		return nil, NewValidationError(map[string]string{"request": "No fields to update"})
	}
	return s.repo.UpdateUser(ctx, id, updates)
}
