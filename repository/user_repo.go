package repository

import (
	"context"
	"errors"
	"firestation-backend/dal"
	"firestation-backend/models"
	"firestation-backend/utils"
	"fmt"
	"sort"
	"strings"
	"time"

	"firestation-backend/utils/logger"
)

type UserRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *UserRepository) table() string {
	return r.config.TableName(TableUsers)
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	r.logger.Infof("Creating user: %s", user.Email)

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	var existing []*models.User
	if err := r.db.QueryByIndex(ctx, r.table(), "email-index", "email", user.Email, &existing); err != nil {
		r.logger.Errorf("Failed to check email uniqueness: %v", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("user with this email already exists: %w", models.ErrConflict)
	}

	existing = nil
	if err := r.db.QueryByIndex(ctx, r.table(), "username-index", "username", user.Username, &existing); err != nil {
		r.logger.Errorf("Failed to check username uniqueness: %v", err)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("user with this username already exists: %w", models.ErrConflict)
	}

	now := time.Now()
	user.ID = utils.GenerateUUID()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.StaffRoleStaff
	}

	if err := r.db.CreateItem(ctx, r.table(), user); err != nil {
		r.logger.Errorf("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Infof("User created successfully: %s", user.ID)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, errors.New("user id is required")
	}

	user := &models.User{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}, user)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			r.logger.Errorf("Failed to get user %s: %v", id, err)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.GetItem(ctx, models.QueryConfig{
		TableName: r.table(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  strings.ToLower(strings.TrimSpace(email)),
		KeyType:   models.StringType,
	}, user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetUsersByIDs returns the users in the order of ids; unknown ids are skipped
func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		user, err := r.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				r.logger.Warnf("User %s not found, skipping", id)
				continue
			}
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.Scan(ctx, r.table(), &users); err != nil {
		r.logger.Errorf("Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].FullName() < users[j].FullName()
	})
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	r.logger.Infof("Updating user: %s", id)

	updates["updated_at"] = time.Now()
	if err := r.db.UpdateItem(ctx, r.table(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update user %s: %v", id, err)
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return r.GetUserByID(ctx, id)
}
