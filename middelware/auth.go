package middelware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"firestation-backend/models"
	"firestation-backend/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionKey = "session"

// UserLookup resolves the account behind a token
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// JWTManager handles JWT token operations
type JWTManager struct {
	config *models.Config
	logger logger.Logger
	users  UserLookup
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager. users may be nil, in which case
// tokens are trusted without checking the account status.
func NewJWTManager(cfg *models.Config, log logger.Logger, users UserLookup) *JWTManager {
	return &JWTManager{
		config: cfg,
		logger: log,
		users:  users,
		now:    time.Now,
	}
}

// GenerateToken generates a JWT token for a user
func (j *JWTManager) GenerateToken(user *models.User) (string, error) {
	now := j.now()
	claims := models.JWTClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
		Title:    user.Title,
		Status:   user.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			Issuer:    j.config.AppName,
			Audience:  jwt.ClaimStrings{j.config.AppName},
			ExpiresAt: jwt.NewNumericDate(now.Add(j.config.JWTExpiresIn)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.config.JWTSecret))
	if err != nil {
		j.logger.Errorf("Failed to sign JWT token: %v", err)
		return "", err
	}

	j.logger.Debugf("Generated JWT token for user: %s", user.ID)
	return tokenString, nil
}

// ValidateToken parses and verifies a token signed by GenerateToken
func (j *JWTManager) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.config.AppName),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		j.logger.Errorf("Failed to parse JWT token: %v", err)
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

// Authenticate validates the token and, when a user lookup is configured,
// re-reads the account so suspended staff lose access immediately.
func (j *JWTManager) Authenticate(ctx context.Context, tokenString string) (*models.Session, error) {
	claims, err := j.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	session := models.SessionFromClaims(claims)
	if j.users == nil {
		return session, nil
	}

	user, err := j.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		j.logger.Errorf("Failed to verify user %s: %v", claims.UserID, err)
		return nil, fmt.Errorf("user verification failed")
	}
	if user.Status != models.UserStatusActive {
		return nil, fmt.Errorf("user account is %s", user.Status)
	}

	// role and title may have changed since the token was issued
	session.Role = user.Role
	session.Title = user.Title
	session.Name = user.FullName()
	return session, nil
}

// AuthMiddleware requires a valid bearer token and stores the caller's session
func (j *JWTManager) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Missing Authorization header", "AuthenticationError", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, http.StatusUnauthorized, "Invalid Authorization header format", "AuthenticationError", "Authorization header must be in format: Bearer <token>")
			return
		}

		session, err := j.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token", "AuthenticationError", err.Error())
			return
		}

		c.Set(sessionKey, session)
		c.Set("user_id", session.UserID)
		c.Next()
	}
}

// RequireOfficer allows officers and admins through
func (j *JWTManager) RequireOfficer() gin.HandlerFunc {
	return j.requireRole("officer", func(s *models.Session) bool { return s.IsOfficer() })
}

// RequireAdmin allows admins only
func (j *JWTManager) RequireAdmin() gin.HandlerFunc {
	return j.requireRole("admin", func(s *models.Session) bool { return s.Role == models.StaffRoleAdmin })
}

func (j *JWTManager) requireRole(name string, allowed func(*models.Session) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Authentication required", "AuthenticationError", "User not authenticated")
			return
		}
		if !allowed(session) {
			j.logger.Warnf("User %s (%s) denied: %s role required", session.UserID, session.Role, name)
			abort(c, http.StatusForbidden, "Insufficient permissions", "AuthorizationError", fmt.Sprintf("Required role: %s", name))
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session stored by AuthMiddleware
func SessionFrom(c *gin.Context) (*models.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*models.Session)
	return session, ok && session != nil
}

func abort(c *gin.Context, code int, message, errType, details string) {
	c.AbortWithStatusJSON(code, models.APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Error: &models.APIError{
			Type:    errType,
			Details: details,
		},
	})
}
