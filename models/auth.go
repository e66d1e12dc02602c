package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID   string     `json:"user_id"`
	Email    string     `json:"email"`
	Username string     `json:"username"`
	Role     StaffRole  `json:"role"`
	Title    string     `json:"title,omitempty"`
	Status   UserStatus `json:"status"`

	jwt.RegisteredClaims
}

// Session is the authenticated caller, resolved once per request by the auth middleware
// and handed to handlers instead of re-reading the token.
type Session struct {
	UserID   string
	Username string
	Name     string
	Role     StaffRole
	Title    string
}

// SessionFromClaims builds a Session from validated claims
func SessionFromClaims(c *JWTClaims) *Session {
	return &Session{
		UserID:   c.UserID,
		Username: c.Username,
		Name:     c.Username,
		Role:     c.Role,
		Title:    c.Title,
	}
}

// IsOfficer reports whether the session may perform officer-level writes
func (s *Session) IsOfficer() bool {
	return s != nil && (s.Role == StaffRoleOfficer || s.Role == StaffRoleAdmin)
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	User      *User  `json:"user"`
}
