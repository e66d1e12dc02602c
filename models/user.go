package models

import "time"

// StaffRole is the application permission level of a staff member
type StaffRole string

const (
	StaffRoleAdmin   StaffRole = "admin"
	StaffRoleOfficer StaffRole = "officer"
	StaffRoleStaff   StaffRole = "staff"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents a staff member of the station
type User struct {
	ID           string     `json:"id" dynamodbav:"id"`
	Email        string     `json:"email" dynamodbav:"email"`
	Username     string     `json:"username" dynamodbav:"username"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	FirstName    string     `json:"first_name" dynamodbav:"first_name"`
	LastName     string     `json:"last_name" dynamodbav:"last_name"`
	Title        string     `json:"title" dynamodbav:"title"` // rank, e.g. "Team Captain"
	Phone        *string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Role         StaffRole  `json:"role" dynamodbav:"role"`
	Status       UserStatus `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" dynamodbav:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" dynamodbav:"last_login_at,omitempty"`
}

// FullName returns "First Last", falling back to the username
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Username
	}
	return name
}

// RegisterUser represents the request structure for user registration
// @Description Staff registration request with account details
type RegisterUser struct {
	Email     string    `json:"email" validate:"required,email" example:"captain@station12.org"`
	Username  string    `json:"username" validate:"required,min=3,max=50" example:"jmiller"`
	Password  string    `json:"password" validate:"required,min=8" example:"securePassword123"`
	FirstName string    `json:"first_name" validate:"required" example:"Jane"`
	LastName  string    `json:"last_name" validate:"required" example:"Miller"`
	Title     string    `json:"title" validate:"required,max=100" example:"Team Captain"`
	Phone     string    `json:"phone,omitempty" example:"+15551234567"`
	Role      StaffRole `json:"role,omitempty" validate:"omitempty,oneof=admin officer staff" example:"staff"`
}

// UpdateUserRequest is the body of PATCH /staff/:id
type UpdateUserRequest struct {
	FirstName string     `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  string     `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Title     string     `json:"title,omitempty" validate:"omitempty,max=100"`
	Phone     *string    `json:"phone,omitempty"`
	Role      StaffRole  `json:"role,omitempty" validate:"omitempty,oneof=admin officer staff"`
	Status    UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}
