package models

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// CanWrite reports whether the role may create and edit parts and categories.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User is an identity and authorization principal. ServiceNumber is unique
// and always stored uppercase.
type User struct {
	ID            int64     `json:"id" db:"id"`
	ServiceNumber string    `json:"serviceNumber" db:"service_number"`
	Name          string    `json:"name" db:"name"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	Role          Role      `json:"role" db:"role"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Sanitized returns a copy of u without the password hash.
func (u User) Sanitized() *User {
	u.PasswordHash = ""
	return &u
}

// UserRef is the public face of a user attached to parts and activity rows.
type UserRef struct {
	ID            int64  `json:"id"`
	ServiceNumber string `json:"serviceNumber,omitempty"`
	Name          string `json:"name"`
}

type LoginRequest struct {
	ServiceNumber string `json:"serviceNumber" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	ServiceNumber string `json:"serviceNumber" validate:"required,max=64"`
	Name          string `json:"name" validate:"required,max=128"`
	Password      string `json:"password" validate:"required,min=6"`
	Role          Role   `json:"role" validate:"omitempty,oneof=admin editor user"`
}

type UpdateRoleRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
	Role   Role  `json:"role" validate:"required,oneof=admin editor user"`
}
