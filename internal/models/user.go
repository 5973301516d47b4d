package models

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole normalizes the mixed-case role strings the API returns.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin
	case "SELLER":
		return RoleSeller
	default:
		return RoleCustomer
	}
}

type UserStatus string

const (
	UserActive UserStatus = "active"
	UserBanned UserStatus = "banned"
)

// User is the client-side cached copy of the profile; it is synchronized
// opportunistically and not guaranteed fresh.
type User struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Role    Role       `json:"role"`
	Status  UserStatus `json:"status,omitempty"`
	Phone   string     `json:"phone,omitempty"`
	Address string     `json:"address,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=CUSTOMER SELLER"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthData is the payload of a successful login or register call.
type AuthData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateRoleRequest carries the admin-side role and/or status change; either
// field may be left empty to keep the current value.
type UpdateRoleRequest struct {
	Role   Role       `json:"role,omitempty" validate:"omitempty,oneof=CUSTOMER SELLER ADMIN"`
	Status UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active banned"`
}

// Claims mirrors the token payload minted by the API. The client never
// verifies the signature; it only reads the registered expiry claim.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
