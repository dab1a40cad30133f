package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleTenant Role = "tenant"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTenant, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Identity is the authenticated caller as asserted by the external auth service.
type Identity struct {
	ID       uuid.UUID
	Role     Role
	Email    string
	FullName string
}

func (i Identity) CanBook() bool {
	return i.Role == RoleTenant || i.Role == RoleAdmin
}
