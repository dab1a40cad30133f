//go:build unit || e2e

package builder

import (
	"kost-booking/internal/domain/user"

	"github.com/google/uuid"
)

type IdentityBuilder struct {
	ID       uuid.UUID
	Role     user.Role
	Email    string
	FullName string
}

func NewIdentityBuilder() *IdentityBuilder {
	return &IdentityBuilder{
		ID:       uuid.New(),
		Role:     user.RoleTenant,
		Email:    "budi@example.com",
		FullName: "Budi Santoso",
	}
}

func (b *IdentityBuilder) With(mutate func(*IdentityBuilder)) *IdentityBuilder {
	mutate(b)
	return b
}

func (b *IdentityBuilder) WithRole(role user.Role) *IdentityBuilder {
	b.Role = role
	return b
}

func (b *IdentityBuilder) Build() user.Identity {
	return user.Identity{
		ID:       b.ID,
		Role:     b.Role,
		Email:    b.Email,
		FullName: b.FullName,
	}
}
