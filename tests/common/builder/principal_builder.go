//go:build unit || e2e

package builder

import (
	"turfbook/internal/domain/principal"

	"github.com/google/uuid"
)

type PrincipalBuilder struct {
	ID       uuid.UUID
	Role     principal.Role
	Approved bool
}

func NewPrincipalBuilder() *PrincipalBuilder {
	return &PrincipalBuilder{
		ID:       uuid.New(),
		Role:     principal.RolePlayer,
		Approved: true,
	}
}

func (b *PrincipalBuilder) WithID(id uuid.UUID) *PrincipalBuilder {
	b.ID = id
	return b
}

func (b *PrincipalBuilder) AsVenueAdmin() *PrincipalBuilder {
	b.Role = principal.RoleVenueAdmin
	return b
}

func (b *PrincipalBuilder) AsSuperAdmin() *PrincipalBuilder {
	b.Role = principal.RoleSuperAdmin
	return b
}

func (b *PrincipalBuilder) AsUnapproved() *PrincipalBuilder {
	b.Approved = false
	return b
}

func (b *PrincipalBuilder) Build() principal.Principal {
	p, err := principal.New(b.ID, b.Role, b.Approved)
	if err != nil {
		panic(err)
	}
	return p
}
