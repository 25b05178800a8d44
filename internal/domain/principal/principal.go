package principal

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrAnonymous   = errors.New("principal is not authenticated")
	ErrNotApproved = errors.New("principal is not approved")
	ErrNotOwner    = errors.New("principal does not own the venue")
)

// Principal is the caller identity resolved once at the request boundary,
// whichever credential carried it.
type Principal struct {
	id       uuid.UUID
	role     Role
	approved bool
}

func New(id uuid.UUID, role Role, approved bool) (Principal, error) {
	if id == uuid.Nil {
		return Principal{}, ErrAnonymous
	}
	if !role.IsValid() {
		return Principal{}, ErrInvalidRole
	}
	return Principal{id: id, role: role, approved: approved}, nil
}

// SystemID identifies maintenance jobs acting on behalf of the platform.
var SystemID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func System() Principal {
	return Principal{id: SystemID, role: RoleSuperAdmin, approved: true}
}

func (p Principal) ID() uuid.UUID    { return p.id }
func (p Principal) Role() Role       { return p.role }
func (p Principal) IsApproved() bool { return p.approved }

func (p Principal) IsSuperAdmin() bool {
	return p.role == RoleSuperAdmin
}

func (p Principal) CanReserve() error {
	if p.id == uuid.Nil {
		return ErrAnonymous
	}
	return nil
}

// CanManageVenue holds for super admins and for approved venue admins owning the venue.
func (p Principal) CanManageVenue(ownerID uuid.UUID) error {
	if p.IsSuperAdmin() {
		return nil
	}
	if !p.role.AtLeast(RoleVenueAdmin) {
		return ErrNotOwner
	}
	if !p.approved {
		return ErrNotApproved
	}
	if p.id != ownerID {
		return ErrNotOwner
	}
	return nil
}

// CanView holds for the resource owner and for super admins.
func (p Principal) CanView(ownerID uuid.UUID) bool {
	return p.IsSuperAdmin() || p.id == ownerID
}
