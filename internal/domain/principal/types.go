package principal

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RolePlayer     Role = "player"
	RoleVenueAdmin Role = "venue_admin"
	RoleSuperAdmin Role = "super_admin"
)

var roleRank = map[Role]int{
	RolePlayer:     1,
	RoleVenueAdmin: 2,
	RoleSuperAdmin: 3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	want, ok := roleRank[min]
	return ok && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
