package domain

import "strings"

// Role is a canonical, lower-case account role
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleRanks orders roles by privilege. Higher rank permits everything a
// lower rank does.
var roleRanks = map[Role]int{
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// ParseRole normalizes arbitrary-case input ("SUPER_ADMIN", "Admin") to the
// canonical role, so casing never leaks past this boundary.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Permits reports whether a holder of r may access a resource that
// requires the given role. Unknown roles on either side deny.
func (r Role) Permits(required Role) bool {
	have, ok := roleRanks[r]
	if !ok {
		return false
	}
	need, ok := roleRanks[required]
	if !ok {
		return false
	}
	return have >= need
}
