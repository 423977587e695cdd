package actor

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the authenticated caller kind. Customers book repairs, shops run
// dashboards, admins operate the platform.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleShop     Role = "shop"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleShop, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}
