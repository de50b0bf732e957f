package domain

import "fmt"

// Role is the authorization level of a user.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superAdmin"
)

// Actor is the pre-resolved identity performing an operation. The core
// never authenticates; it only authorizes against this descriptor.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor may manage resources of other users.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// CanManage reports whether the actor may mutate a resource owned by ownerID.
func (a Actor) CanManage(ownerID string) bool {
	if a.ID == "" {
		return false
	}
	return a.IsAdmin() || a.ID == ownerID
}

// CanModerate reports whether the actor may block or unblock target. Admins
// moderate regular users; other admins and super admins are reserved to
// super admins, and nobody moderates their own account.
func (a Actor) CanModerate(target *User) error {
	switch {
	case !a.IsAdmin():
		return fmt.Errorf("%w: admin access required", ErrForbidden)
	case target.Role != RoleUser && a.Role != RoleSuperAdmin:
		return fmt.Errorf("%w: only a super admin can moderate admins", ErrForbidden)
	case target.ID == a.ID:
		return fmt.Errorf("%w: you cannot change your own block status", ErrInvalidInput)
	}
	return nil
}
