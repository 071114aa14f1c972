package models

import "errors"

// Role is the closed set of account roles. Authorization checks go through
// the capability methods below instead of comparing raw strings.
type Role string

const (
	RoleUser    Role = "user"
	RoleGuide   Role = "guide"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

var ErrInvalidRole = errors.New("invalid_role")

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleGuide, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// CanManageTours covers tour, location and bike administration.
func (r Role) CanManageTours() bool {
	return r == RoleManager || r == RoleAdmin
}

func (r Role) CanManageSlots() bool {
	return r == RoleManager || r == RoleAdmin
}

// CanManageRentals allows access to rentals other than one's own.
func (r Role) CanManageRentals() bool {
	return r == RoleManager || r == RoleAdmin
}

// CanBookTours: staff accounts don't book through the public flow.
func (r Role) CanBookTours() bool {
	return r == RoleUser
}
