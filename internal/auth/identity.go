package auth

import "internmatch/internal/model"

// Role tells which kind of account a token resolved to.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Identity is the caller behind a bearer token. Exactly one of Student or Admin is set.
type Identity struct {
	Role    Role         `json:"role"`
	Student *model.User  `json:"student,omitempty"`
	Admin   *model.Admin `json:"admin,omitempty"`
}

// StudentIdentity wraps a student account.
func StudentIdentity(u *model.User) *Identity {
	return &Identity{Role: RoleStudent, Student: u}
}

// AdminIdentity wraps an admin account.
func AdminIdentity(a *model.Admin) *Identity {
	return &Identity{Role: RoleAdmin, Admin: a}
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin && i.Admin != nil
}

func (i *Identity) IsStudent() bool {
	return i != nil && i.Role == RoleStudent && i.Student != nil
}

// Username returns the account's username, empty for a nil identity.
func (i *Identity) Username() string {
	switch {
	case i.IsStudent():
		return i.Student.Username
	case i.IsAdmin():
		return i.Admin.Username
	default:
		return ""
	}
}
