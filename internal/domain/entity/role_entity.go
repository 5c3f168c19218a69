package entity

// Role is the authorization role assigned to a user.
// No exposed endpoint accepts a role field; roles change only out-of-band.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsAdmin() bool { return r == RoleAdmin }

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
