package domain

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID          string
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        Role
	CreatedAt   time.Time
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
