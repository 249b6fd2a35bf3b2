// models/profile.go
package models

// Role values for a user profile.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserProfile is the application-level record of a user, distinct from the
// external auth provider's own record.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
