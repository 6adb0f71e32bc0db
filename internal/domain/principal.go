package domain

type Role string

const (
	RoleSchool   Role = "SCHOOL"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// Principal is the authenticated caller as supplied by the identity
// provider. It is threaded explicitly through every operation, never held as
// ambient state.
type Principal struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
