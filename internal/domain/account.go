package domain

type Role string

const (
	RoleAdmin Role = "admin"
)

// Account is an administrative login identity, distinct from an Employee
// record. Accounts are seeded at boot and never exposed for mutation.
type Account struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
