package domain

import "time"

// Role names are stored directly on the user row; the system only knows two.
const (
	RoleHomeowner = "homeowner"
	RoleAdmin     = "admin"
)

type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2 encoded
	Role         string // RoleHomeowner or RoleAdmin
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
