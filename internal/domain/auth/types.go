package auth

import "time"

// Config drives admin token handling. An empty Secret disables admin routes.
type Config struct {
	Secret   string
	TokenTTL time.Duration
	Issuer   string
}

// RoleAdmin is the only role the API checks for.
const RoleAdmin = "admin"

// Claims are extracted from a validated token.
type Claims struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IssuedToken is a freshly signed admin token.
type IssuedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
