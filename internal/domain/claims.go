package domain

import "github.com/golang-jwt/jwt/v5"

// Roles carried in the token. The dashboard has a single operator account,
// so roles stay coarse.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Claims is the JWT payload for authenticated dashboard sessions.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
