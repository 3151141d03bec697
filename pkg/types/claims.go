package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated principal through the request context.
// Role and DepartmentID are snapshotted at login; a role change requires a
// new token.
type Claims struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	DepartmentID *uint  `json:"department_id,omitempty"`
	jwt.RegisteredClaims
}
