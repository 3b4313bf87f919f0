package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Permissões reconhecidas pelas rotas de analytics
const (
	PermissionManageAnalytics = "manage_analytics"
	PermissionViewAnalytics   = "view_analytics"
	PermissionSuperAdmin      = "super_admin"
)

// Claims são os dados carregados no token bearer
type Claims struct {
	UserID      string   `json:"user_id"`
	UserEmail   string   `json:"email,omitempty"`
	AccountType string   `json:"account_type,omitempty"` // shipper, transporter, broker, business
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// HasAnyPermission verifica se o token possui ao menos uma das permissões.
// super_admin satisfaz qualquer permissão.
func (c *Claims) HasAnyPermission(permissions ...string) bool {
	if c == nil {
		return false
	}

	if slices.Contains(c.Permissions, PermissionSuperAdmin) {
		return true
	}

	for _, permission := range permissions {
		if slices.Contains(c.Permissions, permission) {
			return true
		}
	}

	return false
}
