package middleware

import (
	"net/http"
	"strings"

	"github.com/vfg2006/logistics-analytics-api/internal/domain"
	"github.com/vfg2006/logistics-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
)

// RequirePermission restringe a rota a tokens com ao menos uma das permissões.
// super_admin sempre tem acesso.
func RequirePermission(permissions ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !claims.HasAnyPermission(permissions...) {
				log.ForContext(r.Context()).Warnf("Acesso negado para usuário %s em %s %s (requer %s)",
					claims.UserID, r.Method, r.URL.Path, strings.Join(permissions, "|"))
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ManageAnalytics permite criar e alterar snapshots
func ManageAnalytics() func(http.Handler) http.Handler {
	return RequirePermission(domain.PermissionManageAnalytics)
}

// ViewAnalytics permite consultar snapshots; quem gerencia também consulta
func ViewAnalytics() func(http.Handler) http.Handler {
	return RequirePermission(domain.PermissionViewAnalytics, domain.PermissionManageAnalytics)
}

func SuperAdminOnly() func(http.Handler) http.Handler {
	return RequirePermission(domain.PermissionSuperAdmin)
}
