package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/auth"
	"github.com/andes-hr/hr-backend-go/internal/domain/user"
	"github.com/andes-hr/hr-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}
	return user.Role(role), nil
}

// AdminOnly restricts a route to back-office administrators.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin {
			response.Forbidden(w, "Administrator privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ApproverOnly restricts a route to roles that review leave and attendance.
func ApproverOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin && role != user.RoleManager {
			response.Forbidden(w, "Approver privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
