package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/auth"
	"github.com/andes-hr/hr-backend-go/internal/domain/user"
)

// tokenClaims is the identity carried by an access token.
type tokenClaims struct {
	UserID     string
	CompanyID  string
	EmployeeID *string
	Role       user.Role
}

func claimsFromRequest(r *http.Request) (tokenClaims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return tokenClaims{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return tokenClaims{}, auth.ErrInvalidToken
	}
	companyID, ok := claims["company_id"].(string)
	if !ok {
		return tokenClaims{}, auth.ErrInvalidToken
	}

	tc := tokenClaims{UserID: userID, CompanyID: companyID}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		tc.EmployeeID = &employeeID
	}
	if role, ok := claims["role"].(string); ok {
		tc.Role = user.Role(role)
	}

	return tc, nil
}
