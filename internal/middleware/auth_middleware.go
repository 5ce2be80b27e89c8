package middleware

import (
	"net/http"
	"strings"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"
	"go-hrm/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	ContextEmployeeID = "employee_id"
	ContextRole       = "role"
)

// AuthMiddleware accepts a bearer token or the access_token cookie and exposes the caller's
// employee id and role on both the gin context and the request context.
func AuthMiddleware(tokens token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found")
			return
		}

		claims, err := tokens.VerifyToken(tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
			return
		}
		if err := claims.Require(token.PurposeAccess); err != nil {
			response.Abort(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid token")
			return
		}

		c.Set(ContextEmployeeID, claims.ID)
		c.Set(ContextRole, claims.Role)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), claims.ID)
		ctx = contextutil.WithRole(ctx, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Abort(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message)
	}
}
