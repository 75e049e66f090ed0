package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
)

// JWTValidator interface for token validation.
type JWTValidator interface {
	ValidateToken(tokenString string) (*security.Identity, error)
}

// Auth middleware validates JWT tokens and populates the caller identity.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		ident, err := validator.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		ctx := security.WithIdentity(c.Request.Context(), ident)
		c.Request = c.Request.WithContext(ctx)

		c.Set("user_id", ident.UserID.String())

		c.Next()
	}
}

// OrgGuard verifies the :orgId path parameter against the token's active
// organization. A mismatch is forbidden; org scoping inside queries handles
// the rest.
func OrgGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("orgId")
		orgID, err := id.Parse(raw)
		if err != nil {
			_ = c.Error(apperror.NewValidation("invalid organization id").WithDetail("orgId", raw))
			c.Abort()
			return
		}

		ident := security.GetIdentity(c.Request.Context())
		if ident == nil || ident.ActiveOrgID != orgID {
			_ = c.Error(apperror.NewForbidden("organization mismatch").
				WithDetail("orgId", raw))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole allows only callers holding one of the given roles.
func RequireRole(roles ...security.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !security.HasRole(c.Request.Context(), roles...) {
			_ = c.Error(apperror.NewForbidden("insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
