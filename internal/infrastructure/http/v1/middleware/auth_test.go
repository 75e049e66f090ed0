package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
)

type stubValidator struct {
	ident *security.Identity
	err   error
}

func (v *stubValidator) ValidateToken(tokenString string) (*security.Identity, error) {
	return v.ident, v.err
}

func newTestRouter(validator JWTValidator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())

	handlers := []gin.HandlerFunc{Auth(validator), OrgGuard()}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/orgs/:orgId/ping", handlers...)
	return r
}

func request(t *testing.T, r *gin.Engine, orgID, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/orgs/"+orgID+"/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newTestRouter(&stubValidator{})
	w := request(t, r, id.New().String(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	r := newTestRouter(&stubValidator{})

	req := httptest.NewRequest(http.MethodGet, "/orgs/"+id.New().String()+"/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	r := newTestRouter(&stubValidator{err: errors.New("bad signature")})
	w := request(t, r, id.New().String(), "whatever")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrgGuard_MatchingOrg(t *testing.T) {
	orgID := id.New()
	r := newTestRouter(&stubValidator{ident: &security.Identity{
		UserID:      id.New(),
		ActiveOrgID: orgID,
		Role:        security.RoleEmployee,
	}})

	w := request(t, r, orgID.String(), "valid")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrgGuard_ForeignOrgForbidden(t *testing.T) {
	r := newTestRouter(&stubValidator{ident: &security.Identity{
		UserID:      id.New(),
		ActiveOrgID: id.New(),
		Role:        security.RoleOwner,
	}})

	w := request(t, r, id.New().String(), "valid")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOrgGuard_BadOrgID(t *testing.T) {
	orgID := id.New()
	r := newTestRouter(&stubValidator{ident: &security.Identity{ActiveOrgID: orgID}})

	w := request(t, r, "not-a-uuid", "valid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireRole(t *testing.T) {
	orgID := id.New()
	newRouterWithRole := func(role security.Role) *gin.Engine {
		return newTestRouter(&stubValidator{ident: &security.Identity{
			UserID:      id.New(),
			ActiveOrgID: orgID,
			Role:        role,
		}}, RequireRole(security.RoleOwner, security.RoleAdmin))
	}

	tests := []struct {
		role security.Role
		want int
	}{
		{security.RoleOwner, http.StatusOK},
		{security.RoleAdmin, http.StatusOK},
		{security.RoleEmployee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			w := request(t, newRouterWithRole(tt.role), orgID.String(), "valid")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
