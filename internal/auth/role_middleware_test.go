package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/fleet_inventory/internal/models"
)

// serveWithRoles runs a request through RequireRoles with the given role
// set pre-stored in the context, the way JWTMiddleware would leave it.
func serveWithRoles(t *testing.T, actorRoles interface{}, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/probe",
		func(c *gin.Context) {
			if actorRoles != nil {
				c.Set(ContextRolesKey, actorRoles)
			}
		},
		RequireRoles(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	w := serveWithRoles(t,
		[]string{models.RoleInventoryOperator},
		models.RoleAdmin, models.RoleInventorySupervisor, models.RoleInventoryOperator,
	)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsDisjointRoleSet(t *testing.T) {
	w := serveWithRoles(t,
		[]string{models.RoleCampaignOperator},
		models.RoleAdmin, models.RoleInventorySupervisor,
	)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesRejectsMissingRoleSet(t *testing.T) {
	w := serveWithRoles(t, nil, models.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesRejectsEmptyRoleSet(t *testing.T) {
	w := serveWithRoles(t, []string{}, models.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDenylistLifecycle(t *testing.T) {
	jti := "test-jti-lifecycle"
	assert.False(t, IsTokenDenylisted(jti))

	AddToDenylist(jti, time.Now().Add(time.Hour))
	assert.True(t, IsTokenDenylisted(jti))

	// An entry past its original expiry no longer counts as denylisted.
	expired := "test-jti-expired"
	AddToDenylist(expired, time.Now().Add(-time.Minute))
	assert.False(t, IsTokenDenylisted(expired))
}
