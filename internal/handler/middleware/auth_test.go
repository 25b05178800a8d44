//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"turfbook/internal/domain/principal"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/cookie"
	"turfbook/internal/usecase"
	"turfbook/tests/common/builder"
	"turfbook/tests/common/httptest"
	usecasemock "turfbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, resolver usecase.PrincipalResolver, minRole principal.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := middleware.NewAuthMiddleware(resolver)
	r.GET("/whoami", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.ID().String(), "role": p.Role().String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	player := builder.NewPrincipalBuilder().Build()

	testCases := []struct {
		name       string
		req        httptest.Request
		setup      func(*usecasemock.MockPrincipalResolver)
		minRole    principal.Role
		expectCode int
	}{
		{
			name: "bearer token",
			req:  httptest.Request{Token: "tok"},
			setup: func(m *usecasemock.MockPrincipalResolver) {
				m.EXPECT().Resolve(gomock.Any(), "tok").Return(player, nil)
			},
			minRole:    principal.RolePlayer,
			expectCode: http.StatusOK,
		},
		{
			name: "session cookie wins over header",
			req: httptest.Request{
				Token:   "header-tok",
				Cookies: []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-tok"}},
			},
			setup: func(m *usecasemock.MockPrincipalResolver) {
				m.EXPECT().Resolve(gomock.Any(), "cookie-tok").Return(player, nil)
			},
			minRole:    principal.RolePlayer,
			expectCode: http.StatusOK,
		},
		{
			name: "no credential",
			req:  httptest.Request{},
			setup: func(m *usecasemock.MockPrincipalResolver) {
				m.EXPECT().Resolve(gomock.Any(), "").Return(principal.Principal{}, usecase.ErrInvalidCredentials)
			},
			minRole:    principal.RolePlayer,
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "malformed authorization header",
			req:  httptest.Request{Headers: map[string]string{"Authorization": "Token abc"}},
			setup: func(m *usecasemock.MockPrincipalResolver) {
				m.EXPECT().Resolve(gomock.Any(), "").Return(principal.Principal{}, usecase.ErrInvalidCredentials)
			},
			minRole:    principal.RolePlayer,
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "role below minimum",
			req:  httptest.Request{Token: "tok"},
			setup: func(m *usecasemock.MockPrincipalResolver) {
				m.EXPECT().Resolve(gomock.Any(), "tok").Return(player, nil)
			},
			minRole:    principal.RoleVenueAdmin,
			expectCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := usecasemock.NewMockPrincipalResolver(ctrl)
			tc.setup(resolver)
			router := newAuthRouter(t, resolver, tc.minRole)

			tc.req.Method = http.MethodGet
			tc.req.Path = "/whoami"
			rec := httptest.Perform(t, router, tc.req)

			assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
			if tc.expectCode == http.StatusOK {
				var body map[string]string
				httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
				assert.Equal(t, player.ID().String(), body["id"])
				assert.Equal(t, "player", body["role"])
			}
		})
	}
}
