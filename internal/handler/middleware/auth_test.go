//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"kost-booking/internal/domain/user"
	"kost-booking/internal/handler/middleware"
	"kost-booking/internal/pkg/cookie"
	"kost-booking/tests/common/builder"
	"kost-booking/tests/common/httptest"
	usecasemock "kost-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, validator *usecasemock.MockTokenValidator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": identity.ID.String(), "role": identity.Role.String()})
	})
	router.POST("/book", m.RequireAuth(), m.RequireBooker(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.POST("/book-unauthenticated", m.RequireBooker(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	identity := builder.NewIdentityBuilder().Build()

	t.Run("bearer token sets the identity", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("good-token").Return(identity, nil).Times(1)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, identity.ID.String(), body["id"])
		assert.Equal(t, "tenant", body["role"])
	})

	t.Run("cookie wins over the header", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("cookie-token").Return(identity, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, cookies, "header-token")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("missing token", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		validator.EXPECT().ValidateToken("expired").Return(user.Identity{}, errors.New("token is expired")).Times(1)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireBooker(t *testing.T) {
	tests := []struct {
		name string
		role user.Role
		want int
	}{
		{name: "tenant", role: user.RoleTenant, want: http.StatusNoContent},
		{name: "admin", role: user.RoleAdmin, want: http.StatusNoContent},
		{name: "owner", role: user.RoleOwner, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
			validator.EXPECT().ValidateToken("token").
				Return(builder.NewIdentityBuilder().WithRole(tt.role).Build(), nil).Times(1)

			rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodPost, "/book", nil, "token")
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("without RequireAuth", func(t *testing.T) {
		validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodPost, "/book-unauthenticated", nil, "token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})
}
