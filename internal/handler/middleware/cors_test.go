//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"kost-booking/internal/handler/middleware"
	"kost-booking/internal/pkg/config"
	"kost-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:5173"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Location"},
	}

	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("request id is exposed to allowed origins", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "",
			httptest.WithHeader("Origin", "http://localhost:5173"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	})

	t.Run("request id may be sent on preflight", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodOptions, "/health", nil, "",
			httptest.WithHeader("Origin", "http://localhost:5173"),
			httptest.WithHeader("Access-Control-Request-Method", "GET"),
			httptest.WithHeader("Access-Control-Request-Headers", "X-Request-ID"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Request-Id")
	})

	t.Run("configured slices are not mutated", func(t *testing.T) {
		assert.Equal(t, []string{"Location"}, cfg.ExposeHeaders)
	})
}
