package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"veggieweek/config"
	"veggieweek/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = 24 * time.Hour
	cfg.Catalog.DefaultLanguage = "es"

	// The DB is never reached in these tests: the auth middleware or the
	// input binding rejects the request first.
	return SetupRouter(nil, cfg, utils.NewLogger("error"))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := testRouter()

	protected := []struct{ method, path string }{
		{http.MethodPost, "/user_food_logs"},
		{http.MethodGet, "/user_food_logs"},
		{http.MethodDelete, "/user_food_logs/1"},
		{http.MethodGet, "/user/goal"},
		{http.MethodPut, "/user/goal"},
		{http.MethodGet, "/user_progress"},
		{http.MethodGet, "/diversity_metrics"},
		{http.MethodGet, "/suggested_foods"},
		{http.MethodGet, "/user_vegetables"},
		{http.MethodGet, "/user_prebiotics"},
		{http.MethodGet, "/user_probiotics"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
		assert.JSONEq(t, `{"error":"invalid token"}`, w.Body.String(), "%s %s", route.method, route.path)
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
