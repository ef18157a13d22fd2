package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarAymanHeikal/Cms-Discovery/utils"
)

// newProtectedRouter wires the middlewares the way routes.SetupRouter does
// and reports whether the protected handler actually executed.
func newProtectedRouter(roles ...string) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	handlerRan := false

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), RequireRoles(roles...), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{"actor": c.GetString("actor"), "role": c.GetString("role")})
	})
	return r, &handlerRan
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("missing header returns 401", func(t *testing.T) {
		r, handlerRan := newProtectedRouter("admin", "editor")

		w := doRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})

	t.Run("malformed header returns 401", func(t *testing.T) {
		r, handlerRan := newProtectedRouter("admin", "editor")

		w := doRequest(r, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		r, handlerRan := newProtectedRouter("admin", "editor")

		w := doRequest(r, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})

	t.Run("expired token returns 401", func(t *testing.T) {
		r, handlerRan := newProtectedRouter("admin", "editor")
		token, err := utils.GenerateToken("editor@example.com", "editor", -time.Minute)
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *handlerRan)
	})

	t.Run("disallowed role gets 403 and the handler never runs", func(t *testing.T) {
		r, handlerRan := newProtectedRouter("admin", "editor")
		token, err := utils.GenerateToken("viewer@example.com", "viewer", time.Hour)
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.False(t, *handlerRan, "route handler must not execute for a disallowed role")
		assert.NotContains(t, w.Body.String(), "viewer@example.com")
	})

	t.Run("allowed role passes with actor set", func(t *testing.T) {
		r, handlerRan := newProtectedRouter("admin", "editor")
		token, err := utils.GenerateToken("editor@example.com", "editor", time.Hour)
		require.NoError(t, err)

		w := doRequest(r, "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *handlerRan)
		assert.Contains(t, w.Body.String(), "editor@example.com")
	})
}
