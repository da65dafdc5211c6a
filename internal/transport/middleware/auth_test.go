package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excursion-booking/internal/entity"
	"excursion-booking/pkg/session"
)

const testCookie = "session_token"

func newTestRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Session(store, testCookie))

	router.GET("/whoami", func(c *gin.Context) {
		p := PrincipalFromContext(c)
		if p == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": p.Name})
	})
	router.GET("/cabinet", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func login(t *testing.T, store session.Store, role entity.Role) *http.Cookie {
	t.Helper()
	token, err := store.Create(context.Background(), &entity.Principal{
		UserID: 1,
		Name:   "Anna",
		Role:   role,
	})
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: token}
}

func do(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionAttachesPrincipal(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	router := newTestRouter(store)

	w := do(router, "/whoami", login(t, store, entity.RoleUser))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Anna"}`, w.Body.String())
}

func TestSessionIgnoresBadCookie(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	router := newTestRouter(store)

	w := do(router, "/whoami", &http.Cookie{Name: testCookie, Value: "stale-token"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())
}

func TestRequireAuth(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	router := newTestRouter(store)

	assert.Equal(t, http.StatusUnauthorized, do(router, "/cabinet", nil).Code)
	assert.Equal(t, http.StatusOK, do(router, "/cabinet", login(t, store, entity.RoleUser)).Code)
}

func TestRequireAdmin(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	router := newTestRouter(store)

	assert.Equal(t, http.StatusUnauthorized, do(router, "/admin", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(router, "/admin", login(t, store, entity.RoleUser)).Code)
	assert.Equal(t, http.StatusOK, do(router, "/admin", login(t, store, entity.RoleAdmin)).Code)
}
