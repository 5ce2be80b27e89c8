package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrm/internal/domain"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/token"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRBAC struct {
	allow map[string]bool
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.allow[req.Role+":"+req.Resource+":"+req.Action], nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withActor(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextEmployeeID, id)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewService("secret")
	r := newRouter()
	r.GET("/me", middleware.AuthMiddleware(tokens), func(c *gin.Context) {
		assert.Equal(t, "DEV-20240115-007", contextutil.GetEmployeeID(c.Request.Context()))
		c.String(http.StatusOK, c.GetString(middleware.ContextRole))
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		raw, err := tokens.CreateToken(token.Claims{ID: "DEV-20240115-007", Role: "moderator", Purpose: token.PurposeAccess}, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "moderator", w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		raw, _ := tokens.CreateToken(token.Claims{ID: "DEV-20240115-007", Role: "user", Purpose: token.PurposeAccess}, time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: raw})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invitation token is not a session", func(t *testing.T) {
		raw, err := tokens.CreateToken(token.Claims{ID: "DEV-20240115-007", Role: "user", Purpose: token.PurposeInvite}, 72*time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotContains(t, w.Body.String(), "DEV-20240115-007")
	})
}

func TestRBACAuthorize(t *testing.T) {
	rbac := &fakeRBAC{allow: map[string]bool{"admin:employee:delete": true}}

	r := newRouter()
	r.DELETE("/admin/:id", withActor("A", "admin"), middleware.RBACAuthorize(rbac, "employee", "delete"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.DELETE("/user/:id", withActor("U", "user"), middleware.RBACAuthorize(rbac, "employee", "delete"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.DELETE("/anon/:id", middleware.RBACAuthorize(rbac, "employee", "delete"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	cases := map[string]int{
		"/admin/x": http.StatusNoContent,
		"/user/x":  http.StatusForbidden,
		"/anon/x":  http.StatusUnauthorized,
	}
	for path, want := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
		assert.Equal(t, want, w.Code, path)
	}
}

func TestSelfOrAuthorize(t *testing.T) {
	rbac := &fakeRBAC{allow: map[string]bool{"moderator:employee:read": true}}
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	r := newRouter()
	r.GET("/user/employees/:id", withActor("DEV-20240115-007", "user"),
		middleware.SelfOrAuthorize(rbac, "employee", "read", "id"), ok)
	r.GET("/moderator/employees/:id", withActor("DSG-20230101-001", "moderator"),
		middleware.SelfOrAuthorize(rbac, "employee", "read", "id"), ok)

	cases := map[string]int{
		"/user/employees/DEV-20240115-007":      http.StatusOK,
		"/user/employees/DEV-20240115-008":      http.StatusForbidden,
		"/moderator/employees/DEV-20240115-008": http.StatusOK,
	}
	for path, want := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Code, path)
	}
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter()
	r.GET("/admin", withActor("U", "user"), middleware.RoleMiddleware("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateLimitByUser(t *testing.T) {
	r := newRouter()
	r.GET("/limited", withActor("DEV-20240115-007", "user"), middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRequestIDAndContextLogger(t *testing.T) {
	r := newRouter()
	r.Use(middleware.RequestID())
	r.GET("/ping", middleware.ContextLogger(zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-1", w.Body.String())
	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	r := newRouter()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, strings.Repeat("x", 65))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	rid := w.Header().Get(middleware.HeaderRequestID)
	assert.Len(t, rid, 36)
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/employees:DEV-20240115-007:abc"

	newIdempotentRouter := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *bool) {
		rdb, mock := redismock.NewClientMock()
		reached := false
		r := newRouter()
		r.POST("/employees", withActor("DEV-20240115-007", "admin"), middleware.Idempotency(rdb), func(c *gin.Context) {
			reached = true
			assert.Equal(t, cacheKey, c.GetString(middleware.IdempotencyCacheKey))
			assert.Equal(t, cacheKey+":lock", c.GetString(middleware.IdempotencyLockKey))
			c.Status(http.StatusCreated)
		})
		return r, mock, &reached
	}

	post := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/employees", nil)
		req.Header.Set("Idempotency-Key", "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("replays cached response", func(t *testing.T) {
		r, mock, reached := newIdempotentRouter(t)
		mock.ExpectGet(cacheKey).SetVal(`{"id":"DEV-20240115-007"}`)

		w := post(r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "DEV-20240115-007")
		assert.False(t, *reached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate in flight", func(t *testing.T) {
		r, mock, reached := newIdempotentRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := post(r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, *reached)
	})

	t.Run("first request proceeds", func(t *testing.T) {
		r, mock, reached := newIdempotentRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		w := post(r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, *reached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
