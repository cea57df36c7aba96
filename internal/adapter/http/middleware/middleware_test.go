package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/infrastructure/auth"
	"cotador_telecom/internal/infrastructure/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	p   authz.Principal
	err error
}

func (s stubVerifier) Verify(string) (authz.Principal, error) { return s.p, s.err }

func do(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		for _, s := range v {
			req.Header.Add(k, s)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := authz.Principal{UserID: "u-1", Role: authz.RoleUser}

	newEngine := func(v TokenVerifier) *gin.Engine {
		r := gin.New()
		r.Use(Authenticate(v))
		r.GET("/me", func(c *gin.Context) {
			p, ok := PrincipalFrom(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			c.String(http.StatusOK, p.UserID)
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		w := do(newEngine(stubVerifier{p: user}), http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		w := do(newEngine(stubVerifier{p: user}), http.MethodGet, "/me", http.Header{"Authorization": []string{"Basic abc"}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		w := do(newEngine(stubVerifier{err: errors.New("bad")}), http.MethodGet, "/me", bearer("x"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := do(newEngine(stubVerifier{p: user}), http.MethodGet, "/me", bearer("x"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u-1", w.Body.String())
	})

	t.Run("real token service", func(t *testing.T) {
		svc := auth.NewTokenService("secret", "cotador", "cotador-api")
		token, err := svc.Sign(user, time.Minute)
		require.NoError(t, err)

		w := do(newEngine(svc), http.MethodGet, "/me", bearer(token))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(p *authz.Principal) *gin.Engine {
		r := gin.New()
		if p != nil {
			caller := *p
			r.Use(func(c *gin.Context) { SetPrincipal(c, caller); c.Next() })
		}
		r.PUT("/price-tables", RequireAction(authz.ActionPriceTableEdit), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	assert.Equal(t, http.StatusUnauthorized, do(newEngine(nil), http.MethodPut, "/price-tables", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(newEngine(&authz.Principal{UserID: "u", Role: authz.RoleUser}), http.MethodPut, "/price-tables", nil).Code)
	assert.Equal(t, http.StatusNoContent, do(newEngine(&authz.Principal{UserID: "a", Role: authz.RoleAdmin}), http.MethodPut, "/price-tables", nil).Code)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/v1/proposals/:id", func(c *gin.Context) {
		SetPrincipal(c, authz.Principal{UserID: "u-7", Role: authz.RoleUser})
		c.Status(http.StatusNotFound)
	})

	w := do(r, http.MethodGet, "/v1/proposals/p-1", http.Header{RequestIDHeader: []string{"req-1"}})
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	out := buf.String()
	assert.Contains(t, out, `"message":"http_request"`)
	assert.Contains(t, out, `"route":"/v1/proposals/:id"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"user_id":"u-7"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, http.MethodGet, "/ping", nil)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics("test", reg)

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/v1/proposals/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(r, http.MethodGet, "/v1/proposals/a", nil)
	do(r, http.MethodGet, "/v1/proposals/b", nil)
	do(r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues(http.MethodGet, "/v1/proposals/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues(http.MethodGet, "unknown", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid rate", func(t *testing.T) {
		_, err := RateLimit("lots", nil)
		assert.Error(t, err)
	})

	run := func(t *testing.T, client *redis.Client) {
		mw, err := RateLimit("2-M", client)
		require.NoError(t, err)

		r := gin.New()
		r.Use(func(c *gin.Context) {
			if id := c.GetHeader("X-User"); id != "" {
				SetPrincipal(c, authz.Principal{UserID: id, Role: authz.RoleUser})
			}
			c.Next()
		})
		r.Use(mw)
		r.GET("/q", func(c *gin.Context) { c.Status(http.StatusOK) })

		alice := http.Header{"X-User": []string{"alice"}}
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/q", alice).Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/q", alice).Code)
		w := do(r, http.MethodGet, "/q", alice)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))

		bob := http.Header{"X-User": []string{"bob"}}
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/q", bob).Code)
	}

	t.Run("memory store", func(t *testing.T) { run(t, nil) })

	t.Run("redis store", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		run(t, client)
	})
}
