package handlers

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"cotador_telecom/internal/adapter/http/dto/request"
	"cotador_telecom/internal/adapter/http/middleware"
	"cotador_telecom/internal/domain/authz"

	"github.com/gin-gonic/gin"
)

var (
	seller   = authz.Principal{UserID: "u-1", Role: authz.RoleUser}
	director = authz.Principal{UserID: "d-1", Role: authz.RoleDirector}
	admin    = authz.Principal{UserID: "a-1", Role: authz.RoleAdmin}
)

// newRouter returns a test engine that authenticates every request as p.
// A nil p leaves requests anonymous.
func newRouter(t *testing.T, p *authz.Principal) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		t.Fatalf("register validators: %v", err)
	}
	r := gin.New()
	if p != nil {
		caller := *p
		r.Use(func(c *gin.Context) {
			middleware.SetPrincipal(c, caller)
			c.Next()
		})
	}
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
