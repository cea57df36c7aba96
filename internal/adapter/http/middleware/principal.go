package middleware

import (
	"cotador_telecom/internal/domain/authz"

	"github.com/gin-gonic/gin"
)

const principalKey = "cotador.principal"

// SetPrincipal stores the authenticated caller on the gin context.
func SetPrincipal(c *gin.Context, p authz.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the caller set by Authenticate.
func PrincipalFrom(c *gin.Context) (authz.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}
