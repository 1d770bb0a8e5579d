package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenHeader = "X-Forwarded-Access-Token"
	accessTokenKey    = "access_token"
)

// ForwardedAccessToken keeps the gateway-forwarded credential on the context.
// A missing header is not an error; the request is served from fixtures.
func ForwardedAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := strings.TrimSpace(c.GetHeader(AccessTokenHeader)); token != "" {
			c.Set(accessTokenKey, token)
		}
		c.Next()
	}
}

func AccessToken(c *gin.Context) string {
	return c.GetString(accessTokenKey)
}
