package cookie

import (
	"github.com/gin-gonic/gin"
)

// Cookie written by the auth service after login.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
