package cookie

import "github.com/gin-gonic/gin"

// AccessTokenCookieName is the cookie the browser session collaborator sets.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
