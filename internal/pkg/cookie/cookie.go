package cookie

import (
	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session"

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}
