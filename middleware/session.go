package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huntdavid175/plateraa-storefront/models"
	"github.com/huntdavid175/plateraa-storefront/utils"
)

const sessionHeader = "X-Session-Token"

// SessionMiddleware attaches a guest session id to every request. An
// incoming valid token is reused; otherwise a new session is minted and the
// fresh token is echoed back in the response header so the client can keep it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(sessionHeader)
		if tokenString == "" {
			if cookie, err := c.Cookie("session_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString != "" {
			claims, err := utils.ValidateSessionToken(tokenString)
			if err == nil {
				c.Set("session_id", claims.SessionID)
				c.Next()
				return
			}
		}

		token, sessionID, err := utils.NewSessionToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Failed to start session",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Header(sessionHeader, token)
		c.Set("session_id", sessionID)
		c.Next()
	}
}
