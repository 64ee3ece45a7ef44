package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "florista_session"

// Session identifies the client session carrying the cart. A missing or
// empty cookie gets a fresh uuid; the id is set on the context as
// session_id for handlers downstream.
func Session(secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()

			http.SetCookie(c.Writer, &http.Cookie{
				Name:     sessionCookie,
				Value:    sid,
				Path:     "/",
				MaxAge:   86400,
				HttpOnly: true,
				Secure:   secureCookies,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set("session_id", sid)
		c.Next()
	}
}
