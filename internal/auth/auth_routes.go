package auth

import (
	"github.com/Garvit-office/smart-agriguard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// Registration is strict per IP to keep bots from mass-creating
		// accounts. limit 0.05 rps = 1 request per 20 seconds.
		auth.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)
	}
}
