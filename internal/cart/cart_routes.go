package cart

import (
	"github.com/Garvit-office/smart-agriguard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, secureCookies bool) {
	carts := r.Group("/cart")
	carts.Use(middleware.Session(secureCookies))
	{
		// Cart mutations are cheap local state, so the limits only guard
		// against runaway clients. limit 10 rps, burst 20.
		limit := middleware.RateLimitByIP(10, 20)

		carts.GET("", limit, handler.Detail)
		carts.DELETE("", limit, handler.Clear)

		items := carts.Group("/items/:productId")
		{
			items.POST("", limit, handler.AddItem)
			items.PATCH("", limit, handler.ChangeQuantity)
			items.DELETE("", limit, handler.RemoveItem)
		}
	}
}
