package catalog

import (
	"github.com/Garvit-office/smart-agriguard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret []byte) {
	products := r.Group("/products")
	{
		// Public browsing. Loose enough for real users, tight enough to
		// discourage scraping. limit 10 rps, burst 20.
		products.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)

		// Creating products is an admin capability, checked against the
		// authenticated session rather than a hardcoded flag.
		admin := products.Group("")
		admin.Use(middleware.AuthMiddleware(jwtSecret))
		admin.Use(middleware.RoleMiddleware("admin"))
		{
			admin.POST("",
				middleware.RateLimitByUser(1, 3),
				handler.Create,
			)
		}
	}
}
