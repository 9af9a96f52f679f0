package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hamza-kay/smashbros/internal/auth"
	"github.com/hamza-kay/smashbros/internal/bundle"
	"github.com/hamza-kay/smashbros/internal/cart"
	"github.com/hamza-kay/smashbros/internal/checkout"
	"github.com/hamza-kay/smashbros/internal/menu"
	"github.com/hamza-kay/smashbros/internal/middleware"
	"github.com/hamza-kay/smashbros/internal/restaurant"
)

type Deps struct {
	Auth       *auth.Handler
	Menu       *menu.Handler
	Cart       *cart.Handler
	Bundle     *bundle.Handler
	Checkout   *checkout.Handler
	Restaurant *restaurant.Handler
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-App-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Merchant Auth
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
	}

	// Public storefront (tenant required)
	public := r.Group("/", middleware.TenantMiddleware())
	{
		public.GET("/menu", deps.Menu.GetRestaurant)
		public.GET("/menu/section/:menuId", deps.Menu.GetSections)
		public.GET("/menu/items/:sectionId", deps.Menu.GetSectionItems)

		public.GET("/restaurant/status", deps.Restaurant.Status)

		carts := public.Group("/carts")
		{
			carts.POST("", deps.Cart.CreateCart)
			carts.GET("/:cartId", deps.Cart.GetCart)
			carts.DELETE("/:cartId", deps.Cart.ClearCart)

			carts.POST("/:cartId/items", deps.Cart.AddItem)
			carts.POST("/:cartId/bundles", deps.Bundle.Commit)

			carts.POST("/:cartId/lines/:lineId/increase", deps.Cart.IncreaseQuantity)
			carts.POST("/:cartId/lines/:lineId/decrease", deps.Cart.DecreaseQuantity)
			carts.DELETE("/:cartId/lines/:lineId", deps.Cart.RemoveLine)
			carts.DELETE("/:cartId/groups/:groupKey", deps.Cart.RemoveBundle)

			carts.POST("/:cartId/checkout", deps.Checkout.Checkout)
			carts.POST("/:cartId/complete", deps.Checkout.Complete)
		}
	}

	// Merchant (JWT required)
	merchant := r.Group("/merchant", middleware.AuthMiddleware())
	{
		merchant.PUT("/restaurant/toggle", deps.Restaurant.Toggle)
		merchant.POST("/items/:itemId/image", deps.Menu.UploadItemImage)
	}

	return r
}
