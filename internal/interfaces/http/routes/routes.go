// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/printmart/internal/config"
	"github.com/your-org/printmart/internal/domain/catalog"
	"github.com/your-org/printmart/internal/domain/session"
	"github.com/your-org/printmart/internal/interfaces/http/handlers"
	"github.com/your-org/printmart/internal/interfaces/http/middleware"
	"github.com/your-org/printmart/internal/pkg/auth"
)

// SetupRoutes registers every API route on rg. All of them run inside a
// shopper session.
func SetupRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, registry *session.Registry, sessions *auth.SessionManager, cfg *config.Config) {
	rg.Use(middleware.Session(cfg, sessions, registry))

	SetupAuthRoutes(rg)
	SetupProductRoutes(rg, cat)
	SetupCartRoutes(rg, cat)
	SetupOrderRoutes(rg)
	SetupReviewRoutes(rg, cat)
}

// SetupAuthRoutes sets up sign-in and profile routes
func SetupAuthRoutes(rg *gin.RouterGroup) {
	authHandler := handlers.NewAuthHandler()

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/profile", authHandler.GetProfile)
		auth.PUT("/profile", authHandler.UpdateProfile)
	}
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	productHandler := handlers.NewProductHandler(cat)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/options", productHandler.GetOptions)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/reviews", productHandler.GetProductReviews)
	}
}

// SetupCartRoutes sets up cart and checkout routes
func SetupCartRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	cartHandler := handlers.NewCartHandler(cat)
	checkoutHandler := handlers.NewCheckoutHandler()

	// Cart works for anonymous sessions too
	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.RequireIdentity())
	{
		checkout.GET("/shipping-methods", checkoutHandler.GetShippingMethods)
		checkout.GET("/summary", checkoutHandler.GetCheckoutSummary)
		checkout.POST("", checkoutHandler.PlaceOrder)
	}
}

// SetupOrderRoutes sets up order history routes
func SetupOrderRoutes(rg *gin.RouterGroup) {
	orderHandler := handlers.NewOrderHandler()

	orders := rg.Group("/orders")
	orders.Use(middleware.RequireIdentity())
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}

// SetupReviewRoutes sets up review routes
func SetupReviewRoutes(rg *gin.RouterGroup, cat *catalog.Catalog) {
	reviewHandler := handlers.NewReviewHandler(cat)

	reviews := rg.Group("/reviews")
	{
		reviews.GET("", reviewHandler.GetReviews)
		reviews.POST("", reviewHandler.CreateReview)
	}
}
