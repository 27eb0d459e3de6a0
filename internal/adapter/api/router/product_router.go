package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupProductRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	products := api.Group("/products")
	// Listing widens beyond active products for admins and store owners.
	products.GET("", productHandler.ListProducts, authMiddleware.AuthenticateOptional)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/similar", productHandler.ListSimilar)
	products.GET("/:id/reviews", productHandler.ListReviews)

	owned := api.Group("/products")
	owned.Use(authMiddleware.Authenticate)
	owned.POST("", productHandler.CreateProduct)
	owned.PUT("/:id", productHandler.UpdateProduct)
	owned.DELETE("/:id", productHandler.DeleteProduct)
	owned.POST("/:id/reviews", productHandler.CreateReview)

	categories := api.Group("/categories")
	categories.GET("", productHandler.ListCategories)

	adminCategories := api.Group("/categories")
	adminCategories.Use(authMiddleware.Authenticate)
	adminCategories.Use(adminMiddleware.AdminOnly)
	adminCategories.POST("", productHandler.CreateCategory)
}
