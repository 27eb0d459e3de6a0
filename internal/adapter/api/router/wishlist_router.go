package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupWishlistRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	wishlistHandler := handler.GetWishlistHandler()

	wishlist := api.Group("/wishlist")
	wishlist.Use(authMiddleware.Authenticate)
	wishlist.GET("", wishlistHandler.List)
	wishlist.POST("/add/:id", wishlistHandler.Add)
	wishlist.DELETE("/remove/:id", wishlistHandler.Remove)
}
