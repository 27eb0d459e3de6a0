package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupAuthRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)

	me := api.Group("/auth")
	me.Use(authMiddleware.Authenticate)
	me.GET("/me", authHandler.Me)
}
