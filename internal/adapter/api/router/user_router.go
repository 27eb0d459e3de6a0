package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupUserRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	users := api.Group("/users")
	users.Use(authMiddleware.Authenticate)
	users.Use(adminMiddleware.AdminView)
	users.GET("", userHandler.ListUsers)

	super := api.Group("/users")
	super.Use(authMiddleware.Authenticate)
	super.Use(adminMiddleware.SuperAdminOnly)
	super.PATCH("/:id/role", userHandler.ChangeRole)
	super.DELETE("/:id", userHandler.DeleteUser)
}
