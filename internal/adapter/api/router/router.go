package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

// Setup mounts every route group under /api.
func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	api := e.Group("/api")

	SetupAuthRouter(api, authMiddleware)
	SetupStoreRouter(api, authMiddleware, adminMiddleware)
	SetupProductRouter(api, authMiddleware, adminMiddleware)
	SetupCartRouter(api, authMiddleware)
	SetupOrderRouter(api, authMiddleware, adminMiddleware)
	SetupComplaintRouter(api, authMiddleware, adminMiddleware)
	SetupWishlistRouter(api, authMiddleware)
	SetupUserRouter(api, authMiddleware, adminMiddleware)
	SetupChatRouter(api, authMiddleware)
	SetupFileRouter(api, authMiddleware)
	SetupWebSocketRouter(api, authMiddleware)
	SetupHealthRouter(api)
}
