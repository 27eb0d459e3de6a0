package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupChatRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chat := api.Group("/chat")
	chat.Use(authMiddleware.Authenticate)
	chat.GET("/store/messages", chatHandler.ListStoreThreads)
	chat.POST("/store/reply", chatHandler.ReplyFromStore)
	chat.POST("/send", chatHandler.SendToStore)
	chat.GET("/:storeId", chatHandler.GetStoreThread)
}
