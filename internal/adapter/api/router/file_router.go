package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupFileRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	fileHandler := handler.GetFileHandler()

	upload := api.Group("/upload-image")
	upload.Use(authMiddleware.Authenticate)
	upload.POST("", fileHandler.UploadImage)
}
