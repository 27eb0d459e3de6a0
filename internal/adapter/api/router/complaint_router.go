package router

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/handler"
	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
)

func SetupComplaintRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	complaintHandler := handler.GetComplaintHandler()

	complaints := api.Group("/complaints")
	complaints.Use(authMiddleware.Authenticate)
	complaints.POST("", complaintHandler.CreateComplaint)
	complaints.GET("", complaintHandler.ListComplaints)

	admin := api.Group("/complaints")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.PATCH("/:id", complaintHandler.Respond)
	admin.DELETE("/:id", complaintHandler.DeleteComplaint)
}
