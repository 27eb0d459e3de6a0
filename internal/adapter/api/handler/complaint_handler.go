package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/usecase"
	"github.com/burhansaar3-alt/app/pkg/response"
	"github.com/burhansaar3-alt/app/pkg/utils"
)

type ComplaintHandler struct {
	complaintUseCase *usecase.ComplaintUseCase
}

func NewComplaintHandler(complaintUseCase *usecase.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase: complaintUseCase,
	}
}

func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	var req struct {
		Subject string   `json:"subject" validate:"required,min=3"`
		Message string   `json:"message" validate:"required,min=10"`
		OrderID string   `json:"order_id"`
		Images  []string `json:"images" validate:"omitempty,dive,url"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.CreateComplaint(c.Request().Context(), middleware.CurrentUser(c), usecase.CreateComplaintInput{
		Subject: req.Subject,
		Message: req.Message,
		OrderID: req.OrderID,
		Images:  req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, complaint)
}

func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	complaints, total, err := h.complaintUseCase.ListComplaints(c.Request().Context(), middleware.CurrentUser(c), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, complaints, total, pagination.Page, pagination.PageSize)
}

func (h *ComplaintHandler) Respond(c echo.Context) error {
	var req struct {
		Status   string `json:"status" validate:"required,oneof=pending in_progress resolved closed"`
		Response string `json:"response"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.Respond(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), usecase.RespondInput{
		Status:   entity.ComplaintStatus(req.Status),
		Response: req.Response,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) DeleteComplaint(c echo.Context) error {
	if err := h.complaintUseCase.DeleteComplaint(c.Request().Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Complaint deleted",
	})
}
