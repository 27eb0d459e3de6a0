package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/usecase"
	"github.com/burhansaar3-alt/app/pkg/errors"
	"github.com/burhansaar3-alt/app/pkg/response"
	"github.com/burhansaar3-alt/app/pkg/utils"
)

type StoreHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewStoreHandler(storeUseCase *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{
		storeUseCase: storeUseCase,
	}
}

type createStoreRequest struct {
	StoreName   string `json:"store_name" validate:"required,min=2"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Phone       string `json:"phone" validate:"omitempty"`
	Logo        string `json:"logo" validate:"omitempty,url"`
}

func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.CreateStore(c.Request().Context(), middleware.CurrentUser(c), usecase.CreateStoreInput{
		StoreName:   req.StoreName,
		Description: req.Description,
		Phone:       req.Phone,
		Logo:        req.Logo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, store)
}

// ListStores returns approved stores by default; ?status= selects the
// pending or rejected queues instead.
func (h *StoreHandler) ListStores(c echo.Context) error {
	status := entity.StoreStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.StoreApproved
	}

	pagination := utils.GetPaginationParams(c)
	stores, total, err := h.storeUseCase.ListStores(c.Request().Context(), status, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, stores, total, pagination.Page, pagination.PageSize)
}

func (h *StoreHandler) GetMyStore(c echo.Context) error {
	store, err := h.storeUseCase.GetMyStore(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

func (h *StoreHandler) GetStore(c echo.Context) error {
	store, err := h.storeUseCase.GetStoreByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

// ReviewStore applies the admin's decision on a pending store.
func (h *StoreHandler) ReviewStore(c echo.Context) error {
	var req struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	store, err := h.storeUseCase.ReviewStore(c.Request().Context(), middleware.CurrentUser(c), c.Param("id"), entity.StoreStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

func (h *StoreHandler) DeleteStore(c echo.Context) error {
	storeID := c.Param("id")
	if storeID == "" {
		return response.Error(c, errors.BadRequest("Store id is required", nil))
	}

	result, err := h.storeUseCase.DeleteStore(c.Request().Context(), middleware.CurrentUser(c), storeID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
