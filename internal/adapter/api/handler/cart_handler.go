package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/usecase"
	"github.com/burhansaar3-alt/app/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	lines, err := h.cartUseCase.GetCart(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"items": lines,
	})
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req struct {
		ProductID string `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"required,gt=0"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.cartUseCase.AddToCart(c.Request().Context(), middleware.CurrentUser(c).ID, entity.CartItem{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Added to cart",
	})
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	err := h.cartUseCase.RemoveFromCart(c.Request().Context(), middleware.CurrentUser(c).ID, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Removed from cart",
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUseCase.ClearCart(c.Request().Context(), middleware.CurrentUser(c).ID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Cart cleared",
	})
}
