package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
	"github.com/burhansaar3-alt/app/internal/usecase"
	"github.com/burhansaar3-alt/app/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

func (h *WishlistHandler) List(c echo.Context) error {
	entries, err := h.wishlistUseCase.List(c.Request().Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, entries)
}

func (h *WishlistHandler) Add(c echo.Context) error {
	item, err := h.wishlistUseCase.Add(c.Request().Context(), middleware.CurrentUser(c).ID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, item)
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	if err := h.wishlistUseCase.Remove(c.Request().Context(), middleware.CurrentUser(c).ID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Removed from wishlist",
	})
}
