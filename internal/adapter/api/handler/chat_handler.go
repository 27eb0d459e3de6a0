package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/adapter/api/middleware"
	"github.com/burhansaar3-alt/app/internal/usecase"
	"github.com/burhansaar3-alt/app/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// GetStoreThread returns (creating if needed) the caller's thread with a
// store, along with its message history.
func (h *ChatHandler) GetStoreThread(c echo.Context) error {
	thread, messages, err := h.chatUseCase.GetStoreThread(c.Request().Context(), middleware.CurrentUser(c), c.Param("storeId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"thread":   thread,
		"messages": messages,
	})
}

func (h *ChatHandler) SendToStore(c echo.Context) error {
	var req struct {
		StoreID string `json:"store_id" validate:"required"`
		Content string `json:"content" validate:"required,min=1,max=4000"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendToStore(c.Request().Context(), middleware.CurrentUser(c), req.StoreID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) ListStoreThreads(c echo.Context) error {
	threads, err := h.chatUseCase.ListStoreThreads(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, threads)
}

func (h *ChatHandler) ReplyFromStore(c echo.Context) error {
	var req struct {
		ThreadID string `json:"thread_id" validate:"required"`
		Content  string `json:"content" validate:"required,min=1,max=4000"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.ReplyFromStore(c.Request().Context(), middleware.CurrentUser(c), req.ThreadID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}
