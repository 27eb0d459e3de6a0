package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burhansaar3-alt/app/internal/infrastructure/storage"
	"github.com/burhansaar3-alt/app/pkg/errors"
	"github.com/burhansaar3-alt/app/pkg/response"
)

const maxUploadSize = 5 << 20 // 5 MB

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

func (h *FileHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	if fileHeader.Size > maxUploadSize {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.storageClient.UploadImage(c.Request().Context(), src, contentType)
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to upload image: unsupported type or storage error", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
