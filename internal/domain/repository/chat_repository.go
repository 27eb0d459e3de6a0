package repository

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

type ChatRepository interface {
	GetOrCreateThread(ctx context.Context, customerID, customerName, storeID, storeName string) (*entity.ChatThread, error)
	GetThread(ctx context.Context, threadID string) (*entity.ChatThread, error)
	GetThreadByParticipants(ctx context.Context, customerID, storeID string) (*entity.ChatThread, error)
	ListThreadsByStoreID(ctx context.Context, storeID string) ([]*entity.ChatThread, error)
	CreateMessage(ctx context.Context, message *entity.ChatMessage) error
	ListMessages(ctx context.Context, threadID string, limit, offset int) ([]*entity.ChatMessage, int64, error)
}
