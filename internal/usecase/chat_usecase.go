package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
	"github.com/burhansaar3-alt/app/pkg/logger"
)

type ChatUseCase struct {
	chatRepo  repository.ChatRepository
	storeRepo repository.StoreRepository
	notifier  ChatNotifier
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	storeRepo repository.StoreRepository,
	notifier ChatNotifier,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:  chatRepo,
		storeRepo: storeRepo,
		notifier:  notifier,
	}
}

// GetStoreThread returns the customer's conversation with a store,
// creating the thread on first contact.
func (uc *ChatUseCase) GetStoreThread(ctx context.Context, customer *entity.User, storeID string) (*entity.ChatThread, []*entity.ChatMessage, error) {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, nil, err
	}

	thread, err := uc.chatRepo.GetOrCreateThread(ctx, customer.ID, customer.Name, store.ID, store.StoreName)
	if err != nil {
		return nil, nil, err
	}

	messages, _, err := uc.chatRepo.ListMessages(ctx, thread.ID, 0, 0)
	if err != nil {
		return nil, nil, err
	}

	return thread, messages, nil
}

func (uc *ChatUseCase) SendToStore(ctx context.Context, customer *entity.User, storeID, content string) (*entity.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.BadRequest("Message cannot be empty", nil)
	}

	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	thread, err := uc.chatRepo.GetOrCreateThread(ctx, customer.ID, customer.Name, store.ID, store.StoreName)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ThreadID:  thread.ID,
		SenderID:  customer.ID,
		FromStore: false,
		Content:   content,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	uc.notify(store.OwnerID, message)
	return message, nil
}

// ListStoreThreads returns every customer conversation for the caller's
// store.
func (uc *ChatUseCase) ListStoreThreads(ctx context.Context, owner *entity.User) ([]*entity.ChatThread, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, errors.Forbidden("You don't have a store", err)
	}

	return uc.chatRepo.ListThreadsByStoreID(ctx, store.ID)
}

func (uc *ChatUseCase) ReplyFromStore(ctx context.Context, owner *entity.User, threadID, content string) (*entity.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.BadRequest("Message cannot be empty", nil)
	}

	store, err := uc.storeRepo.GetByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, errors.Forbidden("You don't have a store", err)
	}

	thread, err := uc.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread.StoreID != store.ID {
		return nil, errors.Forbidden("This conversation belongs to another store", nil)
	}

	message := &entity.ChatMessage{
		ThreadID:  thread.ID,
		SenderID:  owner.ID,
		FromStore: true,
		Content:   content,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	uc.notify(thread.CustomerID, message)
	return message, nil
}

func (uc *ChatUseCase) notify(userID string, message *entity.ChatMessage) {
	if uc.notifier == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{
		"type":    "chat_message",
		"message": message,
	})
	if err != nil {
		logger.Warn("failed to encode chat push: %v", err)
		return
	}
	uc.notifier.SendToUser(userID, payload)
}
