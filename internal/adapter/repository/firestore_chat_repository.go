package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

// One thread per (customer, store): the doc ID is derived from the pair.
func threadDocID(customerID, storeID string) string {
	return fmt.Sprintf("%s_%s", customerID, storeID)
}

func (r *firestoreChatRepository) GetOrCreateThread(ctx context.Context, customerID, customerName, storeID, storeName string) (*entity.ChatThread, error) {
	id := threadDocID(customerID, storeID)
	doc, err := r.client.Collection("chatThreads").Doc(id).Get(ctx)
	if err == nil {
		var thread entity.ChatThread
		if err := doc.DataTo(&thread); err != nil {
			return nil, errors.Internal("Failed to parse chat thread", err)
		}
		return &thread, nil
	}
	if status.Code(err) != codes.NotFound {
		return nil, errors.Internal("Failed to get chat thread", err)
	}

	thread := &entity.ChatThread{
		ID:           id,
		StoreID:      storeID,
		CustomerID:   customerID,
		CustomerName: customerName,
		StoreName:    storeName,
		CreatedAt:    time.Now(),
	}

	if _, err := r.client.Collection("chatThreads").Doc(id).Set(ctx, thread); err != nil {
		return nil, errors.Internal("Failed to create chat thread", err)
	}

	return thread, nil
}

func (r *firestoreChatRepository) GetThread(ctx context.Context, threadID string) (*entity.ChatThread, error) {
	doc, err := r.client.Collection("chatThreads").Doc(threadID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat thread", err)
		}
		return nil, errors.Internal("Failed to get chat thread", err)
	}

	var thread entity.ChatThread
	if err := doc.DataTo(&thread); err != nil {
		return nil, errors.Internal("Failed to parse chat thread", err)
	}

	return &thread, nil
}

func (r *firestoreChatRepository) GetThreadByParticipants(ctx context.Context, customerID, storeID string) (*entity.ChatThread, error) {
	return r.GetThread(ctx, threadDocID(customerID, storeID))
}

func (r *firestoreChatRepository) ListThreadsByStoreID(ctx context.Context, storeID string) ([]*entity.ChatThread, error) {
	iter := r.client.Collection("chatThreads").
		Where("storeId", "==", storeID).
		OrderBy("lastMessageAt", firestore.Desc).
		Documents(ctx)

	var threads []*entity.ChatThread
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chat threads", err)
		}
		var thread entity.ChatThread
		if err := doc.DataTo(&thread); err != nil {
			return nil, errors.Internal("Failed to parse chat thread", err)
		}
		threads = append(threads, &thread)
	}

	return threads, nil
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		doc := r.client.Collection("chatMessages").NewDoc()
		message.ID = doc.ID
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	if _, err := r.client.Collection("chatMessages").Doc(message.ID).Set(ctx, message); err != nil {
		return errors.Internal("Failed to create chat message", err)
	}

	// Keep the thread summary in sync with its latest message.
	_, err := r.client.Collection("chatThreads").Doc(message.ThreadID).Update(ctx, []firestore.Update{
		{Path: "lastMessage", Value: message.Content},
		{Path: "lastMessageAt", Value: message.CreatedAt},
	})
	if err != nil {
		return errors.Internal("Failed to update chat thread summary", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, threadID string, limit, offset int) ([]*entity.ChatMessage, int64, error) {
	query := r.client.Collection("chatMessages").
		Where("threadId", "==", threadID).
		OrderBy("createdAt", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count chat messages", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var messages []*entity.ChatMessage

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate chat messages", err)
		}
		var message entity.ChatMessage
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse chat message", err)
		}
		messages = append(messages, &message)
	}

	return messages, total, nil
}
