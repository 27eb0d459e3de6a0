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

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{
		client: client,
	}
}

// Doc ID is derived from (user, product), which makes Add naturally
// idempotent.
func wishlistDocID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	item := &entity.WishlistItem{
		ID:        wishlistDocID(userID, productID),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	_, err := r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return nil, errors.Internal("Failed to add wishlist item", err)
	}

	return item, nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	_, err := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove wishlist item", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Contains(ctx context.Context, userID, productID string) (bool, error) {
	_, err := r.client.Collection("wishlists").Doc(wishlistDocID(userID, productID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check wishlist item", err)
	}

	return true, nil
}

func (r *firestoreWishlistRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	iter := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var items []*entity.WishlistItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate wishlist", err)
		}
		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse wishlist data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
