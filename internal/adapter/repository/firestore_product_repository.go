package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.client.Collection("products").NewDoc()
		product.ID = doc.ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	query := r.client.Collection("products").Query

	if filter.CategoryID != "" {
		query = query.Where("categoryId", "==", filter.CategoryID)
	}
	if filter.StoreID != "" {
		query = query.Where("storeId", "==", filter.StoreID)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}

	query = query.OrderBy("createdAt", firestore.Desc)

	// Firestore has no substring search; filter the page set in memory.
	// Catalog sizes here stay well below the point where this matters.
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to query products", err)
	}

	var matched []*entity.Product
	search := strings.ToLower(filter.Search)
	for _, doc := range allDocs {
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, 0, errors.Internal("Failed to parse product data", err)
		}
		if search != "" && !strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		matched = append(matched, &product)
	}

	total := int64(len(matched))

	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

func (r *firestoreProductRepository) ListSimilar(ctx context.Context, categoryID, excludeID string, limit int) ([]*entity.Product, error) {
	iter := r.client.Collection("products").
		Where("categoryId", "==", categoryID).
		Where("status", "==", entity.ProductActive).
		Limit(limit + 1).
		Documents(ctx)

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate similar products", err)
		}
		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		if product.ID == excludeID {
			continue
		}
		products = append(products, &product)
		if len(products) == limit {
			break
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	_, err := r.client.Collection("products").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("products").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) DeleteByStoreID(ctx context.Context, storeID string) (int, error) {
	iter := r.client.Collection("products").Where("storeId", "==", storeID).Documents(ctx)

	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, errors.Internal("Failed to iterate store products", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, errors.Internal("Failed to delete store product", err)
		}
		deleted++
	}

	return deleted, nil
}

func (r *firestoreProductRepository) DecrementStock(ctx context.Context, productID string, quantity int) error {
	ref := r.client.Collection("products").Doc(productID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return errors.NotFound("Product", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return errors.Internal("Failed to parse product data", err)
		}

		if product.Stock < quantity {
			return errors.BadRequest("Insufficient stock for "+product.Name, nil)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "stock", Value: product.Stock - quantity},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
}

func (r *firestoreProductRepository) IncrementStock(ctx context.Context, productID string, quantity int) error {
	ref := r.client.Collection("products").Doc(productID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return errors.NotFound("Product", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return errors.Internal("Failed to parse product data", err)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "stock", Value: product.Stock + quantity},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
}
