package usecase

import (
	"context"
	"fmt"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

// In-memory fakes shared by the usecase tests. They mimic the Firestore
// adapters: Create assigns an ID, lookups return NOT_FOUND errors.

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.seq++
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", r.seq)
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	cp := *order
	return &cp, nil
}

func (r *fakeOrderRepo) ListByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListByStoreID(ctx context.Context, storeID string, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.HasStore(storeID) {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	seq      int

	// decrementErr forces DecrementStock to fail for a product ID, to
	// exercise compensation paths.
	decrementErr map[string]error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) put(p *entity.Product) *entity.Product {
	r.seq++
	if p.ID == "" {
		p.ID = fmt.Sprintf("product-%d", r.seq)
	}
	cp := *p
	r.products[p.ID] = &cp
	return &cp
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.put(product)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if filter.StoreID != "" && p.StoreID != filter.StoreID {
			continue
		}
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListSimilar(ctx context.Context, categoryID, excludeID string, limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID && p.ID != excludeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DeleteByStoreID(ctx context.Context, storeID string) (int, error) {
	count := 0
	for id, p := range r.products {
		if p.StoreID == storeID {
			delete(r.products, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, productID string, quantity int) error {
	if err, ok := r.decrementErr[productID]; ok {
		return err
	}
	p, ok := r.products[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	if p.Stock < quantity {
		return errors.BadRequest("Insufficient stock", nil)
	}
	p.Stock -= quantity
	return nil
}

func (r *fakeProductRepo) IncrementStock(ctx context.Context, productID string, quantity int) error {
	p, ok := r.products[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Stock += quantity
	return nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
	seq    int
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[string]*entity.Store{}}
}

func (r *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	r.seq++
	if store.ID == "" {
		store.ID = fmt.Sprintf("store-%d", r.seq)
	}
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStoreRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *fakeStoreRepo) List(ctx context.Context, status entity.StoreStatus, limit, offset int) ([]*entity.Store, int64, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		if status == "" || s.Status == status {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeStoreRepo) Update(ctx context.Context, store *entity.Store) error {
	if _, ok := r.stores[store.ID]; !ok {
		return errors.NotFound("Store", nil)
	}
	cp := *store
	r.stores[store.ID] = &cp
	return nil
}

func (r *fakeStoreRepo) Delete(ctx context.Context, id string) error {
	delete(r.stores, id)
	return nil
}

type fakeCartRepo struct {
	carts map[string][]entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string][]entity.CartItem{}}
}

func (r *fakeCartRepo) Get(ctx context.Context, userID string) ([]entity.CartItem, error) {
	return r.carts[userID], nil
}

func (r *fakeCartRepo) Add(ctx context.Context, userID string, item entity.CartItem) error {
	for i, existing := range r.carts[userID] {
		if existing.ProductID == item.ProductID {
			r.carts[userID][i].Quantity += item.Quantity
			return nil
		}
	}
	r.carts[userID] = append(r.carts[userID], item)
	return nil
}

func (r *fakeCartRepo) Remove(ctx context.Context, userID, productID string) error {
	items := r.carts[userID]
	for i, item := range items {
		if item.ProductID == productID {
			r.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeCartRepo) Clear(ctx context.Context, userID string) error {
	delete(r.carts, userID)
	return nil
}

type fakeComplaintRepo struct {
	complaints map[string]*entity.Complaint
	seq        int
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: map[string]*entity.Complaint{}}
}

func (r *fakeComplaintRepo) Create(ctx context.Context, complaint *entity.Complaint) error {
	r.seq++
	if complaint.ID == "" {
		complaint.ID = fmt.Sprintf("complaint-%d", r.seq)
	}
	cp := *complaint
	r.complaints[complaint.ID] = &cp
	return nil
}

func (r *fakeComplaintRepo) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	c, ok := r.complaints[id]
	if !ok {
		return nil, errors.NotFound("Complaint", nil)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeComplaintRepo) ListByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]*entity.Complaint, int64, error) {
	var out []*entity.Complaint
	for _, c := range r.complaints {
		if c.CustomerID == customerID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeComplaintRepo) List(ctx context.Context, limit, offset int) ([]*entity.Complaint, int64, error) {
	var out []*entity.Complaint
	for _, c := range r.complaints {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeComplaintRepo) Update(ctx context.Context, complaint *entity.Complaint) error {
	if _, ok := r.complaints[complaint.ID]; !ok {
		return errors.NotFound("Complaint", nil)
	}
	cp := *complaint
	r.complaints[complaint.ID] = &cp
	return nil
}

func (r *fakeComplaintRepo) Delete(ctx context.Context, id string) error {
	delete(r.complaints, id)
	return nil
}

// fakeEvents captures published events so tests can assert on them.
type fakeEvents struct {
	published [][]byte
}

func (f *fakeEvents) Publish(key, value []byte) {
	f.published = append(f.published, value)
}
