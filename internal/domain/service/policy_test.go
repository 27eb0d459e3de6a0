package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

const superEmail = "operator@example.com"

func newTestPolicy() *Policy {
	return NewPolicy(superEmail)
}

func userWithRole(id, role string) *entity.User {
	return &entity.User{ID: id, Email: id + "@example.com", Role: role}
}

func TestIsSuperAdmin(t *testing.T) {
	p := newTestPolicy()

	assert.True(t, p.IsSuperAdmin(&entity.User{ID: "u1", Email: superEmail, Role: entity.RoleCustomer}))
	assert.False(t, p.IsSuperAdmin(userWithRole("u2", entity.RoleAdmin)))
	assert.False(t, p.IsSuperAdmin(nil))
}

func TestIsSuperAdminCaseInsensitive(t *testing.T) {
	p := newTestPolicy()

	assert.True(t, p.IsSuperAdmin(&entity.User{ID: "u1", Email: "OPERATOR@Example.COM"}))
}

func TestIsSuperAdminEmptyConfig(t *testing.T) {
	p := NewPolicy("")

	// Without a configured address nobody is elevated.
	assert.False(t, p.IsSuperAdmin(&entity.User{ID: "u1", Email: ""}))
}

func TestCanViewAdminData(t *testing.T) {
	p := newTestPolicy()

	assert.True(t, p.CanViewAdminData(userWithRole("a", entity.RoleAdmin)))
	assert.True(t, p.CanViewAdminData(userWithRole("v", entity.RoleViewer)))
	assert.True(t, p.CanViewAdminData(&entity.User{ID: "s", Email: superEmail}))
	assert.False(t, p.CanViewAdminData(userWithRole("c", entity.RoleCustomer)))
	assert.False(t, p.CanViewAdminData(userWithRole("o", entity.RoleStoreOwner)))
	assert.False(t, p.CanViewAdminData(nil))
}

// The viewer role must fail every mutating check even though it passes the
// read check.
func TestViewerIsReadOnly(t *testing.T) {
	p := newTestPolicy()
	viewer := userWithRole("v", entity.RoleViewer)
	store := &entity.Store{ID: "s1", OwnerID: "other"}
	order := &entity.Order{ID: "o1", CustomerID: "other", Status: entity.OrderPending}

	assert.False(t, p.CanApproveStore(viewer))
	assert.False(t, p.CanDeleteStore(viewer, store))
	assert.False(t, p.CanManageProduct(viewer, store))
	assert.False(t, p.CanUpdateOrderStatus(viewer, order, nil))
	assert.False(t, p.CanRespondToComplaint(viewer))
	assert.False(t, p.CanChangeUserRole(viewer, userWithRole("c", entity.RoleCustomer)))
	assert.False(t, p.CanDeleteUser(viewer, userWithRole("c", entity.RoleCustomer)))
}

func TestCanDeleteStore(t *testing.T) {
	p := newTestPolicy()
	store := &entity.Store{ID: "s1", OwnerID: "owner-1"}

	owner := userWithRole("owner-1", entity.RoleStoreOwner)
	otherOwner := userWithRole("owner-2", entity.RoleStoreOwner)

	assert.True(t, p.CanDeleteStore(owner, store))
	assert.False(t, p.CanDeleteStore(otherOwner, store))
	assert.True(t, p.CanDeleteStore(userWithRole("a", entity.RoleAdmin), store))
	assert.False(t, p.CanDeleteStore(userWithRole("c", entity.RoleCustomer), store))
}

func TestCanUpdateOrderStatus(t *testing.T) {
	p := newTestPolicy()
	order := &entity.Order{
		ID:         "o1",
		CustomerID: "cust-1",
		Status:     entity.OrderConfirmed,
		Items:      []entity.OrderItem{{ProductID: "p1", StoreID: "s1"}},
	}

	assert.True(t, p.CanUpdateOrderStatus(userWithRole("a", entity.RoleAdmin), order, nil))

	owner := userWithRole("owner-1", entity.RoleStoreOwner)
	assert.True(t, p.CanUpdateOrderStatus(owner, order, &entity.Store{ID: "s1", OwnerID: owner.ID}))
	assert.False(t, p.CanUpdateOrderStatus(owner, order, &entity.Store{ID: "s2", OwnerID: owner.ID}))
	assert.False(t, p.CanUpdateOrderStatus(owner, order, nil))

	assert.False(t, p.CanUpdateOrderStatus(userWithRole("cust-1", entity.RoleCustomer), order, nil))
}

func TestCanViewOrder(t *testing.T) {
	p := newTestPolicy()
	order := &entity.Order{
		ID:         "o1",
		CustomerID: "cust-1",
		Status:     entity.OrderPending,
		Items:      []entity.OrderItem{{ProductID: "p1", StoreID: "s1"}},
	}

	assert.True(t, p.CanViewOrder(userWithRole("cust-1", entity.RoleCustomer), order, nil))
	assert.True(t, p.CanViewOrder(userWithRole("a", entity.RoleAdmin), order, nil))
	assert.True(t, p.CanViewOrder(userWithRole("v", entity.RoleViewer), order, nil))
	assert.True(t, p.CanViewOrder(&entity.User{ID: "s", Email: superEmail, Role: entity.RoleCustomer}, order, nil))

	owner := userWithRole("owner-1", entity.RoleStoreOwner)
	assert.True(t, p.CanViewOrder(owner, order, &entity.Store{ID: "s1", OwnerID: owner.ID}))
	assert.False(t, p.CanViewOrder(owner, order, &entity.Store{ID: "s2", OwnerID: owner.ID}))
	assert.False(t, p.CanViewOrder(owner, order, nil))

	assert.False(t, p.CanViewOrder(userWithRole("cust-2", entity.RoleCustomer), order, nil))
	assert.False(t, p.CanViewOrder(nil, order, nil))
}

func TestCanCancelOwnOrder(t *testing.T) {
	p := newTestPolicy()
	customer := userWithRole("cust-1", entity.RoleCustomer)

	pending := &entity.Order{ID: "o1", CustomerID: "cust-1", Status: entity.OrderPending}
	confirmed := &entity.Order{ID: "o2", CustomerID: "cust-1", Status: entity.OrderConfirmed}
	shipped := &entity.Order{ID: "o3", CustomerID: "cust-1", Status: entity.OrderShipped}
	foreign := &entity.Order{ID: "o4", CustomerID: "cust-2", Status: entity.OrderPending}

	assert.True(t, p.CanCancelOwnOrder(customer, pending))
	assert.True(t, p.CanCancelOwnOrder(customer, confirmed))
	assert.False(t, p.CanCancelOwnOrder(customer, shipped))
	assert.False(t, p.CanCancelOwnOrder(customer, foreign))
}

func TestCanChangeUserRoleNeverOwnAccount(t *testing.T) {
	p := newTestPolicy()
	super := &entity.User{ID: "super-1", Email: superEmail, Role: entity.RoleAdmin}

	assert.True(t, p.CanChangeUserRole(super, userWithRole("c", entity.RoleCustomer)))
	assert.False(t, p.CanChangeUserRole(super, super))

	assert.True(t, p.CanDeleteUser(super, userWithRole("c", entity.RoleCustomer)))
	assert.False(t, p.CanDeleteUser(super, super))

	// Plain admins cannot touch roles at all.
	assert.False(t, p.CanChangeUserRole(userWithRole("a", entity.RoleAdmin), userWithRole("c", entity.RoleCustomer)))
}
