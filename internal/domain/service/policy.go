package service

import (
	"strings"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

// Policy is the role authorization decision table. Every mutating handler
// consults it before touching any state; the viewer role sees everything an
// admin sees but fails every mutating check.
type Policy struct {
	superAdminEmail string
}

func NewPolicy(superAdminEmail string) *Policy {
	return &Policy{superAdminEmail: strings.ToLower(superAdminEmail)}
}

// IsSuperAdmin derives the single elevated principal from the operator
// email. Comparison is case-insensitive. The address is configuration, not
// a stored role value.
func (p *Policy) IsSuperAdmin(user *entity.User) bool {
	if user == nil || p.superAdminEmail == "" {
		return false
	}
	return strings.ToLower(user.Email) == p.superAdminEmail
}

func (p *Policy) isAdmin(user *entity.User) bool {
	return user != nil && user.Role == entity.RoleAdmin
}

// CanViewAdminData allows the admin screens: admin, super admin, and the
// read-only viewer role.
func (p *Policy) CanViewAdminData(user *entity.User) bool {
	if user == nil {
		return false
	}
	return user.Role == entity.RoleAdmin || user.Role == entity.RoleViewer || p.IsSuperAdmin(user)
}

func (p *Policy) CanApproveStore(user *entity.User) bool {
	return p.isAdmin(user) || p.IsSuperAdmin(user)
}

func (p *Policy) CanDeleteStore(user *entity.User, store *entity.Store) bool {
	if p.isAdmin(user) || p.IsSuperAdmin(user) {
		return true
	}
	if user == nil || store == nil {
		return false
	}
	return user.Role == entity.RoleStoreOwner && store.OwnerID == user.ID
}

// CanManageProduct covers product create/update/delete: the owning store's
// owner, or an admin.
func (p *Policy) CanManageProduct(user *entity.User, store *entity.Store) bool {
	if p.isAdmin(user) || p.IsSuperAdmin(user) {
		return true
	}
	if user == nil || store == nil {
		return false
	}
	return user.Role == entity.RoleStoreOwner && store.OwnerID == user.ID
}

// CanUpdateOrderStatus: admins everywhere, store owners only for orders
// carrying their store's items. ownedStore may be nil for non-owners.
func (p *Policy) CanUpdateOrderStatus(user *entity.User, order *entity.Order, ownedStore *entity.Store) bool {
	if p.isAdmin(user) || p.IsSuperAdmin(user) {
		return true
	}
	if user == nil || order == nil {
		return false
	}
	if user.Role == entity.RoleStoreOwner && ownedStore != nil {
		return order.HasStore(ownedStore.ID)
	}
	return false
}

// CanViewOrder: the owning customer, the admin screens, or a store owner
// whose store appears in the order's items. ownedStore may be nil for
// non-owners.
func (p *Policy) CanViewOrder(user *entity.User, order *entity.Order, ownedStore *entity.Store) bool {
	if p.CanViewAdminData(user) {
		return true
	}
	if user == nil || order == nil {
		return false
	}
	if order.CustomerID == user.ID {
		return true
	}
	if user.Role == entity.RoleStoreOwner && ownedStore != nil {
		return order.HasStore(ownedStore.ID)
	}
	return false
}

// CanCancelOwnOrder: a customer may cancel their own order while it is
// still pending or confirmed.
func (p *Policy) CanCancelOwnOrder(user *entity.User, order *entity.Order) bool {
	if user == nil || order == nil || order.CustomerID != user.ID {
		return false
	}
	return order.Status.CanTransition(entity.OrderCancelled)
}

// CanChangeUserRole is super-admin only, and never for the actor's own
// account.
func (p *Policy) CanChangeUserRole(actor, target *entity.User) bool {
	if !p.IsSuperAdmin(actor) || target == nil {
		return false
	}
	return actor.ID != target.ID
}

func (p *Policy) CanDeleteUser(actor, target *entity.User) bool {
	if !p.IsSuperAdmin(actor) || target == nil {
		return false
	}
	return actor.ID != target.ID
}

func (p *Policy) CanRespondToComplaint(user *entity.User) bool {
	return p.isAdmin(user) || p.IsSuperAdmin(user)
}
