package entity

import (
	"time"
)

const (
	RoleCustomer   = "customer"
	RoleStoreOwner = "store_owner"
	RoleViewer     = "viewer"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one of the stored role values.
// "super_admin" is never stored; it is derived from the operator email.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStoreOwner, RoleViewer, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID      string `json:"id" firestore:"id"`
	Email   string `json:"email" firestore:"email"`
	Name    string `json:"name" firestore:"name"`
	Phone   string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role    string `json:"role" firestore:"role"`
	Address string `json:"address,omitempty" firestore:"address,omitempty"`

	// Password reset flow. Token is single-use and expires.
	ResetToken       string    `json:"-" firestore:"resetToken,omitempty"`
	ResetTokenExpiry time.Time `json:"-" firestore:"resetTokenExpiry,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
