package entity

import (
	"time"
)

type StoreStatus string

const (
	StorePending  StoreStatus = "pending"
	StoreApproved StoreStatus = "approved"
	StoreRejected StoreStatus = "rejected"
)

// CanReview reports whether an approve/reject decision may still be made.
// approved and rejected are terminal; there is no re-review path.
func (s StoreStatus) CanReview() bool {
	return s == StorePending
}

// ValidDecision reports whether to is a legal review outcome.
func (s StoreStatus) ValidDecision(to StoreStatus) bool {
	return s.CanReview() && (to == StoreApproved || to == StoreRejected)
}

var storeLabels = map[StoreStatus]StatusLabel{
	StorePending:  {Text: "Pending review", Severity: "warning"},
	StoreApproved: {Text: "Approved", Severity: "success"},
	StoreRejected: {Text: "Rejected", Severity: "danger"},
}

func (s StoreStatus) Label() StatusLabel {
	if l, ok := storeLabels[s]; ok {
		return l
	}
	return storeLabels[StorePending]
}

type Store struct {
	ID          string      `json:"id" firestore:"id"`
	OwnerID     string      `json:"owner_id" firestore:"ownerId"`
	StoreName   string      `json:"store_name" firestore:"storeName"`
	Description string      `json:"description,omitempty" firestore:"description,omitempty"`
	Phone       string      `json:"phone,omitempty" firestore:"phone,omitempty"`
	Logo        string      `json:"logo,omitempty" firestore:"logo,omitempty"`
	Status      StoreStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time   `json:"updated_at" firestore:"updatedAt"`
}
