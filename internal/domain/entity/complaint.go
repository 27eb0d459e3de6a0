package entity

import (
	"time"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

var complaintNext = map[ComplaintStatus][]ComplaintStatus{
	ComplaintPending:    {ComplaintInProgress, ComplaintClosed},
	ComplaintInProgress: {ComplaintResolved, ComplaintClosed},
	ComplaintResolved:   {ComplaintClosed},
	ComplaintClosed:     {},
}

// CanTransition reports whether s -> to is legal. Any non-closed state may
// move to closed; that is the administrative override.
func (s ComplaintStatus) CanTransition(to ComplaintStatus) bool {
	for _, n := range complaintNext[s] {
		if n == to {
			return true
		}
	}
	return false
}

func ValidComplaintStatus(s ComplaintStatus) bool {
	_, ok := complaintNext[s]
	return ok
}

var complaintLabels = map[ComplaintStatus]StatusLabel{
	ComplaintPending:    {Text: "Pending", Severity: "warning"},
	ComplaintInProgress: {Text: "In progress", Severity: "info"},
	ComplaintResolved:   {Text: "Resolved", Severity: "success"},
	ComplaintClosed:     {Text: "Closed", Severity: "muted"},
}

func (s ComplaintStatus) Label() StatusLabel {
	if l, ok := complaintLabels[s]; ok {
		return l
	}
	return complaintLabels[ComplaintPending]
}

type Complaint struct {
	ID            string          `json:"id" firestore:"id"`
	CustomerID    string          `json:"customer_id" firestore:"customerId"`
	Subject       string          `json:"subject" firestore:"subject"`
	Message       string          `json:"message" firestore:"message"`
	OrderID       string          `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	Images        []string        `json:"images" firestore:"images"`
	Status        ComplaintStatus `json:"status" firestore:"status"`
	AdminResponse string          `json:"admin_response,omitempty" firestore:"adminResponse,omitempty"`
	CreatedAt     time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time       `json:"updated_at" firestore:"updatedAt"`
}
