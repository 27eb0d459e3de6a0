package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplaintStatusCanTransition(t *testing.T) {
	assert.True(t, ComplaintPending.CanTransition(ComplaintInProgress))
	assert.True(t, ComplaintInProgress.CanTransition(ComplaintResolved))
	assert.True(t, ComplaintResolved.CanTransition(ComplaintClosed))

	// Any open complaint can be closed directly.
	assert.True(t, ComplaintPending.CanTransition(ComplaintClosed))
	assert.True(t, ComplaintInProgress.CanTransition(ComplaintClosed))

	// Resolving requires passing through in_progress first.
	assert.False(t, ComplaintPending.CanTransition(ComplaintResolved))

	// Closed is terminal, and there is no reopening.
	assert.False(t, ComplaintClosed.CanTransition(ComplaintPending))
	assert.False(t, ComplaintClosed.CanTransition(ComplaintInProgress))
	assert.False(t, ComplaintResolved.CanTransition(ComplaintInProgress))
}

func TestValidComplaintStatus(t *testing.T) {
	for _, s := range []ComplaintStatus{ComplaintPending, ComplaintInProgress, ComplaintResolved, ComplaintClosed} {
		assert.True(t, ValidComplaintStatus(s))
	}
	assert.False(t, ValidComplaintStatus(ComplaintStatus("escalated")))
}

func TestComplaintStatusLabel(t *testing.T) {
	assert.Equal(t, "In progress", ComplaintInProgress.Label().Text)
	assert.Equal(t, ComplaintPending.Label(), ComplaintStatus("garbage").Label())
}
