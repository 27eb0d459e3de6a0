package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreStatusCanReview(t *testing.T) {
	assert.True(t, StorePending.CanReview())
	assert.False(t, StoreApproved.CanReview())
	assert.False(t, StoreRejected.CanReview())
}

func TestStoreStatusValidDecision(t *testing.T) {
	assert.True(t, StorePending.ValidDecision(StoreApproved))
	assert.True(t, StorePending.ValidDecision(StoreRejected))
	assert.False(t, StorePending.ValidDecision(StorePending))

	// Decisions are final.
	assert.False(t, StoreApproved.ValidDecision(StoreRejected))
	assert.False(t, StoreRejected.ValidDecision(StoreApproved))
}

func TestStoreStatusLabel(t *testing.T) {
	assert.Equal(t, "success", StoreApproved.Label().Severity)
	assert.Equal(t, "danger", StoreRejected.Label().Severity)
	assert.Equal(t, StorePending.Label(), StoreStatus("garbage").Label())
}
