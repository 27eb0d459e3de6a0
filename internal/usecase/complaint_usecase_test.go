package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/service"
)

func newComplaintFixture() (*ComplaintUseCase, *fakeComplaintRepo, *fakeOrderRepo) {
	complaintRepo := newFakeComplaintRepo()
	orderRepo := newFakeOrderRepo()
	policy := service.NewPolicy(testSuperEmail)
	return NewComplaintUseCase(complaintRepo, orderRepo, policy), complaintRepo, orderRepo
}

func TestCreateComplaint(t *testing.T) {
	uc, _, _ := newComplaintFixture()
	customer := &entity.User{ID: "cust-1", Role: entity.RoleCustomer}

	complaint, err := uc.CreateComplaint(context.Background(), customer, CreateComplaintInput{
		Subject: "Damaged item",
		Message: "The package arrived crushed",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintPending, complaint.Status)
	assert.Equal(t, customer.ID, complaint.CustomerID)
}

func TestCreateComplaintRejectsForeignOrder(t *testing.T) {
	uc, _, orderRepo := newComplaintFixture()
	ctx := context.Background()

	order := &entity.Order{CustomerID: "someone-else", Status: entity.OrderDelivered}
	require.NoError(t, orderRepo.Create(ctx, order))

	_, err := uc.CreateComplaint(ctx, &entity.User{ID: "cust-1", Role: entity.RoleCustomer}, CreateComplaintInput{
		Subject: "Wrong size",
		Message: "Ordered M, got XS",
		OrderID: order.ID,
	})
	assert.Error(t, err)
}

func TestRespondEmptyResponseKeepsPrevious(t *testing.T) {
	uc, complaintRepo, _ := newComplaintFixture()
	ctx := context.Background()
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}

	complaint := &entity.Complaint{CustomerID: "cust-1", Subject: "x", Message: "y", Status: entity.ComplaintPending}
	require.NoError(t, complaintRepo.Create(ctx, complaint))

	first, err := uc.Respond(ctx, admin, complaint.ID, RespondInput{
		Status:   entity.ComplaintInProgress,
		Response: "We are looking into it",
	})
	require.NoError(t, err)
	assert.Equal(t, "We are looking into it", first.AdminResponse)

	// A later status-only update must not wipe the response text.
	second, err := uc.Respond(ctx, admin, complaint.ID, RespondInput{
		Status: entity.ComplaintResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintResolved, second.Status)
	assert.Equal(t, "We are looking into it", second.AdminResponse)
}

func TestRespondRejectsIllegalTransition(t *testing.T) {
	uc, complaintRepo, _ := newComplaintFixture()
	ctx := context.Background()
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}

	complaint := &entity.Complaint{CustomerID: "cust-1", Status: entity.ComplaintClosed}
	require.NoError(t, complaintRepo.Create(ctx, complaint))

	_, err := uc.Respond(ctx, admin, complaint.ID, RespondInput{Status: entity.ComplaintPending})
	assert.Error(t, err)
}

func TestRespondForbiddenForViewer(t *testing.T) {
	uc, complaintRepo, _ := newComplaintFixture()
	ctx := context.Background()

	complaint := &entity.Complaint{CustomerID: "cust-1", Status: entity.ComplaintPending}
	require.NoError(t, complaintRepo.Create(ctx, complaint))

	_, err := uc.Respond(ctx, &entity.User{ID: "v1", Role: entity.RoleViewer}, complaint.ID, RespondInput{
		Status: entity.ComplaintResolved,
	})
	assert.Error(t, err)
}

func TestListComplaintsScoping(t *testing.T) {
	uc, complaintRepo, _ := newComplaintFixture()
	ctx := context.Background()

	require.NoError(t, complaintRepo.Create(ctx, &entity.Complaint{CustomerID: "cust-1", Status: entity.ComplaintPending}))
	require.NoError(t, complaintRepo.Create(ctx, &entity.Complaint{CustomerID: "cust-2", Status: entity.ComplaintPending}))

	mine, total, err := uc.ListComplaints(ctx, &entity.User{ID: "cust-1", Role: entity.RoleCustomer}, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, mine, 1)

	all, total, err := uc.ListComplaints(ctx, &entity.User{ID: "v1", Role: entity.RoleViewer}, 20, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}
