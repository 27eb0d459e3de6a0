package usecase

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/domain/service"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
	orderRepo     repository.OrderRepository
	policy        *service.Policy
}

func NewComplaintUseCase(
	complaintRepo repository.ComplaintRepository,
	orderRepo repository.OrderRepository,
	policy *service.Policy,
) *ComplaintUseCase {
	return &ComplaintUseCase{
		complaintRepo: complaintRepo,
		orderRepo:     orderRepo,
		policy:        policy,
	}
}

type CreateComplaintInput struct {
	Subject string
	Message string
	OrderID string
	Images  []string
}

func (uc *ComplaintUseCase) CreateComplaint(ctx context.Context, customer *entity.User, input CreateComplaintInput) (*entity.Complaint, error) {
	if input.OrderID != "" {
		order, err := uc.orderRepo.GetByID(ctx, input.OrderID)
		if err != nil {
			return nil, errors.BadRequest("Referenced order not found", err)
		}
		if order.CustomerID != customer.ID {
			return nil, errors.Forbidden("You can only reference your own orders", nil)
		}
	}

	complaint := &entity.Complaint{
		CustomerID: customer.ID,
		Subject:    input.Subject,
		Message:    input.Message,
		OrderID:    input.OrderID,
		Images:     input.Images,
		Status:     entity.ComplaintPending,
	}

	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

// ListComplaints returns the caller's own complaints, or every complaint
// for admin and viewer accounts.
func (uc *ComplaintUseCase) ListComplaints(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.Complaint, int64, error) {
	if uc.policy.CanViewAdminData(actor) {
		return uc.complaintRepo.List(ctx, limit, offset)
	}
	return uc.complaintRepo.ListByCustomerID(ctx, actor.ID, limit, offset)
}

type RespondInput struct {
	Status   entity.ComplaintStatus
	Response string
}

// Respond updates a complaint's status and optionally its admin response.
// An empty response keeps the previous one; that is the contract, not an
// oversight.
func (uc *ComplaintUseCase) Respond(ctx context.Context, actor *entity.User, complaintID string, input RespondInput) (*entity.Complaint, error) {
	if !uc.policy.CanRespondToComplaint(actor) {
		return nil, errors.Forbidden("Only admins can respond to complaints", nil)
	}

	complaint, err := uc.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if !entity.ValidComplaintStatus(input.Status) {
		return nil, errors.BadRequest("Invalid complaint status", nil)
	}
	if input.Status != complaint.Status && !complaint.Status.CanTransition(input.Status) {
		return nil, errors.BadRequest("Illegal status transition", nil)
	}

	complaint.Status = input.Status
	if input.Response != "" {
		complaint.AdminResponse = input.Response
	}

	if err := uc.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

func (uc *ComplaintUseCase) DeleteComplaint(ctx context.Context, actor *entity.User, complaintID string) error {
	if !uc.policy.CanRespondToComplaint(actor) {
		return errors.Forbidden("Only admins can delete complaints", nil)
	}

	if _, err := uc.complaintRepo.GetByID(ctx, complaintID); err != nil {
		return err
	}

	return uc.complaintRepo.Delete(ctx, complaintID)
}
