package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/services"
)

// ApprovePurchaseCommandHandler handles approval decisions. The decision is
// applied to the order's current stage: a sublead-stage approval either
// completes the workflow or forwards the order to the executive stage,
// depending on the configured threshold and the special/large flag.
type ApprovePurchaseCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AuthorizationPolicy
	threshold  kernel.Money
}

// NewApprovePurchaseCommandHandler creates a handler for approval decisions.
// The threshold is the price above which orders require executive approval.
func NewApprovePurchaseCommandHandler(uowFactory UoWFactory, threshold kernel.Money) ApprovePurchaseCommandHandler {
	return ApprovePurchaseCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
		threshold:  threshold,
	}
}

// Handle processes the approval command. The actor must hold the approve
// capability, may not approve their own order, and a sublead may only decide
// orders at the sublead stage.
func (h *ApprovePurchaseCommandHandler) Handle(ctx context.Context, cmd ApprovePurchaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	purchaseRepo := uow.PurchaseRepository()
	order, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeDecision(actor, order, services.ActionApprove); err != nil {
		return err
	}

	now := time.Now().UTC()
	switch order.ApprovalStatus() {
	case purchase.ApprovalPendingSublead:
		err = order.ApproveBySublead(actor.Email(), h.threshold, now)
	default:
		err = order.ApproveByExecutive(actor.Email(), now)
	}
	if err != nil {
		return err
	}

	if err = purchaseRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
