package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/services"
)

// RejectPurchaseCommandHandler handles rejection decisions. Rejection is
// terminal: the order keeps its fulfillment status but can never be
// purchased.
type RejectPurchaseCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AuthorizationPolicy
}

// NewRejectPurchaseCommandHandler creates a handler for rejection decisions.
func NewRejectPurchaseCommandHandler(uowFactory UoWFactory) RejectPurchaseCommandHandler {
	return RejectPurchaseCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle processes the rejection command under the same authorization rules
// as approval: the reject capability, no self-decision, and stage-restricted
// subleads.
func (h *RejectPurchaseCommandHandler) Handle(ctx context.Context, cmd RejectPurchaseCommand) error {
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

	if err = h.policy.AuthorizeDecision(actor, order, services.ActionReject); err != nil {
		return err
	}

	if err = order.Reject(cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = purchaseRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
