package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/services"
)

// RestorePurchaseCommandHandler handles restoring soft-deleted orders. The
// order returns with its approval and fulfillment state exactly as it was.
// Restoring a live order succeeds without effect.
type RestorePurchaseCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AuthorizationPolicy
}

// NewRestorePurchaseCommandHandler creates a handler for restoring orders.
func NewRestorePurchaseCommandHandler(uowFactory UoWFactory) RestorePurchaseCommandHandler {
	return RestorePurchaseCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle processes the restore command. Only the business role restores
// orders.
func (h *RestorePurchaseCommandHandler) Handle(ctx context.Context, cmd RestorePurchaseCommand) error {
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

	if err = h.policy.Authorize(actor, services.ActionRestore); err != nil {
		return err
	}

	purchaseRepo := uow.PurchaseRepository()
	order, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	if !order.IsDeleted() {
		return uow.Commit(ctx)
	}

	order.RestoreFromDelete(time.Now().UTC())

	if err = purchaseRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
