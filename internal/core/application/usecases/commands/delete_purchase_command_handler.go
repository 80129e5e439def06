package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/services"
)

// DeletePurchaseCommandHandler handles soft deletion. Deleting an already
// deleted order succeeds without effect.
type DeletePurchaseCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AuthorizationPolicy
}

// NewDeletePurchaseCommandHandler creates a handler for soft deletion.
func NewDeletePurchaseCommandHandler(uowFactory UoWFactory) DeletePurchaseCommandHandler {
	return DeletePurchaseCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle processes the deletion command. Only the business role deletes
// orders.
func (h *DeletePurchaseCommandHandler) Handle(ctx context.Context, cmd DeletePurchaseCommand) error {
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

	if err = h.policy.Authorize(actor, services.ActionDelete); err != nil {
		return err
	}

	purchaseRepo := uow.PurchaseRepository()
	order, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	if order.IsDeleted() {
		return uow.Commit(ctx)
	}

	order.SoftDelete(time.Now().UTC())

	if err = purchaseRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
