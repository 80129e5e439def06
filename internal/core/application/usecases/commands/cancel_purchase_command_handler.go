package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/services"
)

// CancelPurchaseCommandHandler handles order cancellation. The aggregate
// permits cancellation only before shipping and never for rejected orders.
type CancelPurchaseCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AuthorizationPolicy
}

// NewCancelPurchaseCommandHandler creates a handler for order cancellation.
func NewCancelPurchaseCommandHandler(uowFactory UoWFactory) CancelPurchaseCommandHandler {
	return CancelPurchaseCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle processes the cancellation command. Only the business role cancels
// orders.
func (h *CancelPurchaseCommandHandler) Handle(ctx context.Context, cmd CancelPurchaseCommand) error {
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

	if err = h.policy.Authorize(actor, services.ActionCancel); err != nil {
		return err
	}

	purchaseRepo := uow.PurchaseRepository()
	order, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	if err = order.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = purchaseRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
