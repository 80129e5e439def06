package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/services"
)

// AdvanceStatusCommandHandler handles fulfillment pipeline transitions:
// marking orders purchased, shipped, and arrived. The aggregate enforces the
// transition table, the approval prerequisite for purchasing, and the arrival
// photo requirement.
type AdvanceStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AuthorizationPolicy
}

// NewAdvanceStatusCommandHandler creates a handler for pipeline transitions.
func NewAdvanceStatusCommandHandler(uowFactory UoWFactory) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle processes the transition command. Only the business role advances
// fulfillment status.
func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
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

	if err = h.policy.Authorize(actor, services.ActionAdvanceStatus); err != nil {
		return err
	}

	purchaseRepo := uow.PurchaseRepository()
	order, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch cmd.Target() {
	case purchase.StatusPurchased:
		err = order.MarkPurchased(now)
	case purchase.StatusShipped:
		err = order.MarkShipped(now)
	case purchase.StatusArrived:
		err = order.MarkArrived(cmd.ArrivalPhoto(), now)
	}
	if err != nil {
		return err
	}

	if err = purchaseRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
