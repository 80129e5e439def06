package commands

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/services"
)

// CreatePurchaseCommandHandler handles the business logic for order
// submission. New orders start at Not Yet Purchased / Pending Sublead
// Approval with server-set timestamps.
type CreatePurchaseCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AuthorizationPolicy
}

// NewCreatePurchaseCommandHandler creates a handler for order submission.
func NewCreatePurchaseCommandHandler(uowFactory UoWFactory) CreatePurchaseCommandHandler {
	return CreatePurchaseCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle processes the submission command and returns the persisted order.
// The actor must exist, be active, and hold the create capability.
func (h *CreatePurchaseCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) (*purchase.Purchase, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.Authorize(actor, services.ActionCreate); err != nil {
		return nil, err
	}

	draft := cmd.Draft()
	draft.RequesterID = actor.ID()

	order, err := purchase.NewPurchase(draft, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.PurchaseRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
