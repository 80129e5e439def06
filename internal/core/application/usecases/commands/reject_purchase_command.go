package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrRejectPurchaseCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrRejectPurchaseCommandIsNotConstructed = errors.New(
	"RejectPurchaseCommand must be created via NewRejectPurchaseCommand constructor",
)

// RejectPurchaseCommand represents a rejection decision on a pending order.
// An optional reason is recorded in the order's notes.
type RejectPurchaseCommand struct { //nolint:recvcheck //using for validation
	actorID    int64
	purchaseID int64
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectPurchaseCommand creates a command to reject the given order.
// The reason may be empty.
func NewRejectPurchaseCommand(actorID, purchaseID int64, reason string) (RejectPurchaseCommand, error) {
	cmd := RejectPurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setPurchaseID(purchaseID),
	); err != nil {
		return RejectPurchaseCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrRejectPurchaseCommandIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (c RejectPurchaseCommand) ActorID() int64 {
	return c.actorID
}

// PurchaseID returns the identifier of the targeted order.
func (c RejectPurchaseCommand) PurchaseID() int64 {
	return c.purchaseID
}

// Reason returns the optional rejection reason.
func (c RejectPurchaseCommand) Reason() string {
	return c.reason
}

func (c *RejectPurchaseCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actor_id")
	}

	c.actorID = actorID
	return nil
}

func (c *RejectPurchaseCommand) setPurchaseID(purchaseID int64) error {
	if purchaseID <= 0 {
		return errs.NewValueIsRequiredError("purchase_id")
	}

	c.purchaseID = purchaseID
	return nil
}
