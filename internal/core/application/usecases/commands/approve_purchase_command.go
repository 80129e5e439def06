package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrApprovePurchaseCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrApprovePurchaseCommandIsNotConstructed = errors.New(
	"ApprovePurchaseCommand must be created via NewApprovePurchaseCommand constructor",
)

// ApprovePurchaseCommand represents an approval decision on a pending order.
// The decision applies to whichever approval stage the order is currently in.
type ApprovePurchaseCommand struct { //nolint:recvcheck //using for validation
	actorID    int64
	purchaseID int64

	guard guard.ConstructorGuard
}

// NewApprovePurchaseCommand creates a command to approve the given order.
func NewApprovePurchaseCommand(actorID, purchaseID int64) (ApprovePurchaseCommand, error) {
	cmd := ApprovePurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setPurchaseID(purchaseID),
	); err != nil {
		return ApprovePurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrApprovePurchaseCommandIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (c ApprovePurchaseCommand) ActorID() int64 {
	return c.actorID
}

// PurchaseID returns the identifier of the targeted order.
func (c ApprovePurchaseCommand) PurchaseID() int64 {
	return c.purchaseID
}

func (c *ApprovePurchaseCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actor_id")
	}

	c.actorID = actorID
	return nil
}

func (c *ApprovePurchaseCommand) setPurchaseID(purchaseID int64) error {
	if purchaseID <= 0 {
		return errs.NewValueIsRequiredError("purchase_id")
	}

	c.purchaseID = purchaseID
	return nil
}
