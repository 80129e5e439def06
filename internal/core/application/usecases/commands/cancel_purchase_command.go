package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrCancelPurchaseCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCancelPurchaseCommandIsNotConstructed = errors.New(
	"CancelPurchaseCommand must be created via NewCancelPurchaseCommand constructor",
)

// CancelPurchaseCommand represents a request to withdraw an order before it
// ships.
type CancelPurchaseCommand struct { //nolint:recvcheck //using for validation
	actorID    int64
	purchaseID int64

	guard guard.ConstructorGuard
}

// NewCancelPurchaseCommand creates a command to cancel the given order.
func NewCancelPurchaseCommand(actorID, purchaseID int64) (CancelPurchaseCommand, error) {
	cmd := CancelPurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setPurchaseID(purchaseID),
	); err != nil {
		return CancelPurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrCancelPurchaseCommandIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (c CancelPurchaseCommand) ActorID() int64 {
	return c.actorID
}

// PurchaseID returns the identifier of the targeted order.
func (c CancelPurchaseCommand) PurchaseID() int64 {
	return c.purchaseID
}

func (c *CancelPurchaseCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actor_id")
	}

	c.actorID = actorID
	return nil
}

func (c *CancelPurchaseCommand) setPurchaseID(purchaseID int64) error {
	if purchaseID <= 0 {
		return errs.NewValueIsRequiredError("purchase_id")
	}

	c.purchaseID = purchaseID
	return nil
}
