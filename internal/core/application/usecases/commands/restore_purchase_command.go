package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrRestorePurchaseCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrRestorePurchaseCommandIsNotConstructed = errors.New(
	"RestorePurchaseCommand must be created via NewRestorePurchaseCommand constructor",
)

// RestorePurchaseCommand represents a request to bring a soft-deleted order
// back into view.
type RestorePurchaseCommand struct { //nolint:recvcheck //using for validation
	actorID    int64
	purchaseID int64

	guard guard.ConstructorGuard
}

// NewRestorePurchaseCommand creates a command to restore the given order.
func NewRestorePurchaseCommand(actorID, purchaseID int64) (RestorePurchaseCommand, error) {
	cmd := RestorePurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setPurchaseID(purchaseID),
	); err != nil {
		return RestorePurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestorePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrRestorePurchaseCommandIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (c RestorePurchaseCommand) ActorID() int64 {
	return c.actorID
}

// PurchaseID returns the identifier of the targeted order.
func (c RestorePurchaseCommand) PurchaseID() int64 {
	return c.purchaseID
}

func (c *RestorePurchaseCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actor_id")
	}

	c.actorID = actorID
	return nil
}

func (c *RestorePurchaseCommand) setPurchaseID(purchaseID int64) error {
	if purchaseID <= 0 {
		return errs.NewValueIsRequiredError("purchase_id")
	}

	c.purchaseID = purchaseID
	return nil
}
