package commands

import (
	"errors"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrDeletePurchaseCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrDeletePurchaseCommandIsNotConstructed = errors.New(
	"DeletePurchaseCommand must be created via NewDeletePurchaseCommand constructor",
)

// DeletePurchaseCommand represents a request to soft-delete an order, hiding
// it from default listings without destroying its state.
type DeletePurchaseCommand struct { //nolint:recvcheck //using for validation
	actorID    int64
	purchaseID int64

	guard guard.ConstructorGuard
}

// NewDeletePurchaseCommand creates a command to soft-delete the given order.
func NewDeletePurchaseCommand(actorID, purchaseID int64) (DeletePurchaseCommand, error) {
	cmd := DeletePurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setPurchaseID(purchaseID),
	); err != nil {
		return DeletePurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrDeletePurchaseCommandIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (c DeletePurchaseCommand) ActorID() int64 {
	return c.actorID
}

// PurchaseID returns the identifier of the targeted order.
func (c DeletePurchaseCommand) PurchaseID() int64 {
	return c.purchaseID
}

func (c *DeletePurchaseCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actor_id")
	}

	c.actorID = actorID
	return nil
}

func (c *DeletePurchaseCommand) setPurchaseID(purchaseID int64) error {
	if purchaseID <= 0 {
		return errs.NewValueIsRequiredError("purchase_id")
	}

	c.purchaseID = purchaseID
	return nil
}
