package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrAdvanceStatusCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand represents a request to move an order one step along
// the fulfillment pipeline. Arrival transitions carry the arrival photo
// reference.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	actorID      int64
	purchaseID   int64
	target       purchase.Status
	arrivalPhoto *kernel.ArtifactRef

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to advance the given order to the
// target status. Only the forward pipeline states are valid targets;
// cancellation is its own command.
func NewAdvanceStatusCommand(actorID, purchaseID int64, target purchase.Status, arrivalPhoto *kernel.ArtifactRef) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setPurchaseID(purchaseID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	cmd.arrivalPhoto = arrivalPhoto
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (c AdvanceStatusCommand) ActorID() int64 {
	return c.actorID
}

// PurchaseID returns the identifier of the targeted order.
func (c AdvanceStatusCommand) PurchaseID() int64 {
	return c.purchaseID
}

// Target returns the requested fulfillment status.
func (c AdvanceStatusCommand) Target() purchase.Status {
	return c.target
}

// ArrivalPhoto returns the arrival photo reference, or nil when the target is
// not Arrived.
func (c AdvanceStatusCommand) ArrivalPhoto() *kernel.ArtifactRef {
	return c.arrivalPhoto
}

func (c *AdvanceStatusCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actor_id")
	}

	c.actorID = actorID
	return nil
}

func (c *AdvanceStatusCommand) setPurchaseID(purchaseID int64) error {
	if purchaseID <= 0 {
		return errs.NewValueIsRequiredError("purchase_id")
	}

	c.purchaseID = purchaseID
	return nil
}

func (c *AdvanceStatusCommand) setTarget(target purchase.Status) error {
	switch target {
	case purchase.StatusPurchased, purchase.StatusShipped, purchase.StatusArrived:
		c.target = target
		return nil
	default:
		return errs.NewValueIsInvalidError("status")
	}
}
