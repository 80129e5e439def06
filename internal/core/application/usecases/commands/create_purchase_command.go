package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

// ErrCreatePurchaseCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrCreatePurchaseCommandIsNotConstructed = errors.New(
	"CreatePurchaseCommand must be created via NewCreatePurchaseCommand constructor",
)

// CreatePurchaseCommand represents a request to submit a new purchase order.
// The acting user becomes the order's requester.
type CreatePurchaseCommand struct { //nolint:recvcheck //using for validation
	actorID int64
	draft   purchase.Draft

	guard guard.ConstructorGuard
}

// NewCreatePurchaseCommand creates a command to submit a new order. The
// draft's RequesterID is overwritten with the actor's identifier; deep field
// validation happens in the aggregate.
func NewCreatePurchaseCommand(actorID int64, draft purchase.Draft) (CreatePurchaseCommand, error) {
	cmd := CreatePurchaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setDraft(draft),
	); err != nil {
		return CreatePurchaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseCommandIsNotConstructed)
}

// ActorID returns the identifier of the acting user.
func (c CreatePurchaseCommand) ActorID() int64 {
	return c.actorID
}

// Draft returns the requester-supplied order fields.
func (c CreatePurchaseCommand) Draft() purchase.Draft {
	return c.draft
}

func (c *CreatePurchaseCommand) setActorID(actorID int64) error {
	if actorID <= 0 {
		return errs.NewValueIsRequiredError("actor_id")
	}

	c.actorID = actorID
	return nil
}

func (c *CreatePurchaseCommand) setDraft(draft purchase.Draft) error {
	if strings.TrimSpace(draft.ItemName) == "" {
		return errs.NewValueIsRequiredError("item_name")
	}

	draft.RequesterID = c.actorID
	c.draft = draft
	return nil
}
