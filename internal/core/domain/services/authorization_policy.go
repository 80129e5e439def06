package services

import (
	"procurement/internal/core/domain/model/purchase"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"
)

// Action is an operation an actor may attempt against purchase orders.
type Action int

const (
	ActionCreate Action = iota
	ActionViewOwn
	ActionViewAll
	ActionApprove
	ActionReject
	ActionAdvanceStatus
	ActionCancel
	ActionDelete
	ActionRestore
)

func actionStrings() map[Action]string {
	return map[Action]string{
		ActionCreate:        "create orders",
		ActionViewOwn:       "view own orders",
		ActionViewAll:       "view all orders",
		ActionApprove:       "approve orders",
		ActionReject:        "reject orders",
		ActionAdvanceStatus: "advance order status",
		ActionCancel:        "cancel orders",
		ActionDelete:        "delete orders",
		ActionRestore:       "restore orders",
	}
}

// String returns a human-readable name for the action, used in denial messages.
func (a Action) String() string {
	if name, ok := actionStrings()[a]; ok {
		return name
	}
	return "unknown action"
}

// AuthorizationPolicy is a domain service deciding whether an actor may
// perform an action, given their role and the order's current state.
//
// The capability table:
//   - every role creates orders and views its own
//   - subleads decide approvals at the sublead stage and additionally see
//     orders awaiting that decision; they do not hold view-all
//   - executives decide at any pending stage and view everything
//   - the business role views everything, advances fulfillment status,
//     cancels, deletes, and restores orders
//   - nobody approves or rejects their own order
//
// A denial is a policy outcome: the actor's role does not grant the action,
// or the action targets the actor's own order where that is forbidden.
// Whether the order's state machine permits the change is decided separately
// by the aggregate.
type AuthorizationPolicy struct{}

// NewAuthorizationPolicy creates a new AuthorizationPolicy instance.
func NewAuthorizationPolicy() AuthorizationPolicy {
	return AuthorizationPolicy{}
}

func capabilities() map[user.Role]map[Action]bool {
	viewer := map[Action]bool{
		ActionCreate:  true,
		ActionViewOwn: true,
	}

	sublead := map[Action]bool{
		ActionCreate:  true,
		ActionViewOwn: true,
		ActionApprove: true,
		ActionReject:  true,
	}

	executive := map[Action]bool{
		ActionCreate:  true,
		ActionViewOwn: true,
		ActionViewAll: true,
		ActionApprove: true,
		ActionReject:  true,
	}

	business := map[Action]bool{
		ActionCreate:        true,
		ActionViewOwn:       true,
		ActionViewAll:       true,
		ActionAdvanceStatus: true,
		ActionCancel:        true,
		ActionDelete:        true,
		ActionRestore:       true,
	}

	return map[user.Role]map[Action]bool{
		user.RoleRequester: viewer,
		user.RoleSublead:   sublead,
		user.RoleExecutive: executive,
		user.RoleBusiness:  business,
	}
}

// Allows reports whether the role holds the capability for the action,
// ignoring any target order.
func (p AuthorizationPolicy) Allows(role user.Role, action Action) bool {
	return capabilities()[role][action]
}

// Authorize checks the actor's capability for an action with no specific
// target, such as creating an order or listing everything.
func (p AuthorizationPolicy) Authorize(actor *user.User, action Action) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsActive() || !p.Allows(actor.Role(), action) {
		return errs.NewAuthorizationDeniedError(actor.Role().String(), action.String())
	}
	return nil
}

// AuthorizeView checks whether the actor may read the given order. Roles with
// the view-all capability see every order; requesters see only their own.
// Subleads additionally see orders awaiting the sublead decision.
func (p AuthorizationPolicy) AuthorizeView(actor *user.User, target *purchase.Purchase) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if p.Allows(actor.Role(), ActionViewAll) && actor.IsActive() {
		return nil
	}
	if p.Allows(actor.Role(), ActionViewOwn) && actor.IsActive() && target.RequesterID() == actor.ID() {
		return nil
	}
	if p.Allows(actor.Role(), ActionApprove) && actor.IsActive() &&
		target.ApprovalStatus() == purchase.ApprovalPendingSublead {
		return nil
	}
	return errs.NewAuthorizationDeniedError(actor.Role().String(), ActionViewAll.String())
}

// AuthorizeDecision checks whether the actor may approve or reject the given
// order. Beyond the capability, a sublead may only decide orders at the
// sublead stage, and no actor decides their own order.
func (p AuthorizationPolicy) AuthorizeDecision(actor *user.User, target *purchase.Purchase, action Action) error {
	if err := p.Authorize(actor, action); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target.RequesterID() == actor.ID() {
		return errs.NewAuthorizationDeniedError(actor.Role().String(), "decide their own order")
	}

	if actor.Role() == user.RoleSublead && target.ApprovalStatus() != purchase.ApprovalPendingSublead {
		return errs.NewAuthorizationDeniedError(actor.Role().String(), action.String())
	}
	return nil
}
