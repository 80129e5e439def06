package purchase

import "procurement/internal/pkg/errs"

// ApprovalStatus represents the position of an order in the two-stage
// approval workflow. Like Status, it is a state machine driven by an
// explicit transition table.
//
// State transitions:
//
//	Pending Sublead Approval ──┬──> Pending Executive Approval ──> Fully Approved
//	                           │                  │
//	                           └──> Fully Approved│
//	                           │                  │
//	                           └───> Rejected <───┘
//
// An order that does not need executive approval skips the executive stage
// on sublead approval. Fully Approved and Rejected are terminal; Rejected
// is a one-way trapdoor that permanently blocks purchasing.
type ApprovalStatus int

const (
	// ApprovalUnknown represents an invalid or undefined approval status.
	ApprovalUnknown ApprovalStatus = iota

	// ApprovalPendingSublead is the initial stage: awaiting review by the
	// requester's subteam lead.
	ApprovalPendingSublead

	// ApprovalPendingExecutive means the sublead approved and the order
	// still needs executive sign-off.
	ApprovalPendingExecutive

	// ApprovalFullyApproved means every required stage signed off. Terminal.
	ApprovalFullyApproved

	// ApprovalRejected means an approver declined the order. Terminal.
	ApprovalRejected
)

func approvalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalUnknown:          "Unknown",
		ApprovalPendingSublead:   "Pending Sublead Approval",
		ApprovalPendingExecutive: "Pending Executive Approval",
		ApprovalFullyApproved:    "Fully Approved",
		ApprovalRejected:         "Rejected",
	}
}

// approvalTransitions is the single source of truth for legal approval
// moves: current stage -> set of stages reachable in one step.
func approvalTransitions() map[ApprovalStatus][]ApprovalStatus {
	return map[ApprovalStatus][]ApprovalStatus{
		ApprovalPendingSublead:   {ApprovalPendingExecutive, ApprovalFullyApproved, ApprovalRejected},
		ApprovalPendingExecutive: {ApprovalFullyApproved, ApprovalRejected},
		ApprovalFullyApproved:    {},
		ApprovalRejected:         {},
	}
}

// ApprovalStatusFromString parses an approval status from its display name.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, str := range approvalStatusStrings() {
		if str == s && status != ApprovalUnknown {
			return status, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidError("approval_status")
}

// Validate checks if the ApprovalStatus value is one of the defined stages.
func (s ApprovalStatus) Validate() error {
	if _, ok := approvalTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("approval_status")
	}
	return nil
}

// String returns the human-readable name of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := approvalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s ApprovalStatus) canTransitionTo(target ApprovalStatus) bool {
	for _, next := range approvalTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s ApprovalStatus) transitionTo(target ApprovalStatus) (ApprovalStatus, error) {
	if !s.canTransitionTo(target) {
		return ApprovalUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// ApproveBySublead applies a sublead approval. When the order needs
// executive approval, the stage advances to Pending Executive Approval;
// otherwise the executive stage is skipped and the order becomes Fully
// Approved.
//
// Returns an InvalidTransitionError unless the current stage is
// Pending Sublead Approval.
func (s ApprovalStatus) ApproveBySublead(needsExecutiveApproval bool) (ApprovalStatus, error) {
	if s != ApprovalPendingSublead {
		return ApprovalUnknown, errs.NewInvalidTransitionError(s.String(), ApprovalFullyApproved.String())
	}
	if needsExecutiveApproval {
		return s.transitionTo(ApprovalPendingExecutive)
	}
	return s.transitionTo(ApprovalFullyApproved)
}

// ApproveByExecutive applies an executive approval, moving the order to
// Fully Approved. Returns an InvalidTransitionError unless the current stage
// is Pending Executive Approval.
func (s ApprovalStatus) ApproveByExecutive() (ApprovalStatus, error) {
	if s != ApprovalPendingExecutive {
		return ApprovalUnknown, errs.NewInvalidTransitionError(s.String(), ApprovalFullyApproved.String())
	}
	return s.transitionTo(ApprovalFullyApproved)
}

// Reject declines the order from either pending stage. Returns an
// InvalidTransitionError if the stage is already terminal.
func (s ApprovalStatus) Reject() (ApprovalStatus, error) {
	return s.transitionTo(ApprovalRejected)
}

// IsPending reports whether the order still awaits an approval decision.
func (s ApprovalStatus) IsPending() bool {
	return s == ApprovalPendingSublead || s == ApprovalPendingExecutive
}

// IsTerminal reports whether no further approval transitions exist.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalFullyApproved || s == ApprovalRejected
}
