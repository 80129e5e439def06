package purchase

import "procurement/internal/pkg/errs"

// Urgency classifies how an order was flagged by its requester. It feeds
// the derived needs-executive-approval rule: special/large orders always
// require executive sign-off.
type Urgency int

const (
	// UrgencyUnknown represents an invalid or undefined urgency.
	UrgencyUnknown Urgency = iota

	// UrgencyNeither is the default: not urgent, not special/large.
	UrgencyNeither

	// UrgencyUrgent flags the order for fast handling.
	UrgencyUrgent

	// UrgencySpecialLarge flags an unusual or oversized order.
	UrgencySpecialLarge

	// UrgencyBoth flags the order as both urgent and special/large.
	UrgencyBoth
)

func urgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyUnknown:      "Unknown",
		UrgencyNeither:      "Neither",
		UrgencyUrgent:       "Urgent",
		UrgencySpecialLarge: "Special/Large",
		UrgencyBoth:         "Both",
	}
}

func validUrgencies() map[Urgency]string {
	//nolint:exhaustive // UrgencyUnknown is intentionally excluded as it's invalid
	return map[Urgency]string{
		UrgencyNeither:      "Neither",
		UrgencyUrgent:       "Urgent",
		UrgencySpecialLarge: "Special/Large",
		UrgencyBoth:         "Both",
	}
}

// UrgencyFromString parses an urgency from its display name. The empty
// string maps to UrgencyNeither, matching the submission form default.
func UrgencyFromString(s string) (Urgency, error) {
	if s == "" {
		return UrgencyNeither, nil
	}
	for urgency, str := range validUrgencies() {
		if str == s {
			return urgency, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidError("urgency")
}

// Validate checks if the Urgency value is one of the defined levels.
func (u Urgency) Validate() error {
	if _, ok := validUrgencies()[u]; !ok {
		return errs.NewValueIsInvalidError("urgency")
	}
	return nil
}

// String returns the human-readable name of the urgency level.
func (u Urgency) String() string {
	if str, ok := urgencyStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// IsUrgent reports whether the order was flagged urgent.
func (u Urgency) IsUrgent() bool {
	return u == UrgencyUrgent || u == UrgencyBoth
}

// IsSpecialLarge reports whether the order was flagged special/large.
func (u Urgency) IsSpecialLarge() bool {
	return u == UrgencySpecialLarge || u == UrgencyBoth
}
