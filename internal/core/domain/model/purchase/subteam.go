package purchase

import (
	"fmt"
	"slices"

	"procurement/internal/pkg/errs"
)

// Subteams returns the subteams an order may be filed under.
func Subteams() []string {
	return []string{
		"MechE Structures",
		"Electrical",
		"Software",
		"Business",
		"Aerodynamics",
		"Powertrain",
		"Suspension",
		"Other",
	}
}

// subprojectOptions maps each subteam to its allowed subprojects. Subteams
// absent from the map take no subproject.
func subprojectOptions() map[string][]string {
	return map[string][]string{
		"MechE Structures": {"Chassis", "Body/Aero", "Manufacturing", "Testing", "Other"},
		"Electrical":       {"PCB Design", "Wiring Harness", "Sensors", "Power Systems", "Testing Equipment", "Other"},
		"Software":         {"Data Acquisition", "Controls", "Simulation", "Tools", "Other"},
		"Aerodynamics":     {"Wind Tunnel", "CFD", "Manufacturing", "Testing", "Other"},
		"Powertrain":       {"Engine", "Drivetrain", "Cooling", "Fuel System", "Other"},
		"Suspension":       {"Design", "Manufacturing", "Testing", "Other"},
	}
}

// SubprojectsFor returns the allowed subprojects of a subteam, or an empty
// slice when the subteam takes none.
func SubprojectsFor(subteam string) []string {
	return slices.Clone(subprojectOptions()[subteam])
}

// ValidateSubteam checks that subteam is a known subteam and, when a
// subproject is given, that it belongs to the subteam's allowed set.
func ValidateSubteam(subteam, subproject string) error {
	if subteam == "" {
		return errs.NewValueIsRequiredError("subteam")
	}
	if !slices.Contains(Subteams(), subteam) {
		return errs.NewValueIsInvalidErrorWithCause(
			"subteam",
			fmt.Errorf("%q is not a known subteam", subteam),
		)
	}
	if subproject == "" {
		return nil
	}
	if !slices.Contains(subprojectOptions()[subteam], subproject) {
		return errs.NewValueIsInvalidErrorWithCause(
			"subproject",
			fmt.Errorf("%q is not a subproject of %q", subproject, subteam),
		)
	}
	return nil
}
