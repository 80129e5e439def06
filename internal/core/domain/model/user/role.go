package user

import "procurement/internal/pkg/errs"

// Role is a team member's position in the procurement workflow. Exactly one
// role per user; what each role may do is decided by the authorization policy
// in the services layer.
type Role int

const (
	RoleUnknown Role = iota
	RoleRequester
	RoleSublead
	RoleExecutive
	RoleBusiness
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleRequester: "requester",
		RoleSublead:   "sublead",
		RoleExecutive: "executive",
		RoleBusiness:  "business",
	}
}

// RoleFromString parses a stored role name.
func RoleFromString(s string) (Role, error) {
	for role, name := range roleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// Validate checks the role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the stored name of the role, or "unknown".
func (r Role) String() string {
	if name, ok := roleStrings()[r]; ok {
		return name
	}
	return "unknown"
}
