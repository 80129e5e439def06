package user

import (
	"errors"
	"strings"
	"time"

	"procurement/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// Snapshot is the persisted state of a user account.
type Snapshot struct {
	ID        int64
	Email     string
	FullName  string
	Role      Role
	IsActive  bool
	CreatedAt time.Time
}

// User is a team member acting on purchase orders. Accounts are provisioned
// by an administrator; this service reads them to identify actors and resolve
// their role.
type User struct {
	id        int64
	email     string
	fullName  string
	role      Role
	isActive  bool
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a new active account with the given role.
func NewUser(email, fullName string, role Role, now time.Time) (*User, error) {
	u := &User{
		isActive:      true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setEmail(email),
		u.setFullName(fullName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rehydrates a user from its persisted snapshot.
func RestoreUser(s Snapshot) (*User, error) {
	if err := s.Role.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            s.ID,
		email:         s.Email,
		fullName:      s.FullName,
		role:          s.Role,
		isActive:      s.IsActive,
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Snapshot returns the persisted state of the user.
func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:        u.id,
		Email:     u.email,
		FullName:  u.fullName,
		Role:      u.role,
		IsActive:  u.isActive,
		CreatedAt: u.createdAt,
	}
}

// ID returns the user's identifier, or 0 before first persistence.
func (u *User) ID() int64 { return u.id }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// FullName returns the user's display name.
func (u *User) FullName() string { return u.fullName }

// Role returns the user's workflow role.
func (u *User) Role() Role { return u.role }

// IsActive reports whether the account may act on orders.
func (u *User) IsActive() bool { return u.isActive }

// CreatedAt returns when the account was provisioned.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// MarkPersisted records the identifier assigned by storage. The identifier,
// once set, cannot change.
func (u *User) MarkPersisted(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if u.id != 0 && u.id != id {
		return errors.New("user ID is immutable once assigned")
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("full_name")
	}
	u.fullName = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
