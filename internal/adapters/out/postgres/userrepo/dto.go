// Package userrepo provides data transfer objects and mapping functions for
// user account persistence. Accounts are provisioned out of band; the service
// reads them to resolve actors.
package userrepo

import (
	"time"

	"procurement/internal/core/domain/model/user"
)

// UserDTO represents the database structure for user accounts.
type UserDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"uniqueIndex;not null"`
	FullName  string `gorm:"not null"`
	Role      string `gorm:"not null"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// FromDomain converts a user entity to its database representation.
// Exported so seeding code can build rows from domain users.
func FromDomain(u *user.User) UserDTO {
	s := u.Snapshot()
	return UserDTO{
		ID:        s.ID,
		Email:     s.Email,
		FullName:  s.FullName,
		Role:      s.Role.String(),
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

// toDomain converts a database DTO to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(user.Snapshot{
		ID:        dto.ID,
		Email:     dto.Email,
		FullName:  dto.FullName,
		Role:      role,
		IsActive:  dto.IsActive,
		CreatedAt: dto.CreatedAt,
	})
}
