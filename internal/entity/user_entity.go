package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleCreator UserRole = "creator"
)

type User struct {
	Id           uuid.UUID
	Username     string
	PasswordHash string
	DisplayName  *string
	Gender       *string
	MobileNumber *string
	Email        *string
	College      *string
	EnrollmentId *string
	Bio          *string
	AvatarURL    *string
	IsCreator    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) Role() UserRole {
	if u.IsCreator {
		return UserRoleCreator
	}
	return UserRoleStudent
}
