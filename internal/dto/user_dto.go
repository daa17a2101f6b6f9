package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	MobileNumber string    `json:"mobile_number,omitempty"`
	Email        string    `json:"email,omitempty"`
	College      string    `json:"college,omitempty"`
	EnrollmentId string    `json:"enrollment_id,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Pointer fields so absent keys leave the stored value untouched.
type UpdateProfileRequest struct {
	DisplayName  *string `json:"display_name" validate:"omitempty,max=255"`
	Gender       *string `json:"gender" validate:"omitempty,max=20"`
	MobileNumber *string `json:"mobile_number" validate:"omitempty,max=20"`
	Email        *string `json:"email" validate:"omitempty,email"`
	College      *string `json:"college" validate:"omitempty,max=255"`
	EnrollmentId *string `json:"enrollment_id" validate:"omitempty,max=50"`
	Bio          *string `json:"bio"`
	AvatarURL    *string `json:"avatar_url"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}
