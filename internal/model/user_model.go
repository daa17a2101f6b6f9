package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	DisplayName  *string   `gorm:"type:varchar(255)"`
	Gender       *string   `gorm:"type:varchar(20)"`
	MobileNumber *string   `gorm:"type:varchar(20)"`
	Email        *string   `gorm:"type:varchar(255)"`
	College      *string   `gorm:"type:varchar(255)"`
	EnrollmentId *string   `gorm:"type:varchar(50)"`
	Bio          *string   `gorm:"type:text"`
	AvatarURL    *string   `gorm:"type:text"`
	IsCreator    bool      `gorm:"default:false"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
