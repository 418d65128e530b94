// Package model holds the GORM persistence models. They mirror the tables created by the
// embedded migrations and never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100);not null"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"`
	Role             string    `gorm:"type:varchar(32);not null"`
	IsVerified       bool      `gorm:"not null;default:false"`
	ConfirmationCode *string   `gorm:"type:varchar(16)"`
	CodeSentAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
