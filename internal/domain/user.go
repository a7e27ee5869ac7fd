package domain

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null"`
	// nil means no active session; at most one token is live per user.
	SessionToken  *string   `json:"-" gorm:"index"`
	LastLoginDate time.Time `json:"lastLoginDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Devices []Device `json:"-" gorm:"foreignKey:OwnerID"`
}
