package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Device is a registered smart plug or meter owned by a single user.
type Device struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OwnerID   uint           `json:"ownerId" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"not null"`
	IPAddress string         `json:"ipAddress"`
	// Device-reported state (power, wattage, ...); schema is owned by the device firmware.
	Status    datatypes.JSON `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
