package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event records something a device reported or did (power on, overload, ...).
type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID    uint      `json:"deviceId" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" gorm:"index"`
}
