package repository

import (
	"context"
	"errors"

	"github.com/voltlab/device-hub/internal/domain"
)

// ErrNotFound is returned by lookups that matched no row, regardless of
// backing store.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	// GetByName matches the name case-insensitively.
	GetByName(ctx context.Context, name string) (*domain.User, error)
	// GetByToken resolves the user whose active session token equals token.
	GetByToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, user *domain.User) error
	// Exists reports whether a user with the given name exists, matched
	// case-insensitively.
	Exists(ctx context.Context, name string) (bool, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, device *domain.Device) error
	GetByID(ctx context.Context, id uint) (*domain.Device, error)
	GetByOwner(ctx context.Context, ownerID uint) ([]*domain.Device, error)
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, device *domain.Device) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	// GetByDevice returns events newest first.
	GetByDevice(ctx context.Context, deviceID uint, limit int) ([]*domain.Event, error)
}

type Repositories struct {
	User   UserRepository
	Device DeviceRepository
	Event  EventRepository
}
