package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/voltlab/device-hub/internal/domain"
	"github.com/voltlab/device-hub/internal/repository"
	"gorm.io/datatypes"
)

var (
	ErrDeviceNotFound     = errors.New("device not found")
	ErrDeviceAccessDenied = errors.New("device belongs to another user")
)

// EventPublisher receives device events as they are recorded, for fan-out to
// live subscribers. The websocket hub implements it.
type EventPublisher interface {
	PublishEvent(ownerID uint, event *domain.Event)
}

type DeviceService struct {
	deviceRepo repository.DeviceRepository
	eventRepo  repository.EventRepository
	publisher  EventPublisher
}

func NewDeviceService(deviceRepo repository.DeviceRepository, eventRepo repository.EventRepository, publisher EventPublisher) *DeviceService {
	return &DeviceService{
		deviceRepo: deviceRepo,
		eventRepo:  eventRepo,
		publisher:  publisher,
	}
}

func (s *DeviceService) Register(ctx context.Context, owner *domain.User, name, ipAddress string, status datatypes.JSON) (*domain.Device, error) {
	device := &domain.Device{
		OwnerID:   owner.ID,
		Name:      name,
		IPAddress: ipAddress,
		Status:    status,
	}
	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, persistence(err)
	}
	return device, nil
}

// Get loads a device, enforcing that it belongs to the caller. Admins may
// read any device.
func (s *DeviceService) Get(ctx context.Context, caller *domain.User, id uint) (*domain.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDeviceNotFound
		}
		return nil, persistence(err)
	}
	if device.OwnerID != caller.ID && caller.Role != domain.RoleAdmin {
		return nil, ErrDeviceAccessDenied
	}
	return device, nil
}

func (s *DeviceService) List(ctx context.Context, owner *domain.User) ([]*domain.Device, error) {
	devices, err := s.deviceRepo.GetByOwner(ctx, owner.ID)
	if err != nil {
		return nil, persistence(err)
	}
	return devices, nil
}

// UpdateStatus stores the new device-reported state and records it as an
// event so live subscribers see the change.
func (s *DeviceService) UpdateStatus(ctx context.Context, caller *domain.User, id uint, status datatypes.JSON) (*domain.Device, error) {
	device, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	device.Status = status
	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, persistence(err)
	}

	_, err = s.RecordEvent(ctx, caller, device.ID, "status_changed", string(status))
	if err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DeviceService) Remove(ctx context.Context, caller *domain.User, id uint) error {
	device, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.deviceRepo.Delete(ctx, device); err != nil {
		return persistence(err)
	}
	return nil
}

func (s *DeviceService) RecordEvent(ctx context.Context, caller *domain.User, deviceID uint, name, description string) (*domain.Event, error) {
	device, err := s.Get(ctx, caller, deviceID)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          uuid.New(),
		DeviceID:    device.ID,
		Name:        name,
		Description: description,
		Date:        time.Now(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, persistence(err)
	}

	if s.publisher != nil {
		s.publisher.PublishEvent(device.OwnerID, event)
	}
	return event, nil
}

func (s *DeviceService) ListEvents(ctx context.Context, caller *domain.User, deviceID uint, limit int) ([]*domain.Event, error) {
	device, err := s.Get(ctx, caller, deviceID)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.GetByDevice(ctx, device.ID, limit)
	if err != nil {
		return nil, persistence(err)
	}
	return events, nil
}
