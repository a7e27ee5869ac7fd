package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voltlab/device-hub/internal/domain"
	"github.com/voltlab/device-hub/internal/repository"
)

type DeviceRepository struct {
	mu      sync.RWMutex
	nextID  uint
	devices map[uint]*domain.Device

	Err error
}

func NewDeviceRepository() *DeviceRepository {
	return &DeviceRepository{
		nextID:  1,
		devices: make(map[uint]*domain.Device),
	}
}

func (r *DeviceRepository) Create(ctx context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	device.ID = r.nextID
	r.nextID++
	cp := *device
	r.devices[device.ID] = &cp
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, id uint) (*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	d, ok := r.devices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *DeviceRepository) GetByOwner(ctx context.Context, ownerID uint) ([]*domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*domain.Device
	for _, d := range r.devices {
		if d.OwnerID == ownerID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *DeviceRepository) Update(ctx context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.devices[device.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *device
	r.devices[device.ID] = &cp
	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, device *domain.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	delete(r.devices, device.ID)
	return nil
}
