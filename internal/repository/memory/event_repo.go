package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/voltlab/device-hub/internal/domain"
)

type EventRepository struct {
	mu     sync.RWMutex
	events []*domain.Event

	Err error
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	cp := *event
	r.events = append(r.events, &cp)
	return nil
}

func (r *EventRepository) GetByDevice(ctx context.Context, deviceID uint, limit int) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*domain.Event
	for _, e := range r.events {
		if e.DeviceID == deviceID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func NewRepositories() (*UserRepository, *DeviceRepository, *EventRepository) {
	return NewUserRepository(), NewDeviceRepository(), NewEventRepository()
}
