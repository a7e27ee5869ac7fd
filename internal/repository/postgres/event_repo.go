package postgres

import (
	"context"

	"github.com/voltlab/device-hub/internal/domain"
	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *eventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetByDevice(ctx context.Context, deviceID uint, limit int) ([]*domain.Event, error) {
	var events []*domain.Event
	q := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
