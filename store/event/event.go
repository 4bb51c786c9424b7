package event

import (
	"context"

	"anchor/core"

	"github.com/fox-one/pkg/store/db"
)

type eventStore struct {
	db *db.DB
}

// New new event store
func New(db *db.DB) core.IEventStore {
	return &eventStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Event{})
		if err := tx.AutoMigrate(core.Event{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *eventStore) Create(ctx context.Context, tx *db.DB, event *core.Event) error {
	if e := tx.Update().Where("trace_id=?", event.TraceID).FirstOrCreate(event).Error; e != nil {
		return e
	}

	return nil
}

func (s *eventStore) List(ctx context.Context, fromID uint64, limit int) ([]*core.Event, error) {
	var events []*core.Event
	if e := s.db.View().Where("id>?", fromID).Order("id").Limit(limit).Find(&events).Error; e != nil {
		return nil, e
	}

	return events, nil
}

func (s *eventStore) FindByUser(ctx context.Context, userID string, limit int) ([]*core.Event, error) {
	var events []*core.Event
	if e := s.db.View().Where("user_id=?", userID).Order("id desc").Limit(limit).Find(&events).Error; e != nil {
		return nil, e
	}

	return events, nil
}
