package repository

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
)

// Event ...
type Event interface {
	InsertEvent(ctx context.Context, event model.Event) error
	FindEventsByAggregate(ctx context.Context, aggregateType model.AggregateType, aggregateID string) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvent ...
func (r *eventImpl) InsertEvent(ctx context.Context, event model.Event) error {
	query := `
INSERT INTO event (name, data, aggregate_type, aggregate_id)
VALUES (:name, :data, :aggregate_type, :aggregate_id)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	return err
}

// FindEventsByAggregate ...
func (r *eventImpl) FindEventsByAggregate(
	ctx context.Context, aggregateType model.AggregateType, aggregateID string,
) ([]model.Event, error) {
	query := `
SELECT id, name, data, aggregate_type, aggregate_id, created_at
FROM event WHERE aggregate_type = ? AND aggregate_id = ? ORDER BY id
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, aggregateType, aggregateID)
	return result, err
}
