package eventlog

import (
	"context"
	"encoding/json"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/repository"
	"go.uber.org/zap"
)

// Recorder appends every published aggregate event to the event log
type Recorder struct {
	provider repository.Provider
	events   repository.Event
}

var _ bus.Observer = &Recorder{}

// NewRecorder ...
func NewRecorder(provider repository.Provider, events repository.Event) *Recorder {
	return &Recorder{
		provider: provider,
		events:   events,
	}
}

func (r *Recorder) record(ctx context.Context, event bus.Event) error {
	aggregate, ok := event.(model.Aggregate)
	if !ok {
		return nil
	}
	aggregateType, aggregateID := aggregate.Aggregate()

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.provider.Transact(ctx, func(ctx context.Context) error {
		return r.events.InsertEvent(ctx, model.Event{
			Name:          event.EventName(),
			Data:          string(data),
			AggregateType: aggregateType,
			AggregateID:   aggregateID,
		})
	})
}

// Published a failed insert is logged, publishing is never failed by the event log
func (r *Recorder) Published(ctx context.Context, event bus.Event, _ []error) {
	if err := r.record(ctx, event); err != nil {
		otellib.Extract(ctx).Error("record event",
			zap.String("event", event.EventName()), zap.Error(err))
	}
}

// History events of one aggregate, oldest first
func (r *Recorder) History(
	ctx context.Context, aggregateType model.AggregateType, aggregateID string,
) ([]model.Event, error) {
	return r.events.FindEventsByAggregate(r.provider.Readonly(ctx), aggregateType, aggregateID)
}
