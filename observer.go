package ezstd

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// CloudEvent is an alias for the CloudEvents Event type for convenience.
type CloudEvent = cloudevents.Event

// Event types emitted during aggregator composition.
const (
	// EventTypeRoleEnabled fires once per role as it is enabled.
	EventTypeRoleEnabled = "com.ezstd.role.enabled"

	// EventTypeAggregatorBuilt fires when the builder finishes and the
	// surface freezes.
	EventTypeAggregatorBuilt = "com.ezstd.aggregator.built"

	// EventTypeReferenceGenerated fires when the reference document is
	// rendered.
	EventTypeReferenceGenerated = "com.ezstd.reference.generated"
)

// ObserverFunc receives composition events. Observers run synchronously in
// registration order; an observer error is logged and does not interrupt
// composition.
type ObserverFunc func(ctx context.Context, event CloudEvent) error

// RegisterObserver adds an observer to the aggregator. Observers can only be
// registered before the surface freezes.
func (agg *StdAggregator) RegisterObserver(observer ObserverFunc) error {
	if agg.frozen {
		return ErrSurfaceFrozen
	}
	agg.observers = append(agg.observers, observer)
	return nil
}

func (agg *StdAggregator) notifyObservers(ctx context.Context, event CloudEvent) {
	for _, observer := range agg.observers {
		if err := observer(ctx, event); err != nil {
			agg.logger.Error("observer failed", "event", event.Type(), "error", err)
		}
	}
}

// NewCloudEvent creates a properly formatted CloudEvent for aggregator
// composition activity.
func NewCloudEvent(eventType, source string, data any, metadata map[string]any) CloudEvent {
	event := cloudevents.NewEvent()

	event.SetID(generateEventID())
	event.SetSource(source)
	event.SetType(eventType)
	event.SetTime(time.Now())
	event.SetSpecVersion(cloudevents.VersionV1)

	if data != nil {
		_ = event.SetData(cloudevents.ApplicationJSON, data)
	}

	for key, value := range metadata {
		event.SetExtension(key, value)
	}

	return event
}

// generateEventID returns a UUIDv7 so event IDs carry time-ordered
// uniqueness, falling back to v4 if v7 generation fails.
func generateEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
