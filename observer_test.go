package ezstd

import (
	"context"
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCloudEventShape(t *testing.T) {
	event := NewCloudEvent(EventTypeRoleEnabled, "aggregator",
		map[string]any{"role": "fs"}, map[string]any{"build": "test"})

	assert.Equal(t, EventTypeRoleEnabled, event.Type())
	assert.Equal(t, "aggregator", event.Source())
	assert.Equal(t, cloudevents.VersionV1, event.SpecVersion())
	assert.NotEmpty(t, event.ID())
	assert.False(t, event.Time().IsZero())
	assert.NoError(t, event.Validate())
}

func TestCloudEventIDsAreUnique(t *testing.T) {
	a := NewCloudEvent(EventTypeRoleEnabled, "aggregator", nil, nil)
	b := NewCloudEvent(EventTypeRoleEnabled, "aggregator", nil, nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestObserversAreNotifiedPerEnabledRole(t *testing.T) {
	var roles []string
	agg := newTestAggregator(t, &testRole{name: "fs"}, &testRole{name: "net"})
	require.NoError(t, agg.RegisterObserver(func(ctx context.Context, event CloudEvent) error {
		if event.Type() == EventTypeRoleEnabled {
			var data map[string]any
			require.NoError(t, event.DataAs(&data))
			roles = append(roles, data["role"].(string))
		}
		return nil
	}))

	require.NoError(t, agg.Enable("fs", "net"))
	assert.ElementsMatch(t, []string{"fs", "net"}, roles)
}

func TestObserverErrorDoesNotInterruptEnable(t *testing.T) {
	agg := newTestAggregator(t, &testRole{name: "fs"})
	require.NoError(t, agg.RegisterObserver(func(ctx context.Context, event CloudEvent) error {
		return errBoom
	}))

	require.NoError(t, agg.Enable("fs"))
	assert.Equal(t, []string{"fs"}, agg.Namespaces())
}

func TestRegisterObserverAfterFreeze(t *testing.T) {
	agg := newTestAggregator(t)
	agg.Freeze()

	err := agg.RegisterObserver(func(ctx context.Context, event CloudEvent) error { return nil })
	assert.ErrorIs(t, err, ErrSurfaceFrozen)
}
