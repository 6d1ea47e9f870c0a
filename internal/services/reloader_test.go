package services

import (
	"context"
	"testing"
	"time"

	"lifedash/internal/models"
	"lifedash/internal/pubsub"
	"lifedash/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls int
}

func (p *countingPurger) Purge() { p.calls++ }

func TestReloader_ReloadRefreshesVisibility(t *testing.T) {
	store := testutil.NewMockStore()
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	visibility := NewVisibilityService(store, logger, metrics)
	purger := &countingPurger{}
	r := NewReloader(purger, visibility, logger, metrics)
	defer r.Close()

	store.Data[models.KeyVisibility] = `{"calendar":false}`
	r.Reload()

	assert.False(t, visibility.IsVisible(models.ComponentCalendar))
	assert.Equal(t, 1, purger.calls)
	assert.Equal(t, int64(1), r.Count())
	assert.Equal(t, 1, metrics.Reloads)
}

func TestReloader_PublishesCount(t *testing.T) {
	store := testutil.NewMockStore()
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	r := NewReloader(store, NewVisibilityService(store, logger, metrics), logger, metrics)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := r.Subscribe(ctx)

	r.Reload()
	r.Reload()

	for _, want := range []int64{1, 2} {
		select {
		case ev := <-events:
			assert.Equal(t, pubsub.ReloadedEvent, ev.Type)
			assert.Equal(t, want, ev.Payload)
		case <-time.After(time.Second):
			require.FailNow(t, "no reload event")
		}
	}
}
