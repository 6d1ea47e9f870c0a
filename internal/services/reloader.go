package services

import (
	"context"
	"lifedash/internal/providers"
	"lifedash/internal/pubsub"

	"go.uber.org/atomic"
)

type ReloaderInterface interface {
	Reload()
	Count() int64
	Subscribe(ctx context.Context) <-chan pubsub.Event[int64]
	Close()
}

// Purger drops cached store reads.
type Purger interface {
	Purge()
}

// Reloader makes every component re-read the store after it was rewritten underneath
// them. Subscribers receive the reload count.
type Reloader struct {
	purger     Purger
	visibility VisibilityServiceInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	broker     *pubsub.Broker[int64]
	count      atomic.Int64
}

func NewReloader(purger Purger, visibility VisibilityServiceInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) ReloaderInterface {
	return &Reloader{
		purger:     purger,
		visibility: visibility,
		logger:     logger,
		metrics:    metrics,
		broker:     pubsub.NewBroker[int64](),
	}
}

func (r *Reloader) Reload() {
	r.purger.Purge()
	r.visibility.Reload()

	n := r.count.Inc()
	r.metrics.IncReloads()
	r.logger.Infof(providers.TypeApp, "State reloaded from store (reload #%d)", n)
	r.broker.Publish(pubsub.ReloadedEvent, n)
}

func (r *Reloader) Count() int64 {
	return r.count.Load()
}

func (r *Reloader) Subscribe(ctx context.Context) <-chan pubsub.Event[int64] {
	return r.broker.Subscribe(ctx)
}

func (r *Reloader) Close() {
	r.broker.Shutdown()
}
