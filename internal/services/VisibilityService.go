package services

import (
	"context"
	json "github.com/goccy/go-json"
	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/pubsub"
	"lifedash/internal/storage"
	"sync"
)

type VisibilityServiceInterface interface {
	Load() models.VisibilityFlags
	Get() models.VisibilityFlags
	IsVisible(component models.Component) bool
	Toggle(component models.Component) error
	SetVisibility(component models.Component, visible bool) error
	ResetToDefaults()
	Reload()
	Subscribe(ctx context.Context) <-chan pubsub.Event[models.VisibilityFlags]
	Close()
}

// VisibilityService owns the one in-memory copy of the widget flags for the whole
// application. Every mutation is written straight back to the store; a failed write is
// logged and the in-memory value stays authoritative.
type VisibilityService struct {
	mu      sync.Mutex
	store   storage.KeyValueStore
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	broker  *pubsub.Broker[models.VisibilityFlags]
	flags   models.VisibilityFlags
}

func NewVisibilityService(store storage.KeyValueStore, logger providers.Logger, metrics providers.MetricsProviderInterface) VisibilityServiceInterface {
	vs := &VisibilityService{
		store:   store,
		logger:  logger,
		metrics: metrics,
		broker:  pubsub.NewBroker[models.VisibilityFlags](),
	}
	vs.flags = vs.Load()
	return vs
}

// Load reads the persisted flags over the defaults. It never fails: a missing or
// unreadable value yields the defaults.
func (vs *VisibilityService) Load() models.VisibilityFlags {
	flags := models.DefaultVisibility()

	raw, ok, err := vs.store.Get(models.KeyVisibility)
	if err != nil {
		vs.logger.Errorf(providers.TypeApp, "Failed to load component visibility: %s", err)
		return flags
	}
	if !ok || raw == "" {
		return flags
	}

	var stored map[string]json.RawMessage
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		vs.logger.Errorf(providers.TypeApp, "Failed to load component visibility: %s", err)
		return flags
	}
	// keys match exactly; a value that is not a boolean keeps its default
	for _, component := range models.Components {
		value, ok := stored[string(component)]
		if !ok {
			continue
		}
		if models.KindOf(value) != models.KindBool {
			vs.logger.Warnf(providers.TypeApp, "Ignoring stored visibility of %s: not a boolean", component)
			continue
		}
		var visible bool
		if err = json.Unmarshal(value, &visible); err != nil {
			vs.logger.Warnf(providers.TypeApp, "Ignoring stored visibility of %s: %s", component, err)
			continue
		}
		_ = flags.Set(component, visible)
	}
	return flags
}

func (vs *VisibilityService) Get() models.VisibilityFlags {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.flags
}

func (vs *VisibilityService) IsVisible(component models.Component) bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	visible, err := vs.flags.Get(component)
	return err == nil && visible
}

func (vs *VisibilityService) Toggle(component models.Component) error {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if err := vs.flags.Toggle(component); err != nil {
		return err
	}
	vs.commitLocked(pubsub.UpdatedEvent)
	return nil
}

func (vs *VisibilityService) SetVisibility(component models.Component, visible bool) error {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	if err := vs.flags.Set(component, visible); err != nil {
		return err
	}
	vs.commitLocked(pubsub.UpdatedEvent)
	return nil
}

func (vs *VisibilityService) ResetToDefaults() {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	vs.flags = models.DefaultVisibility()
	vs.commitLocked(pubsub.ResetEvent)
}

// Reload replaces the in-memory flags with what the store holds now. Nothing is written.
func (vs *VisibilityService) Reload() {
	flags := vs.Load()

	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.flags = flags
	vs.broker.Publish(pubsub.ReloadedEvent, flags)
}

func (vs *VisibilityService) Subscribe(ctx context.Context) <-chan pubsub.Event[models.VisibilityFlags] {
	return vs.broker.Subscribe(ctx)
}

func (vs *VisibilityService) Close() {
	vs.broker.Shutdown()
}

func (vs *VisibilityService) commitLocked(event pubsub.EventType) {
	vs.persistLocked()
	vs.broker.Publish(event, vs.flags)
}

func (vs *VisibilityService) persistLocked() {
	data, err := json.Marshal(vs.flags)
	if err != nil {
		vs.logger.Errorf(providers.TypeApp, "Failed to save component visibility: %s", err)
		vs.metrics.IncPersistenceFailures("visibility")
		return
	}
	if err = vs.store.Set(models.KeyVisibility, string(data)); err != nil {
		vs.logger.Errorf(providers.TypeApp, "Failed to save component visibility: %s", err)
		vs.metrics.IncPersistenceFailures("visibility")
	}
}
