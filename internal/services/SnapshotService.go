package services

import (
	"bytes"
	"fmt"
	json "github.com/goccy/go-json"
	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/storage"
	"time"
)

// exportDateLayout matches JavaScript's Date.prototype.toISOString.
const exportDateLayout = "2006-01-02T15:04:05.000Z"

type SnapshotServiceInterface interface {
	GetSnapshot() *models.AppSnapshot
	ValidateSnapshot(candidate models.Candidate) bool
	RestoreSnapshot(candidate models.Candidate) error
	ClearAll() error
}

// SnapshotService moves the dashboard keys between the store and one backup document.
// Restore and clear touch the keys one by one; nothing is rolled back on failure.
type SnapshotService struct {
	store    storage.KeyValueStore
	reloader ReloaderInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewSnapshotService(store storage.KeyValueStore, reloader ReloaderInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) SnapshotServiceInterface {
	return &SnapshotService{
		store:    store,
		reloader: reloader,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// GetSnapshot reads every key on its own; a key that cannot be read or parsed falls
// back to its default without affecting the others.
func (ss *SnapshotService) GetSnapshot() *models.AppSnapshot {
	snap := models.NewEmptySnapshot()

	for _, key := range models.SequenceKeys {
		raw, ok := ss.read(key)
		if !ok {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			ss.logger.Warnf(providers.TypeApp, "Failed to parse JSON from store key %s: %s", key, err)
			continue
		}
		if items != nil {
			*snap.Sequence(key) = items
		}
	}

	if raw, ok := ss.readObject(models.KeyOtherTasksWeeklyStats); ok {
		snap.OtherTasksWeeklyStats = raw
	}
	if raw, ok := ss.read(models.KeyTimeByUser); ok {
		snap.TimeByUser = raw
	}
	if raw, ok := ss.readObject(models.KeyVisibility); ok {
		snap.ComponentVisibility = raw
	}

	snap.ExportDate = ss.now().UTC().Format(exportDateLayout)
	ss.metrics.IncSnapshotOperations("export", providers.ResultOK)
	return snap
}

// ValidateSnapshot checks container kinds of the fields that are present. It does not
// look inside arrays and ignores fields it does not know.
func (ss *SnapshotService) ValidateSnapshot(candidate models.Candidate) bool {
	if candidate == nil {
		return false
	}

	recognized := false
	for _, field := range models.RecognizedFields {
		if candidate.Has(field) {
			recognized = true
			break
		}
	}
	if !recognized {
		return false
	}

	for _, key := range models.SequenceKeys {
		if candidate.Has(key) && candidate.Kind(key) != models.KindArray {
			return false
		}
	}
	for _, field := range []string{models.KeyOtherTasksWeeklyStats, models.FieldComponentVisibility} {
		if candidate.Has(field) && candidate.Kind(field) != models.KindObject {
			return false
		}
	}
	if candidate.Has(models.KeyTimeByUser) && candidate.Kind(models.KeyTimeByUser) != models.KindString {
		return false
	}
	return true
}

// RestoreSnapshot writes every truthy recognized field to its store key and then
// triggers one reload. Absent fields keep their stored values.
func (ss *SnapshotService) RestoreSnapshot(candidate models.Candidate) error {
	for _, field := range models.RecognizedFields {
		if !candidate.Truthy(field) {
			continue
		}
		key := models.StoreKeyForField(field)

		value, err := encodeField(candidate, field)
		if err != nil {
			return ss.restoreFailed(key, err)
		}
		if err = ss.store.Set(key, value); err != nil {
			return ss.restoreFailed(key, err)
		}
	}

	ss.logger.Infof(providers.TypeApp, "Backup restored")
	ss.metrics.IncSnapshotOperations("import", providers.ResultOK)
	ss.reloader.Reload()
	return nil
}

// ClearAll removes every key the dashboard uses, stopping at the first failure.
func (ss *SnapshotService) ClearAll() error {
	for _, key := range models.ClearKeys {
		if err := ss.store.Remove(key); err != nil {
			ss.logger.Errorf(providers.TypeApp, "Failed to clear data at key %s: %s", key, err)
			ss.metrics.IncPersistenceFailures("clear")
			ss.metrics.IncSnapshotOperations("clear", providers.ResultError)
			return fmt.Errorf("%w: remove %s: %w", ErrClearFailed, key, err)
		}
	}

	ss.logger.Infof(providers.TypeApp, "All app data cleared from store")
	ss.metrics.IncSnapshotOperations("clear", providers.ResultOK)
	ss.reloader.Reload()
	return nil
}

func (ss *SnapshotService) restoreFailed(key string, err error) error {
	ss.logger.Errorf(providers.TypeApp, "Failed to restore data at key %s: %s", key, err)
	ss.metrics.IncPersistenceFailures("restore")
	ss.metrics.IncSnapshotOperations("import", providers.ResultError)
	return fmt.Errorf("%w: write %s: %w", ErrRestoreFailed, key, err)
}

// read returns a non-empty stored value; read errors count as absent.
func (ss *SnapshotService) read(key string) (string, bool) {
	raw, ok, err := ss.store.Get(key)
	if err != nil {
		ss.logger.Warnf(providers.TypeApp, "Failed to read store key %s: %s", key, err)
		return "", false
	}
	return raw, ok && raw != ""
}

func (ss *SnapshotService) readObject(key string) (json.RawMessage, bool) {
	raw, ok := ss.read(key)
	if !ok {
		return nil, false
	}
	if models.KindOf([]byte(raw)) != models.KindObject || !json.Valid([]byte(raw)) {
		ss.logger.Warnf(providers.TypeApp, "Failed to parse JSON object from store key %s", key)
		return nil, false
	}
	return json.RawMessage(raw), true
}

// encodeField renders a candidate field the way it is kept in the store: time as the
// bare string, everything else as compact JSON.
func encodeField(candidate models.Candidate, field string) (string, error) {
	raw := candidate[field]
	if field == models.KeyTimeByUser {
		if candidate.Kind(field) == models.KindString {
			return candidate.String(field)
		}
		return string(bytes.TrimSpace(raw)), nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
