package controllers

import (
	"context"
	"errors"
	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/pubsub"
	"time"
)

// --- local mocks (scoped to controller tests) ---

type mockLogger struct{}

func (m *mockLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *mockLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *mockLogger) Close()                                                  {}

type mockMetrics struct {
	snapshotOps []string
}

func (m *mockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *mockMetrics) IncCacheHits()                                    {}
func (m *mockMetrics) IncCacheMisses()                                  {}
func (m *mockMetrics) ObserveStoreDuration(_ string, _ time.Duration)   {}
func (m *mockMetrics) IncPersistenceFailures(_ string)                  {}
func (m *mockMetrics) IncSnapshotOperations(op, result string) {
	m.snapshotOps = append(m.snapshotOps, op+":"+result)
}
func (m *mockMetrics) IncReloads() {}

type mockVisibility struct {
	flags   models.VisibilityFlags
	failErr error
	resets  int
}

func newMockVisibility() *mockVisibility {
	return &mockVisibility{flags: models.DefaultVisibility()}
}

func (m *mockVisibility) Load() models.VisibilityFlags { return m.flags }
func (m *mockVisibility) Get() models.VisibilityFlags  { return m.flags }
func (m *mockVisibility) IsVisible(c models.Component) bool {
	v, _ := m.flags.Get(c)
	return v
}
func (m *mockVisibility) Toggle(c models.Component) error {
	if m.failErr != nil {
		return m.failErr
	}
	return m.flags.Toggle(c)
}
func (m *mockVisibility) SetVisibility(c models.Component, visible bool) error {
	if m.failErr != nil {
		return m.failErr
	}
	return m.flags.Set(c, visible)
}
func (m *mockVisibility) ResetToDefaults() {
	m.resets++
	m.flags = models.DefaultVisibility()
}
func (m *mockVisibility) Reload() {}
func (m *mockVisibility) Subscribe(_ context.Context) <-chan pubsub.Event[models.VisibilityFlags] {
	return nil
}
func (m *mockVisibility) Close() {}

type mockSnapshots struct {
	snapshot   *models.AppSnapshot
	valid      bool
	restoreErr error
	clearErr   error
	restored   []models.Candidate
	clears     int
}

func (m *mockSnapshots) GetSnapshot() *models.AppSnapshot { return m.snapshot }
func (m *mockSnapshots) ValidateSnapshot(_ models.Candidate) bool {
	return m.valid
}
func (m *mockSnapshots) RestoreSnapshot(c models.Candidate) error {
	m.restored = append(m.restored, c)
	return m.restoreErr
}
func (m *mockSnapshots) ClearAll() error {
	m.clears++
	return m.clearErr
}

type mockReloader struct {
	count int64
}

func (m *mockReloader) Reload()      { m.count++ }
func (m *mockReloader) Count() int64 { return m.count }
func (m *mockReloader) Subscribe(_ context.Context) <-chan pubsub.Event[int64] {
	return nil
}
func (m *mockReloader) Close() {}

type mockScheduler struct {
	last string
}

func (m *mockScheduler) Init()              {}
func (m *mockScheduler) Stop()              {}
func (m *mockScheduler) Persist() error     { return nil }
func (m *mockScheduler) LastBackup() string { return m.last }

type mockStoreInfo struct {
	driver string
}

func (m *mockStoreInfo) Driver() string { return m.driver }

var errStoreDown = errors.New("store down")
