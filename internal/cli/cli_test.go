package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifedash/internal"
	"lifedash/internal/backup"
	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"lifedash/internal/storage"
	"lifedash/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliTestLogger struct{}

func (m *cliTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *cliTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *cliTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *cliTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *cliTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *cliTestLogger) Close()                                                  {}

// fileFactory opens a fresh core over the same store file for every command.
func fileFactory(t *testing.T) (Factory, string) {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "store.zst")

	newCore := func(_ *structures.CliFlags) (*internal.Core, error) {
		conf := &structures.Config{
			Storage: structures.StorageConfig{Driver: structures.StorageFile, Path: storePath},
		}
		logger := &cliTestLogger{}
		metrics := providers.NewMetricsProvider(conf)
		compressor, err := storage.NewZstdCompressor()
		if err != nil {
			return nil, err
		}
		store, err := storage.NewStoreProvider(conf, logger, compressor, providers.NewCacheProvider(conf, logger), metrics)
		if err != nil {
			return nil, err
		}
		visibility := services.NewVisibilityService(store, logger, metrics)
		reloader := services.NewReloader(store, visibility, logger, metrics)
		snapshots := services.NewSnapshotService(store, reloader, logger, metrics)
		fileManager := backup.NewFileManager(compressor, snapshots, logger)
		return internal.NewCore(conf, logger, store, compressor, visibility, reloader, snapshots, fileManager), nil
	}
	return Factory{Core: newCore}, storePath
}

func run(t *testing.T, factory Factory, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(context.Background(), factory)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVisibilityCommands(t *testing.T) {
	factory, _ := fileFactory(t)

	out, err := run(t, factory, "visibility")
	require.NoError(t, err)
	assert.Contains(t, out, "weather   visible")

	out, err = run(t, factory, "visibility", "toggle", "weather")
	require.NoError(t, err)
	assert.Contains(t, out, "weather   hidden")

	// state survives a new process
	out, err = run(t, factory, "visibility", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "weather   hidden")

	out, err = run(t, factory, "visibility", "set", "notes", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "notes     hidden")

	out, err = run(t, factory, "visibility", "reset")
	require.NoError(t, err)
	assert.NotContains(t, out, "hidden")
}

func TestVisibilityCommands_InvalidInput(t *testing.T) {
	factory, _ := fileFactory(t)

	_, err := run(t, factory, "visibility", "toggle", "clock")
	assert.ErrorIs(t, err, models.ErrInvalidComponent)

	_, err = run(t, factory, "visibility", "set", "notes", "maybe")
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	factory, _ := fileFactory(t)
	dir := t.TempDir()

	src := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"tasks":[{"id":7}],"countdowns":[{"d":"2025-01-01"}]}`), 0o644))

	out, err := run(t, factory, "import", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")

	out, err = run(t, factory, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"tasks": [`)
	assert.Contains(t, out, `"id"`)

	archive := filepath.Join(dir, "backup.json")
	out, err = run(t, factory, "export", "--out", archive, "--compress")
	require.NoError(t, err)
	assert.Contains(t, out, archive+".zst")

	data, err := os.ReadFile(archive + ".zst")
	require.NoError(t, err)
	assert.True(t, storage.IsCompressed(data))

	_, err = run(t, factory, "clear", "--yes")
	require.NoError(t, err)

	_, err = run(t, factory, "import", archive+".zst")
	require.NoError(t, err)

	out, err = run(t, factory, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `2025-01-01`)
}

func TestImport_Rejections(t *testing.T) {
	factory, _ := fileFactory(t)
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"tasks":`), 0o644))
	_, err := run(t, factory, "import", broken)
	assert.ErrorIs(t, err, backup.ErrInvalidJSON)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"foo":1}`), 0o644))
	_, err = run(t, factory, "import", unknown)
	assert.ErrorIs(t, err, backup.ErrInvalidSnapshot)

	_, err = run(t, factory, "import", filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, backup.ErrReadFailed)
}

func TestClear_RequiresConfirmation(t *testing.T) {
	factory, _ := fileFactory(t)

	_, err := run(t, factory, "visibility", "toggle", "quotes")
	require.NoError(t, err)

	_, err = run(t, factory, "clear")
	assert.ErrorIs(t, err, errConfirmRequired)

	out, err := run(t, factory, "visibility")
	require.NoError(t, err)
	assert.Contains(t, out, "quotes    hidden")

	out, err = run(t, factory, "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All data cleared")

	out, err = run(t, factory, "visibility")
	require.NoError(t, err)
	assert.Contains(t, out, "quotes    visible")
}

func TestExportPath(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "life-dashboard-backup-2024-05-01.json.zst", exportPath("", true, now))
	assert.Equal(t, "out.json", exportPath("out.json", false, now))
	assert.Equal(t, "out.json.zst", exportPath("out.json", true, now))
	assert.Equal(t, "out.zst", exportPath("out.zst", true, now))
}
