package providers

import (
	"lifedash/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "127.0.0.1",
			Port: 8090,
		},
		Storage: structures.StorageConfig{
			Driver: structures.StorageFile,
			Path:   "/tmp/lifedash/store.zst",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Backup: structures.BackupConfig{
			Enabled:  true,
			Dir:      "/tmp/lifedash/backups",
			Interval: time.Hour,
			Keep:     7,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownDriver(t *testing.T) {
	c := validConfig()
	c.Storage.Driver = "redis"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_PathRequired(t *testing.T) {
	c := validConfig()
	c.Storage.Path = ""
	assert.ErrorIs(t, NewCnfValidator(c).Validate(), ErrStoragePathRequired)

	c.Storage.Driver = structures.StorageMemory
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_Backup(t *testing.T) {
	c := validConfig()
	c.Backup.Dir = ""
	assert.ErrorIs(t, NewCnfValidator(c).Validate(), ErrBackupConfig)

	c = validConfig()
	c.Backup.Interval = 0
	assert.ErrorIs(t, NewCnfValidator(c).Validate(), ErrBackupConfig)

	c.Backup.Enabled = false
	assert.NoError(t, NewCnfValidator(c).Validate())
}
