package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"lifedash/internal/structures"
	"path/filepath"
	"strings"
	"time"
)

const AppName = "LifeDashboard"

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8090)
	v.SetDefault("storage.driver", structures.StorageFile)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.ttl", time.Minute)
	v.SetDefault("backup.interval", time.Hour)
	v.SetDefault("backup.keep", 7)

	v.BindEnv("logger.level", "LIFEDASH_LOG_LEVEL")
	v.BindEnv("storage.driver", "LIFEDASH_STORAGE_DRIVER")
	v.BindEnv("storage.path", "LIFEDASH_STORAGE_PATH")
	v.BindEnv("cache.enabled", "LIFEDASH_CACHE_ENABLED")
	v.BindEnv("backup.enabled", "LIFEDASH_BACKUP_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
