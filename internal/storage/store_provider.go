package storage

import (
	"fmt"
	"lifedash/internal/providers"
	"lifedash/internal/storage/interfaces"
	"lifedash/internal/structures"
)

// Provider is the application's store: the configured driver, timed and cached.
type Provider struct {
	*CachedStore
	driver string
	file   *FileStore
}

func NewStoreProvider(conf *structures.Config, logger providers.Logger, compressor interfaces.CompressorInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) (*Provider, error) {
	var (
		driver KeyValueStore
		file   *FileStore
		err    error
	)

	switch conf.Storage.Driver {
	case structures.StorageMemory:
		driver = NewMemoryStore(conf.Storage.QuotaBytes)
	case structures.StorageFile:
		file, err = NewFileStore(conf.Storage.Path, conf.Storage.QuotaBytes, compressor, logger)
		if err != nil {
			return nil, fmt.Errorf("open file store %s: %w", conf.Storage.Path, err)
		}
		driver = file
	case structures.StorageSqlite:
		driver, err = NewSqliteStore(conf.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store %s: %w", conf.Storage.Path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Storage.Driver)
	}

	logger.Infof(providers.TypeApp, "Store opened: driver=%s path=%s", conf.Storage.Driver, conf.Storage.Path)

	return &Provider{
		CachedStore: NewCachedStore(NewInstrumentedStore(driver, metrics), cache),
		driver:      conf.Storage.Driver,
		file:        file,
	}, nil
}

func (p *Provider) Driver() string {
	return p.driver
}

// FileStore returns the underlying file driver, or nil for other drivers.
func (p *Provider) FileStore() *FileStore {
	return p.file
}
