package internal

import (
	"lifedash/internal/backup"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"lifedash/internal/storage"
	"lifedash/internal/storage/interfaces"
	"lifedash/internal/structures"
)

// Core is the store and the services on top of it, without the HTTP server.
// CLI commands run against a Core; the daemon wraps one in an App.
type Core struct {
	Config      *structures.Config
	Logger      providers.Logger
	Store       *storage.Provider
	Compressor  interfaces.CompressorInterface
	Visibility  services.VisibilityServiceInterface
	Reloader    services.ReloaderInterface
	Snapshots   services.SnapshotServiceInterface
	FileManager *backup.FileManager
}

func NewCore(conf *structures.Config, logger providers.Logger, store *storage.Provider, compressor interfaces.CompressorInterface, visibility services.VisibilityServiceInterface, reloader services.ReloaderInterface, snapshots services.SnapshotServiceInterface, fileManager *backup.FileManager) *Core {
	return &Core{
		Config:      conf,
		Logger:      logger,
		Store:       store,
		Compressor:  compressor,
		Visibility:  visibility,
		Reloader:    reloader,
		Snapshots:   snapshots,
		FileManager: fileManager,
	}
}

// Close releases everything in reverse order of construction.
func (c *Core) Close() {
	c.Reloader.Close()
	c.Visibility.Close()
	if err := c.Store.Close(); err != nil {
		c.Logger.Errorf(providers.TypeApp, "Error while closing store: %s", err)
	}
	c.Compressor.Close()
	c.Logger.Close()
}
