//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"lifedash/internal"
	"lifedash/internal/backup"
	"lifedash/internal/controllers"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"lifedash/internal/storage"
	"lifedash/internal/structures"
)

var coreSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,
	providers.NewInstrumentedCacheProvider,

	storage.NewZstdCompressor,
	storage.NewStoreProvider,
	wire.Bind(new(storage.KeyValueStore), new(*storage.Provider)),
	wire.Bind(new(services.Purger), new(*storage.Provider)),

	services.NewVisibilityService,
	services.NewReloader,
	services.NewSnapshotService,
	backup.NewFileManager,
	internal.NewCore,
)

func InitCore(cfg *structures.CliFlags) (*internal.Core, error) {

	wire.Build(coreSet)

	return nil, nil
}

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		coreSet,

		backup.NewScheduler,
		wire.Bind(new(controllers.StoreInfo), new(*storage.Provider)),
		controllers.NewVisibilityController,
		controllers.NewDataController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
