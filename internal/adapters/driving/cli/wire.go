package cli

import (
	"fmt"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/archive/courtlistener"
	"github.com/custodia-labs/recap-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/recap-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recap-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/services"
	"github.com/custodia-labs/recap-cli/internal/logger"
)

var wireLog = logger.Named("wire")

// wireServices builds the services from the config file and flags.
func wireServices() error {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := services.NewSettingsService(cfg)
	// Broken settings must still be fixable with "recap settings set".
	if err := settings.Validate(); err != nil {
		wireLog.Warn("settings in %s: %v", cfg.Path(), err)
	}
	appSettings, err := settings.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	var store driven.KeyValueStore
	closeStore := func() error { return nil }
	if inMemory || appSettings.Storage.InMemory {
		wireLog.Debug("using in-memory tab cache")
		store = memory.NewKeyValueStore()
	} else {
		dir := dataDir
		if dir == "" {
			dir = appSettings.Storage.Path
		}
		db, err := sqlite.NewStore(dir)
		if err != nil {
			return fmt.Errorf("opening tab cache: %w", err)
		}
		wireLog.Debug("tab cache at %s", db.Path())
		store = db
		closeStore = db.Close
	}

	cache := services.NewTabCacheService(store, appSettings.Resolver.CacheTimeout)
	classifier := services.NewClassifier()
	navigation := services.NewNavigationTracker()
	resolver := services.NewResolver(cache,
		services.WithClassifier(classifier),
		services.WithNavigationTracker(navigation),
		services.WithOptionsStore(cache))

	var archive driven.ArchiveClient
	if appSettings.Archive.BaseURL != "" {
		archive = courtlistener.NewClient(courtlistener.Config{
			BaseURL:       appSettings.Archive.BaseURL,
			Token:         appSettings.Archive.Token,
			RatePerSecond: appSettings.Archive.RatePerSecond,
			Timeout:       appSettings.Archive.Timeout,
		})
	}

	SetServices(Services{
		Classifier:   classifier,
		Resolver:     resolver,
		TabCache:     cache,
		Watch:        services.NewWatcher(classifier, resolver),
		Availability: services.NewAvailabilityService(archive, resolver),
		Navigation:   navigation,
		Settings:     settings,
		Config:       cfg,
	})
	closeServices = closeStore
	return nil
}
