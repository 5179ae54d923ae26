package services

import (
	"fmt"
	"net/url"
	"time"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyStoragePath      = "storage.path"
	keyStorageInMemory  = "storage.in_memory"
	keyCacheTimeoutMS   = "resolver.cache_timeout_ms"
	keyArchiveBaseURL   = "archive.base_url"
	keyArchiveToken     = "archive.token"
	keyArchiveRate      = "archive.rate_per_second"
	keyArchiveTimeoutMS = "archive.timeout_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Path:     s.configStore.GetString(keyStoragePath), // No default - empty means ~/.recap/data
			InMemory: s.getBool(keyStorageInMemory, defaults.Storage.InMemory),
		},
		Resolver: domain.ResolverSettings{
			CacheTimeout: s.getMillis(keyCacheTimeoutMS, defaults.Resolver.CacheTimeout),
		},
		Archive: domain.ArchiveSettings{
			BaseURL:       s.getString(keyArchiveBaseURL, defaults.Archive.BaseURL),
			Token:         s.configStore.GetString(keyArchiveToken),
			RatePerSecond: s.getFloat(keyArchiveRate, defaults.Archive.RatePerSecond),
			Timeout:       s.getMillis(keyArchiveTimeoutMS, defaults.Archive.Timeout),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save storage settings
	if settings.Storage.Path != "" {
		if err := s.configStore.Set(keyStoragePath, settings.Storage.Path); err != nil {
			return fmt.Errorf("save storage path: %w", err)
		}
	}
	if err := s.configStore.Set(keyStorageInMemory, settings.Storage.InMemory); err != nil {
		return fmt.Errorf("save storage in_memory: %w", err)
	}

	// Save resolver settings
	if err := s.configStore.Set(keyCacheTimeoutMS, settings.Resolver.CacheTimeout.Milliseconds()); err != nil {
		return fmt.Errorf("save cache timeout: %w", err)
	}

	// Save archive settings
	if err := s.configStore.Set(keyArchiveBaseURL, settings.Archive.BaseURL); err != nil {
		return fmt.Errorf("save archive base_url: %w", err)
	}
	if settings.Archive.Token != "" {
		if err := s.configStore.Set(keyArchiveToken, settings.Archive.Token); err != nil {
			return fmt.Errorf("save archive token: %w", err)
		}
	}
	if err := s.configStore.Set(keyArchiveRate, settings.Archive.RatePerSecond); err != nil {
		return fmt.Errorf("save archive rate: %w", err)
	}
	if err := s.configStore.Set(keyArchiveTimeoutMS, settings.Archive.Timeout.Milliseconds()); err != nil {
		return fmt.Errorf("save archive timeout: %w", err)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Resolver.CacheTimeout <= 0 {
		return fmt.Errorf("%w: cache timeout must be positive", domain.ErrInvalidInput)
	}
	if settings.Archive.RatePerSecond < 0 {
		return fmt.Errorf("%w: archive rate must not be negative", domain.ErrInvalidInput)
	}
	if settings.Archive.BaseURL != "" {
		u, err := url.Parse(settings.Archive.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: archive base_url %q is not an absolute URL",
				domain.ErrInvalidInput, settings.Archive.BaseURL)
		}
	}

	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getMillis(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Millisecond
}
