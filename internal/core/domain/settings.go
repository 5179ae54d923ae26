package domain

import "time"

// Default settings values.
const (
	DefaultArchiveBaseURL    = "https://www.courtlistener.com/api/rest/v4"
	DefaultArchiveRate       = 2.0
	DefaultCacheTimeout      = 2 * time.Second
	DefaultArchiveTimeout    = 10 * time.Second
	OptionsStoreKey          = "options"
	defaultStorageFolderName = "data"
)

// AppSettings holds engine configuration read from the config file.
type AppSettings struct {
	Storage  StorageSettings
	Resolver ResolverSettings
	Archive  ArchiveSettings
}

// StorageSettings configures the persistent key-value store.
type StorageSettings struct {
	// Path is the data directory. Empty means ~/.recap/data.
	Path string

	// InMemory disables persistence entirely.
	InMemory bool
}

// ResolverSettings configures identifier resolution.
type ResolverSettings struct {
	// CacheTimeout bounds every tab cache operation.
	CacheTimeout time.Duration
}

// ArchiveSettings configures the archive availability client.
type ArchiveSettings struct {
	BaseURL string
	Token   string

	// RatePerSecond throttles outgoing requests.
	RatePerSecond float64

	// Timeout bounds each request.
	Timeout time.Duration
}

// IsConfigured returns true if the archive client can be used.
func (a ArchiveSettings) IsConfigured() bool {
	return a.BaseURL != "" && a.Token != ""
}

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{},
		Resolver: ResolverSettings{
			CacheTimeout: DefaultCacheTimeout,
		},
		Archive: ArchiveSettings{
			BaseURL:       DefaultArchiveBaseURL,
			RatePerSecond: DefaultArchiveRate,
			Timeout:       DefaultArchiveTimeout,
		},
	}
}

// DefaultStorageFolder is the folder name under the app home for data.
func DefaultStorageFolder() string {
	return defaultStorageFolderName
}

// Options are the user preferences persisted under the "options" store key.
type Options struct {
	// RecapEnabled turns page uploads on or off.
	RecapEnabled bool `json:"recap_enabled"`

	// ShowNotifications controls upload notifications.
	ShowNotifications bool `json:"show_notifications"`

	// ReceiptsDisabled mirrors the account's "receipt=N" preference.
	ReceiptsDisabled bool `json:"receipts_disabled,omitempty"`

	// DismissNewsBadge hides the "what's new" badge.
	DismissNewsBadge bool `json:"dismiss_news_badge,omitempty"`

	// LoginDismissNewBrandInfo hides the login page information banner.
	LoginDismissNewBrandInfo bool `json:"login_dismiss_new_brand_info,omitempty"`
}

// DefaultOptions returns the options used before the user saves any.
func DefaultOptions() Options {
	return Options{
		RecapEnabled:      true,
		ShowNotifications: true,
	}
}
