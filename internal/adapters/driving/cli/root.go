// Package cli provides the recap command line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	dataDir   string
	inMemory  bool
)

// Services used by the commands. Set by SetServices, or wired from the
// configuration on first use.
var (
	classifierService   driving.ClassifierService
	resolverService     driving.ResolverService
	tabCacheService     driving.TabCacheService
	watchService        driving.WatchService
	availabilityService driving.AvailabilityService
	navigationService   driving.NavigationService
	settingsService     driving.SettingsService
	configStore         driven.ConfigStore
	servicesReady       bool
	closeServices       func() error
)

// skipWiring marks commands that run without services.
const skipWiring = "skip-wiring"

var rootCmd = &cobra.Command{
	Use:   "recap",
	Short: "Identify court records pages and the cases they belong to",
	Long: `recap classifies saved PACER and CM/ECF pages, resolves their case,
document and docket identifiers, and remembers what each browsing tab has
learned so later pages can be matched to the right case.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if servicesReady || cmd.Annotations[skipWiring] == "true" {
			return nil
		}
		return wireServices()
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if closeServices == nil {
			return nil
		}
		closeFn := closeServices
		closeServices = nil
		servicesReady = false
		return closeFn()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug diagnostics")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.recap)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.recap/data)")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "in-memory", false, "keep tab state in memory only")
}

// Services holds the implementations used by the commands.
type Services struct {
	Classifier   driving.ClassifierService
	Resolver     driving.ResolverService
	TabCache     driving.TabCacheService
	Watch        driving.WatchService
	Availability driving.AvailabilityService
	Navigation   driving.NavigationService
	Settings     driving.SettingsService
	Config       driven.ConfigStore
}

// SetServices installs the services, replacing any wired from the
// configuration.
func SetServices(s Services) {
	classifierService = s.Classifier
	resolverService = s.Resolver
	tabCacheService = s.TabCache
	watchService = s.Watch
	availabilityService = s.Availability
	navigationService = s.Navigation
	settingsService = s.Settings
	configStore = s.Config
	servicesReady = true
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var errNotConfigured = errors.New("service not configured")
