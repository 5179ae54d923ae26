package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure storage, resolver and archive settings.

Settings are stored in ~/.recap/config.toml unless --config is given.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
  storage.path              data directory for the tab cache
  storage.in_memory         true to keep tab state in memory only
  resolver.cache_timeout    bound on each tab cache call, e.g. 2s
  archive.base_url          archive REST API root
  archive.rate_per_second   request rate, 0 for unlimited
  archive.timeout           bound on each archive request, e.g. 10s`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Set the archive API token",
	Long:  `Prompts for the archive API token without echoing it.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsToken,
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings are usable",
	Args:  cobra.NoArgs,
	RunE:  runSettingsValidate,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsTokenCmd)
	settingsCmd.AddCommand(settingsValidateCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	st := stylesFor(cmd)
	cmd.Println(st.title.Render("Current Settings"))
	cmd.Println(st.muted.Render("================"))
	cmd.Println()

	cmd.Println(st.section.Render("[Storage]"))
	if settings.Storage.InMemory {
		cmd.Printf("  Backend: memory\n")
	} else {
		path := settings.Storage.Path
		if path == "" {
			path = "~/.recap/" + domain.DefaultStorageFolder()
		}
		cmd.Printf("  Backend: sqlite\n")
		cmd.Printf("  Path: %s\n", path)
	}
	cmd.Println()

	cmd.Println(st.section.Render("[Resolver]"))
	cmd.Printf("  Cache Timeout: %s\n", settings.Resolver.CacheTimeout)
	cmd.Println()

	cmd.Println(st.section.Render("[Archive]"))
	cmd.Printf("  Base URL: %s\n", settings.Archive.BaseURL)
	if settings.Archive.Token != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.Archive.Token))
	} else {
		cmd.Printf("  Token: (not set)\n")
	}
	if settings.Archive.RatePerSecond > 0 {
		cmd.Printf("  Rate: %g/s\n", settings.Archive.RatePerSecond)
	} else {
		cmd.Printf("  Rate: unlimited\n")
	}
	cmd.Printf("  Timeout: %s\n", settings.Archive.Timeout)
	status := "configured"
	if !settings.Archive.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := applySetting(settings, args[0], args[1]); err != nil {
		return err
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("%s set to %s\n", args[0], args[1])
	return nil
}

func runSettingsToken(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Archive API token: ")
	token := readPassword()
	cmd.Println()
	if token == "" {
		return errors.New("no token entered")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.Archive.Token = token
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Token saved: %s\n", maskAPIKey(token))
	return nil
}

func runSettingsValidate(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Validate(); err != nil {
		return err
	}
	cmd.Println("Settings are valid.")
	return nil
}

// applySetting parses value for key and stores it in settings.
func applySetting(settings *domain.AppSettings, key, value string) error {
	switch key {
	case "storage.path":
		settings.Storage.Path = value
	case "storage.in_memory":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.Storage.InMemory = b
	case "resolver.cache_timeout":
		d, err := parsePositiveDuration(key, value)
		if err != nil {
			return err
		}
		settings.Resolver.CacheTimeout = d
	case "archive.base_url":
		settings.Archive.BaseURL = value
	case "archive.rate_per_second":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		settings.Archive.RatePerSecond = f
	case "archive.timeout":
		d, err := parsePositiveDuration(key, value)
		if err != nil {
			return err
		}
		settings.Archive.Timeout = d
	case "archive.token":
		return fmt.Errorf("%w: use \"recap settings token\" to set the token", domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return nil
}

func parsePositiveDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive duration such as 500ms", domain.ErrInvalidInput, key)
	}
	return d, nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
