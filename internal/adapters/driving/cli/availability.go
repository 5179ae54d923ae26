package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/archive/courtlistener"
	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	availabilityPage pageFlags
	availabilityJSON bool
)

var availabilityCmd = &cobra.Command{
	Use:   "availability [file]",
	Short: "Ask the archive which of a page's records it already holds",
	Long: `Resolves a saved court page and asks the public archive whether it holds
the page's docket and the documents the page links to.

Requires archive.token in the config file (see "recap settings set").`,
	Args: cobra.ExactArgs(1),
	RunE: runAvailability,
}

func init() {
	availabilityPage.register(availabilityCmd)
	availabilityCmd.Flags().BoolVar(&availabilityJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(availabilityCmd)
}

func runAvailability(cmd *cobra.Command, args []string) error {
	if availabilityService == nil {
		return fmt.Errorf("availability: %w", errNotConfigured)
	}

	page, err := availabilityPage.load(cmd, args[0])
	if err != nil {
		return err
	}
	result, err := availabilityService.Check(context.Background(), page)
	if courtlistener.IsRateLimited(err) {
		return fmt.Errorf("archive rate limit reached, try again later: %w", err)
	}
	if errors.Is(err, domain.ErrArchiveUnavailable) {
		return errors.New("archive not configured: set archive.base_url")
	}
	if err != nil {
		return fmt.Errorf("availability check failed: %w", err)
	}

	if availabilityJSON {
		return outputJSON(cmd, result)
	}

	printIdentifiers(cmd, result.Identifiers)
	cmd.Println()
	if result.HasDocket() {
		for _, d := range result.Dockets {
			cmd.Printf("Docket archived: %s\n", d.AbsoluteURL)
		}
	} else {
		cmd.Println("Docket not archived.")
	}
	for _, d := range result.DistrictDockets {
		cmd.Printf("District docket archived: %s\n", d.AbsoluteURL)
	}
	if len(result.Documents) > 0 {
		cmd.Println("Archived documents:")
		for _, d := range result.Documents {
			cmd.Printf("  %s  %s\n", d.DocumentID, d.FilepathLocal)
		}
	}
	return nil
}
