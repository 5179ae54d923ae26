package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var courtsCmd = &cobra.Command{
	Use:   "courts [court-code]",
	Short: "List known courts",
	Long: `Lists the court website codes with their citation abbreviation, archive
court code and rule family. Pass a code to show a single court.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipWiring: "true"},
	RunE:        runCourts,
}

func init() {
	rootCmd.AddCommand(courtsCmd)
}

func runCourts(cmd *cobra.Command, args []string) error {
	courts := domain.KnownCourts()
	if len(args) == 1 {
		court := domain.CourtCode(args[0])
		if _, ok := domain.CourtAbbreviation(court); !ok {
			return fmt.Errorf("%w: unknown court %q", domain.ErrNotFound, args[0])
		}
		courts = []domain.CourtCode{court}
	}

	header := fmt.Sprintf("%-10s %-16s %-10s %s", "CODE", "ABBREVIATION", "ARCHIVE", "KIND")
	cmd.Println(stylesFor(cmd).section.Render(header))
	for _, court := range courts {
		abbrev, _ := domain.CourtAbbreviation(court)
		cmd.Printf("%-10s %-16s %-10s %s\n", court, abbrev, domain.ConvertToArchiveCourt(court), domain.KindOf(court))
	}
	return nil
}
