package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/services"
)

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number",
	Annotations: map[string]string{skipWiring: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("recap version %s\n", version)
		if !versionVerbose {
			return
		}
		cmd.Printf("  Courts: %d (%d appellate)\n", len(domain.KnownCourts()), len(domain.AppellateCourts()))
		cmd.Printf("  Page kinds: %d\n", len(domain.AllPageKinds()))
		cmd.Printf("  Classification rules: %d\n", len(services.DefaultRules()))
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionVerbose, "details", false, "also print the court and rule tables' sizes")
	rootCmd.AddCommand(versionCmd)
}
