package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	classifyPage    pageFlags
	classifyExplain bool
	classifyJSON    bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Identify the kind of a saved court page",
	Long: `Reads a saved HTML page and reports which kind of court page it is:
docket query, docket report, attachment menu, single document and so on.
Use - as the file to read the page from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyPage.register(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyExplain, "explain", false, "show the rule that decided")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if classifierService == nil {
		return fmt.Errorf("classifier: %w", errNotConfigured)
	}

	page, err := classifyPage.load(cmd, args[0])
	if err != nil {
		return err
	}
	result := classifierService.Explain(page)

	if classifyJSON {
		return outputJSON(cmd, result)
	}

	cmd.Println(stylesFor(cmd).title.Render(result.Kind.Description()))
	if classifyExplain {
		rule := result.Rule
		if rule == "" {
			rule = "(none)"
		}
		cmd.Printf("  Kind: %s\n", result.Kind)
		cmd.Printf("  Rule: %s\n", rule)
		if result.Session.Known {
			cmd.Printf("  Logged in: %s\n", yesNo(result.Session.LoggedIn))
			cmd.Printf("  Filing account: %s\n", yesNo(result.Session.FilingAccount))
			cmd.Printf("  Receipts disabled: %s\n", yesNo(result.Session.ReceiptsDisabled))
		}
	}
	for _, note := range result.Notes {
		cmd.Printf("  Note: %s\n", note)
	}
	if result.Restricted {
		cmd.Println("  Restricted: yes")
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
