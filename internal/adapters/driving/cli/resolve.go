package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	resolvePage pageFlags
	resolveJSON bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Resolve the case, document and docket identifiers of a saved page",
	Long: `Resolves the identifiers of a saved court page. Pages opened in the same
tab share what they learn: pass the same --tab to resolve a document page
against the docket report it was opened from.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolvePage.register(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return fmt.Errorf("resolver: %w", errNotConfigured)
	}

	page, err := resolvePage.load(cmd, args[0])
	if err != nil {
		return err
	}
	ids, err := resolverService.Resolve(context.Background(), page)
	if err != nil {
		return fmt.Errorf("failed to resolve page: %w", err)
	}

	if resolveJSON {
		return outputJSON(cmd, struct {
			Tab string `json:"tab"`
			domain.Identifiers
		}{Tab: page.TabID, Identifiers: ids})
	}

	cmd.Printf("Tab: %s\n", page.TabID)
	printIdentifiers(cmd, ids)
	return nil
}

func printIdentifiers(cmd *cobra.Command, ids domain.Identifiers) {
	printIdentifier(cmd, "Court", string(ids.Court))
	printIdentifier(cmd, "Case ID", string(ids.CaseID))
	printIdentifier(cmd, "Docket Number", string(ids.DocketNumber))
	printIdentifier(cmd, "Document ID", string(ids.DocumentID))
	if ids.DocNumber != "" {
		printIdentifier(cmd, "Document Number", ids.DocNumber)
	}
	if ids.AttachmentNumber != "" {
		printIdentifier(cmd, "Attachment Number", string(ids.AttachmentNumber))
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
