package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and edit per-tab identifier state",
	Long:  `Show, merge into, list or destroy what each tab has learned about its case.`,
}

var cacheGetCmd = &cobra.Command{
	Use:   "get [tab-id]",
	Short: "Show a tab's entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheGet,
}

var cacheMergeCmd = &cobra.Command{
	Use:   "merge [tab-id]",
	Short: "Merge identifiers into a tab's entry",
	Long: `Merges the given identifiers into the tab's entry. Values not given are
left untouched; document mappings are added to the existing ones.`,
	Args: cobra.ExactArgs(1),
	RunE: runCacheMerge,
}

var cacheDestroyCmd = &cobra.Command{
	Use:   "destroy [tab-id]",
	Short: "Drop a tab's entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheDestroy,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tabs with an entry",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the stored user options",
	Args:  cobra.NoArgs,
	RunE:  runCacheOptions,
}

// Merge flags.
var (
	mergeCaseID       string
	mergeDocketNumber string
	mergeDocID        string
	mergeDocCases     []string
	mergeAttachments  []string
)

var cacheGetJSON bool

func init() {
	cacheMergeCmd.Flags().StringVar(&mergeCaseID, "case-id", "", "case the tab is browsing")
	cacheMergeCmd.Flags().StringVar(&mergeDocketNumber, "docket-number", "", "docket number of the case")
	cacheMergeCmd.Flags().StringVar(&mergeDocID, "doc-id", "", "last document seen in the tab")
	cacheMergeCmd.Flags().StringArrayVar(&mergeDocCases, "doc-case", nil, "document to case mapping, as DOC=CASE")
	cacheMergeCmd.Flags().StringArrayVar(&mergeAttachments, "attachment", nil, "document to attachment number, as DOC=N")
	cacheGetCmd.Flags().BoolVar(&cacheGetJSON, "json", false, "output as JSON")

	cacheCmd.AddCommand(cacheGetCmd)
	cacheCmd.AddCommand(cacheMergeCmd)
	cacheCmd.AddCommand(cacheDestroyCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheOptionsCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheGet(cmd *cobra.Command, args []string) error {
	if tabCacheService == nil {
		return fmt.Errorf("tab cache: %w", errNotConfigured)
	}

	entry, err := tabCacheService.Get(context.Background(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Printf("No entry for tab: %s\n", args[0])
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get tab: %w", err)
	}

	if cacheGetJSON {
		return outputJSON(cmd, entry)
	}

	cmd.Printf("Tab %s:\n", args[0])
	printIdentifier(cmd, "Case ID", string(entry.CaseID))
	printIdentifier(cmd, "Docket Number", string(entry.DocketNumber))
	printIdentifier(cmd, "Last Document", string(entry.DocID))

	if len(entry.DocsToCases) > 0 {
		cmd.Println("  Documents:")
		for _, doc := range sortedKeys(entry.DocsToCases) {
			line := fmt.Sprintf("    %s -> case %s", doc, entry.DocsToCases[doc])
			if att, ok := entry.DocsToAttachmentNumbers[doc]; ok {
				line += fmt.Sprintf(", attachment %s", att)
			}
			cmd.Println(line)
		}
	}
	return nil
}

func runCacheMerge(cmd *cobra.Command, args []string) error {
	if tabCacheService == nil {
		return fmt.Errorf("tab cache: %w", errNotConfigured)
	}

	patch, err := buildPatch()
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errors.New("nothing to merge: pass at least one identifier flag")
	}

	if err := tabCacheService.Merge(context.Background(), args[0], patch); err != nil {
		return fmt.Errorf("failed to merge: %w", err)
	}
	cmd.Printf("Merged into tab: %s\n", args[0])
	return nil
}

func runCacheDestroy(cmd *cobra.Command, args []string) error {
	if tabCacheService == nil {
		return fmt.Errorf("tab cache: %w", errNotConfigured)
	}

	if err := tabCacheService.Destroy(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to destroy tab: %w", err)
	}
	if navigationService != nil {
		navigationService.Forget(args[0])
	}
	cmd.Printf("Destroyed tab: %s\n", args[0])
	return nil
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	if tabCacheService == nil {
		return fmt.Errorf("tab cache: %w", errNotConfigured)
	}

	tabs, err := tabCacheService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list tabs: %w", err)
	}
	if len(tabs) == 0 {
		cmd.Println("No tabs found.")
		return nil
	}
	for _, tab := range tabs {
		cmd.Println(tab)
	}
	return nil
}

func runCacheOptions(cmd *cobra.Command, _ []string) error {
	if tabCacheService == nil {
		return fmt.Errorf("tab cache: %w", errNotConfigured)
	}

	opts, err := tabCacheService.Options(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read options: %w", err)
	}
	return outputJSON(cmd, opts)
}

// buildPatch turns the merge flags into a patch.
func buildPatch() (domain.TabCachePatch, error) {
	var patch domain.TabCachePatch
	if mergeCaseID != "" {
		patch.CaseID = domain.CaseIDPtr(domain.CaseID(mergeCaseID))
	}
	if mergeDocketNumber != "" {
		patch.DocketNumber = domain.DocketNumberPtr(domain.DocketNumber(mergeDocketNumber))
	}
	if mergeDocID != "" {
		patch.DocID = domain.DocumentIDPtr(domain.DocumentID(mergeDocID))
	}

	for _, pair := range mergeDocCases {
		doc, value, err := splitPair(pair)
		if err != nil {
			return patch, fmt.Errorf("--doc-case: %w", err)
		}
		if patch.DocsToCases == nil {
			patch.DocsToCases = make(map[domain.DocumentID]domain.CaseID)
		}
		patch.DocsToCases[domain.DocumentID(doc)] = domain.CaseID(value)
	}
	for _, pair := range mergeAttachments {
		doc, value, err := splitPair(pair)
		if err != nil {
			return patch, fmt.Errorf("--attachment: %w", err)
		}
		if patch.DocsToAttachmentNumbers == nil {
			patch.DocsToAttachmentNumbers = make(map[domain.DocumentID]domain.AttachmentNumber)
		}
		patch.DocsToAttachmentNumbers[domain.DocumentID(doc)] = domain.AttachmentNumber(value)
	}
	return patch, nil
}

func splitPair(pair string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return "", "", fmt.Errorf("%w: expected KEY=VALUE, got %q", domain.ErrInvalidInput, pair)
	}
	return key, value, nil
}

func printIdentifier(cmd *cobra.Command, name, value string) {
	if value == "" {
		value = "(unknown)"
	}
	cmd.Printf("  %s: %s\n", name, value)
}

func sortedKeys(m map[domain.DocumentID]domain.CaseID) []domain.DocumentID {
	keys := make([]domain.DocumentID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
