package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/dom"
	"github.com/custodia-labs/recap-cli/internal/adapters/driven/observer"
	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

var (
	watchPage    pageFlags
	watchKind    string
	watchTimeout time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Wait for a page to finish rendering, then resolve it",
	Long: `Watches a saved HTML file that is still being written, such as a page
dumped repeatedly by a browser automation script. Once the page classifies
as the wanted kind (any known kind by default) it is resolved.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchPage.register(watchCmd)
	watchCmd.Flags().StringVarP(&watchKind, "kind", "k", "", "page kind to wait for")
	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", 30*time.Second, "give up after this long")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchService == nil {
		return fmt.Errorf("watcher: %w", errNotConfigured)
	}

	var want domain.PageKind
	if watchKind != "" {
		if want = domain.ParsePageKind(watchKind); want == domain.PageKindUnknown {
			return fmt.Errorf("%w: unknown page kind %q", domain.ErrInvalidInput, watchKind)
		}
	}
	page, err := watchPage.context()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), watchTimeout)
	defer cancel()

	obs := observer.NewFileObserver(args[0], dom.Parse)
	result, err := watchService.Watch(ctx, page, obs, want)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("page did not match within %s", watchTimeout)
	}
	if err != nil {
		return fmt.Errorf("failed to watch page: %w", err)
	}

	cmd.Printf("%s (rule %s)\n", result.Classification.Kind.Description(), result.Classification.Rule)
	cmd.Printf("Tab: %s\n", page.TabID)
	printIdentifiers(cmd, result.Identifiers)
	return nil
}
