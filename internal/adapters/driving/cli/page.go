package cli

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/dom"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
)

// pageFlags describe the page load a saved HTML file came from.
type pageFlags struct {
	url      string
	referrer string
	cookie   string
	tab      string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.url, "url", "u", "", "URL the page was loaded from (required)")
	cmd.Flags().StringVar(&f.referrer, "referrer", "", "URL of the page that linked here")
	cmd.Flags().StringVar(&f.cookie, "cookie", "", "document cookie string")
	cmd.Flags().StringVarP(&f.tab, "tab", "t", "", "tab id shared by related pages (default: a new id)")
	_ = cmd.MarkFlagRequired("url")
}

// context builds the page context without a document.
func (f *pageFlags) context() (driving.PageContext, error) {
	if f.url == "" {
		return driving.PageContext{}, errors.New("--url is required")
	}
	u, err := url.Parse(f.url)
	if err != nil {
		return driving.PageContext{}, fmt.Errorf("invalid --url: %w", err)
	}
	tab := f.tab
	if tab == "" {
		tab = uuid.NewString()
	}
	page := driving.PageContext{
		TabID:    tab,
		URL:      f.url,
		Path:     u.Path,
		Referrer: f.referrer,
		Cookie:   f.cookie,
	}
	if navigationService != nil {
		page.Generation = navigationService.Navigate(tab)
	}
	return page, nil
}

// stdinPath names standard input as the page file.
const stdinPath = "-"

// load builds the page context for the HTML file at path, or for the
// HTML on the command's input when path is "-".
func (f *pageFlags) load(cmd *cobra.Command, path string) (driving.PageContext, error) {
	page, err := f.context()
	if err != nil {
		return page, err
	}

	var doc driven.Document
	if path == stdinPath {
		doc, err = dom.Parse(cmd.InOrStdin())
	} else {
		doc, err = dom.ParseFile(path)
	}
	if err != nil {
		return page, err
	}
	page.Document = doc
	return page, nil
}
