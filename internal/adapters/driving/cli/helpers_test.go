package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/recap-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/services"
)

// stubArchive reports every queried document as archived.
type stubArchive struct{}

func (stubArchive) DocketAvailability(_ context.Context, q domain.DocketQuery) ([]domain.ArchivedDocket, error) {
	return []domain.ArchivedDocket{{AbsoluteURL: "/docket/" + string(q.CaseID) + "/"}}, nil
}

func (stubArchive) DocumentAvailability(_ context.Context, q domain.DocumentQuery) ([]domain.ArchivedDocument, error) {
	out := make([]domain.ArchivedDocument, 0, len(q.DocumentIDs))
	for _, id := range q.DocumentIDs {
		out = append(out, domain.ArchivedDocument{DocumentID: id, FilepathLocal: "recap/" + string(id) + ".pdf"})
	}
	return out, nil
}

// setupTestServices installs services backed by in-memory stores.
func setupTestServices() func() {
	old := Services{
		Classifier:   classifierService,
		Resolver:     resolverService,
		TabCache:     tabCacheService,
		Watch:        watchService,
		Availability: availabilityService,
		Navigation:   navigationService,
		Settings:     settingsService,
		Config:       configStore,
	}
	oldReady := servicesReady

	cfg := memory.NewConfigStore()
	cache := services.NewTabCacheService(memory.NewKeyValueStore(), time.Second)
	classifier := services.NewClassifier()
	navigation := services.NewNavigationTracker()
	resolver := services.NewResolver(cache,
		services.WithClassifier(classifier),
		services.WithNavigationTracker(navigation),
		services.WithOptionsStore(cache))
	SetServices(Services{
		Classifier:   classifier,
		Resolver:     resolver,
		TabCache:     cache,
		Watch:        services.NewWatcher(classifier, resolver),
		Availability: services.NewAvailabilityService(stubArchive{}, resolver),
		Navigation:   navigation,
		Settings:     services.NewSettingsService(cfg),
		Config:       cfg,
	})

	return func() {
		SetServices(old)
		servicesReady = oldReady
		resetFlags()
	}
}

// resetFlags clears flag values left behind by an earlier Execute.
func resetFlags() {
	classifyPage, resolvePage, watchPage, availabilityPage = pageFlags{}, pageFlags{}, pageFlags{}, pageFlags{}
	classifyExplain, classifyJSON, resolveJSON, availabilityJSON, cacheGetJSON = false, false, false, false, false
	mergeCaseID, mergeDocketNumber, mergeDocID = "", "", ""
	mergeDocCases, mergeAttachments = nil, nil
	watchKind, watchTimeout = "", 30*time.Second
	versionVerbose = false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// writePage saves html to a temp file and returns its path.
func writePage(t *testing.T, html string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0600))
	return path
}

const (
	docURL    = "https://ecf.dcd.uscourts.gov/doc1/04513837920"
	docketURL = "https://ecf.dcd.uscourts.gov/cgi-bin/DktRpt.pl?591030040473392-L_1_0-1"

	attachmentMenu = `<html><body>
		<form onsubmit="goDLS('/doc1/04513837920','178502','5','','','1','','');">
			<table>
				<tr><td><input type="checkbox"></td><td>1</td><td><a href="/doc1/04503837921">View</a></td><td>Exhibit A</td><td>2 pages</td></tr>
			</table>
			<input type="button" value="Download All">
		</form></body></html>`

	docketReport = `<html><body>
		<input type="hidden" name="caseId" value="178502">
		<table>
			<tr><td>01/02/2020</td><td><a href="/doc1/04513837920">5</a></td><td>Motion</td></tr>
		</table></body></html>`
)
