package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/recap-cli/internal/core/ports/driving"
	"github.com/custodia-labs/recap-cli/internal/logger"
	"github.com/custodia-labs/recap-cli/internal/pacer"
)

var availabilityLog = logger.Named("availability")

// Ensure AvailabilityService implements the interface.
var _ driving.AvailabilityService = (*AvailabilityService)(nil)

// AvailabilityService asks the archive about a page's docket and documents.
type AvailabilityService struct {
	archive   driven.ArchiveClient
	resolver  driving.ResolverService
	harvester *LinkHarvester
}

// NewAvailabilityService creates the service. A nil archive makes every
// check return domain.ErrArchiveUnavailable.
func NewAvailabilityService(archive driven.ArchiveClient, resolver driving.ResolverService) *AvailabilityService {
	return &AvailabilityService{
		archive:   archive,
		resolver:  resolver,
		harvester: NewLinkHarvester(),
	}
}

// Check resolves the page, then queries the archive with whatever
// identifiers were found. Pages without a court are rejected by the
// resolver before anything is sent.
func (s *AvailabilityService) Check(ctx context.Context, page driving.PageContext) (*domain.Availability, error) {
	if s.archive == nil {
		return nil, domain.ErrArchiveUnavailable
	}

	ids, err := s.resolver.Resolve(ctx, page)
	if err != nil {
		return nil, err
	}
	out := &domain.Availability{Identifiers: ids}
	if ids.Court == "" {
		return out, nil
	}
	court := domain.ConvertToArchiveCourt(ids.Court)

	docket := domain.DocketQuery{Court: court, CaseID: ids.CaseID}
	if docket.CaseID == "" {
		docket.DocketNumberCore = pacer.DocketNumberCore(ids.DocketNumber)
	}
	if docket.CaseID != "" || docket.DocketNumberCore != "" {
		dockets, err := s.archive.DocketAvailability(ctx, docket)
		if err != nil {
			return nil, fmt.Errorf("docket availability: %w", err)
		}
		switch n := len(dockets); {
		case n == 0:
			availabilityLog.Debug("no docket for %s in %s", ids.CaseID, court)
		case n > 1:
			availabilityLog.Warn("%d dockets match %s in %s", n, ids.CaseID, court)
		}
		out.Dockets = dockets
	}

	if domain.IsAppellateCourt(ids.Court) {
		if link, ok := districtLink(page); ok {
			dockets, err := s.archive.DocketAvailability(ctx, domain.DocketQuery{
				Court:            domain.ConvertToArchiveCourt(link.Court),
				DocketNumberCore: link.Core,
			})
			if err != nil {
				return nil, fmt.Errorf("district docket availability: %w", err)
			}
			out.DistrictDockets = dockets
		}
	}

	docIDs := s.harvester.Harvest(page, ids.CaseID).DocumentIDs
	if ids.DocumentID != "" && !containsDocument(docIDs, ids.DocumentID) {
		docIDs = append([]domain.DocumentID{ids.DocumentID}, docIDs...)
	}
	if len(docIDs) > 0 {
		docs, err := s.archive.DocumentAvailability(ctx, domain.DocumentQuery{Court: court, DocumentIDs: docIDs})
		if err != nil {
			return nil, fmt.Errorf("document availability: %w", err)
		}
		out.Documents = docs
	}
	return out, nil
}

// districtLink finds the link an appellate docket gives to the district
// case it originates from. The last such link wins.
func districtLink(page driving.PageContext) (pacer.DistrictLink, bool) {
	var found pacer.DistrictLink
	ok := false
	for _, a := range find(page, "a[href]") {
		href, _ := a.Attr("href")
		link, isLink := pacer.DistrictLinkData(href)
		if !isLink || link.Core == "" || domain.IsAppellateCourt(link.Court) {
			continue
		}
		found, ok = link, true
	}
	return found, ok
}

func containsDocument(ids []domain.DocumentID, id domain.DocumentID) bool {
	for _, d := range ids {
		if d == id {
			return true
		}
	}
	return false
}
