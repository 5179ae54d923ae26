package pacer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/recap-cli/internal/core/domain"
)

func TestDocketNumberCore(t *testing.T) {
	tests := []struct {
		in   domain.DocketNumber
		want domain.DocketNumberCore
	}{
		{"2:12-cv-01032-JKG-MJL", "1201032"},
		{"12-cv-1032", "1201032"},
		{"12-33112", "12033112"},
		{"12-0001", "12000001"},
		{"06-10672-DHW", "06010672"},
		{"2:12–cv–01032", "1201032"},
		{"", ""},
		{"not a docket", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, DocketNumberCore(tt.in))
		})
	}
}

func TestNormalizeDashes(t *testing.T) {
	assert.Equal(t, "12-cv-1032", NormalizeDashes("12–cv—1032"))
	assert.Equal(t, "12-cv-1032", NormalizeDashes("12-cv-1032"))
}

func TestDistrictLinkData(t *testing.T) {
	link, ok := DistrictLinkData("https://ecf.dcd.uscourts.gov/cgi-bin/iquery.pl?caseNumber=1:16-cv-00745-ESH")
	assert.True(t, ok)
	assert.Equal(t, DistrictLink{Court: "dcd", Core: "1600745"}, link)

	link, ok = DistrictLinkData("https://ecf.dcd.uscourts.gov/cgi-bin/DktRpt.pl?178502")
	assert.True(t, ok)
	assert.Empty(t, link.Core)

	_, ok = DistrictLinkData("https://example.com/?caseNumber=1:16-cv-00745")
	assert.False(t, ok)
}
