package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, CategoryInterested, Classify("Interested"))
	assert.Equal(t, CategoryInterested, Classify("  interested  "))
	assert.Equal(t, CategoryNotInterested, Classify("Not Interested"))
	assert.Equal(t, CategoryOutOfOffice, Classify("Out of office until Monday"))
	assert.Equal(t, CategoryOutOfOffice, Classify("OOO - back next week"))
	assert.Equal(t, CategoryOther, Classify("Information Request"))
	assert.Equal(t, CategoryOther, Classify(""))
}

func TestClassify_NotInterestedNeverMatchesInterested(t *testing.T) {
	// "not interested" contains "interested"; the exact-match cases must win.
	assert.Equal(t, CategoryNotInterested, Classify("not interested"))
}

func TestRevenueBand_Numeric(t *testing.T) {
	assert.Equal(t, RevenueSmall, RevenueBand("500000"))
	assert.Equal(t, RevenueSmall, RevenueBand("$750,000"))
	assert.Equal(t, RevenueMedium, RevenueBand("2500000"))
	assert.Equal(t, RevenueLarge, RevenueBand("$45,000,000"))
	assert.Equal(t, RevenueEnterprise, RevenueBand("250000000"))
}

func TestRevenueBand_AbbreviatedValuesStripToDigits(t *testing.T) {
	// "$2.5M" strips to 2.5; the numeric path wins over the M suffix, so
	// abbreviated values land in the small band. Matches the hosted grid.
	assert.Equal(t, RevenueSmall, RevenueBand("$2.5M"))
	assert.Equal(t, RevenueSmall, RevenueBand("1.2B"))
}

func TestRevenueBand_TextualMarkers(t *testing.T) {
	assert.Equal(t, RevenueMedium, RevenueBand("several million"))
	assert.Equal(t, RevenueEnterprise, RevenueBand("billions"))
	assert.Equal(t, Unknown, RevenueBand(""))
	assert.Equal(t, Unknown, RevenueBand("undisclosed"))
}

func TestCompanyAgeBand(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, AgeStartup, CompanyAgeBand("2023", now))
	assert.Equal(t, AgeStartup, CompanyAgeBand("2020", now)) // exactly 5 yrs
	assert.Equal(t, AgeGrowth, CompanyAgeBand("2015", now))
	assert.Equal(t, AgeMature, CompanyAgeBand("1998", now))
	assert.Equal(t, AgeEstablished, CompanyAgeBand("1985", now))
	assert.Equal(t, Unknown, CompanyAgeBand("", now))
	assert.Equal(t, Unknown, CompanyAgeBand("unknown", now))
	assert.Equal(t, Unknown, CompanyAgeBand("-5", now))
}
