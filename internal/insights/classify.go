package insights

import (
	"strconv"
	"strings"
	"time"
)

// Category is the closed classification of a reply's free-text category.
type Category int

const (
	CategoryInterested Category = iota
	CategoryNotInterested
	CategoryOutOfOffice
	CategoryOther
)

// Classify maps a raw category string onto the closed set. Matching is
// case-insensitive: exact "interested" / "not interested", substring for
// out-of-office markers, everything else is Other. The exact-equality cases
// run first so "not interested" never lands in Interested.
func Classify(raw string) Category {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "interested":
		return CategoryInterested
	case s == "not interested":
		return CategoryNotInterested
	case strings.Contains(s, "out of office"), strings.Contains(s, "ooo"):
		return CategoryOutOfOffice
	default:
		return CategoryOther
	}
}

// Revenue bands derived from the free-text annual_revenue column.
const (
	RevenueSmall      = "Small (<$1M)"
	RevenueMedium     = "Medium ($1M-$10M)"
	RevenueLarge      = "Large ($10M-$100M)"
	RevenueEnterprise = "Enterprise ($100M+)"
)

// Company-age bands derived from year_founded.
const (
	AgeStartup     = "Startup (0-5 yrs)"
	AgeGrowth      = "Growth (6-15 yrs)"
	AgeMature      = "Mature (16-30 yrs)"
	AgeEstablished = "Established (30+ yrs)"
)

// Unknown is the sentinel bucket for missing or unparseable dimension values.
const Unknown = "Unknown"

// revenueOrder fixes the display ordering of revenue bands, Unknown last.
var revenueOrder = map[string]int{
	RevenueSmall:      0,
	RevenueMedium:     1,
	RevenueLarge:      2,
	RevenueEnterprise: 3,
	Unknown:           4,
}

// ageOrder fixes the display ordering of company-age bands, Unknown last.
var ageOrder = map[string]int{
	AgeStartup:     0,
	AgeGrowth:      1,
	AgeMature:      2,
	AgeEstablished: 3,
	Unknown:        4,
}

// RevenueBand buckets a free-text annual revenue value. The numeric path
// strips everything but digits and the decimal point; when nothing numeric
// survives, textual "million"/"m" and "billion"/"b" markers decide.
func RevenueBand(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Unknown
	}

	if n, ok := numericPart(s); ok {
		switch {
		case n < 1_000_000:
			return RevenueSmall
		case n < 10_000_000:
			return RevenueMedium
		case n < 100_000_000:
			return RevenueLarge
		default:
			return RevenueEnterprise
		}
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "million") || strings.Contains(lower, "m") {
		return RevenueMedium
	}
	if strings.Contains(lower, "billion") || strings.Contains(lower, "b") {
		return RevenueEnterprise
	}
	return Unknown
}

func numericPart(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CompanyAgeBand buckets a year_founded string by company age relative to
// now. Unparseable years fall into Unknown.
func CompanyAgeBand(yearFounded string, now time.Time) string {
	year, err := strconv.Atoi(strings.TrimSpace(yearFounded))
	if err != nil || year <= 0 {
		return Unknown
	}
	age := now.Year() - year
	switch {
	case age <= 5:
		return AgeStartup
	case age <= 15:
		return AgeGrowth
	case age <= 30:
		return AgeMature
	default:
		return AgeEstablished
	}
}
