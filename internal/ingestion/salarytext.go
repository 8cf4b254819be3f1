package ingestion

import (
	"regexp"
	"strconv"
	"strings"
)

// marketCorrectionFactor converts USD-denominated posting ranges (in
// thousands) to local-currency lakh-per-annum figures. Direct conversion
// overshoots badly, so a purchasing-power style correction is applied.
const marketCorrectionFactor = 0.25

var nonSalaryChars = regexp.MustCompile(`[^\d\-]`)

// ParseSalaryRange parses free-text ranges like "$60k - $100k" into raw
// low/high thousands. Unparseable input returns (0, 0); callers fall back
// to the title-based estimate.
func ParseSalaryRange(s string) (low, high float64) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0
	}

	clean := nonSalaryChars.ReplaceAllString(s, "")
	if strings.Contains(clean, "-") {
		parts := strings.SplitN(clean, "-", 2)
		lo, err1 := strconv.ParseFloat(parts[0], 64)
		hi, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0, 0
		}
		return lo, hi
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, 0
	}
	return v, v
}

// EstimateSalaryByTitle returns a realistic local-currency band when the
// posting carries no parseable salary. Seniority keywords first, then
// domain keywords, then a mid-level default.
func EstimateSalaryByTitle(title string) (low, high float64) {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "senior") || strings.Contains(t, "lead"):
		return 18, 35
	case strings.Contains(t, "junior") || strings.Contains(t, "intern"):
		return 4, 8
	case strings.Contains(t, "manager") || strings.Contains(t, "director"):
		return 25, 50
	case strings.Contains(t, "data") || strings.Contains(t, "machine"):
		return 10, 22
	default:
		return 8, 18
	}
}

// NormalizeSalary resolves a posting's salary to one scalar: parsed range
// midpoint with the market correction applied, or the title-based
// estimate midpoint when parsing yields nothing.
func NormalizeSalary(salaryText, title string) float64 {
	low, high := ParseSalaryRange(salaryText)
	if low > 0 {
		low *= marketCorrectionFactor
		high *= marketCorrectionFactor
	} else {
		low, high = EstimateSalaryByTitle(title)
	}
	return (low + high) / 2
}
