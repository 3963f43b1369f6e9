// Package scoring implements the applicant scoring models: home-buying
// readiness, savings health, and lender risk assessment.
package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/propfin/affordability/pkg/constants"
)

var creditRangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)

// ParseCreditScore converts a credit band string such as "700-749" into a
// numeric score using the range's lower bound. Applicants who do not know
// their score are assumed to sit at the fair/good boundary. Unparseable
// input returns 0.
func ParseCreditScore(band string) int {
	normalized := strings.ToLower(strings.TrimSpace(band))
	if strings.Contains(normalized, "don't know") || strings.Contains(normalized, "dont know") {
		return constants.UnknownCreditScore
	}
	match := creditRangePattern.FindStringSubmatch(band)
	if match == nil {
		return 0
	}
	lower, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return lower
}

// StrictReadiness scores home-buying readiness by deducting penalty points
// from 100 across four factors: obligation load, age, work experience, and
// credit score. The floor is 0.
func StrictReadiness(age, workExperienceYears int, creditBand string, foirPercent float64) int {
	score := 100

	switch {
	case foirPercent <= 30:
		// no deduction
	case foirPercent <= 40:
		score -= 10
	case foirPercent <= 50:
		score -= 25
	case foirPercent <= 60:
		score -= 45
	default:
		score -= 70
	}

	switch {
	case age >= 25 && age <= 45:
		// prime lending age
	case age >= 18 && age <= 24:
		score -= 15
	case age >= 46 && age <= 60:
		score -= 10
	default:
		score -= 25
	}

	switch {
	case workExperienceYears >= 3:
		// no deduction
	case workExperienceYears >= 1:
		score -= 10
	default:
		score -= 20
	}

	creditScore := ParseCreditScore(creditBand)
	switch {
	case creditScore >= 750:
		// no deduction
	case creditScore >= 650:
		score -= 15
	case creditScore >= 550:
		score -= 30
	default:
		score -= 50
	}

	if score < 0 {
		score = 0
	}
	return score
}

// WeightedInput carries the quick-estimate readiness factors.
type WeightedInput struct {
	IncomeStability  string  // "high", "medium", or "low"
	CreditBand       string  // "excellent", "good", "fair", or "poor"
	DownPayment      float64
	MaxPropertyPrice float64
	Age              int
}

// WeightedReadiness scores readiness additively across four 25-point
// categories, capped at 100. Unlike StrictReadiness it rewards factors
// rather than penalizing their absence, matching the quick-estimate product.
func WeightedReadiness(in WeightedInput) int {
	score := 0

	switch strings.ToLower(in.IncomeStability) {
	case "high":
		score += 25
	case "medium":
		score += 15
	default:
		score += 5
	}

	switch strings.ToLower(in.CreditBand) {
	case "excellent":
		score += 25
	case "good":
		score += 20
	case "fair":
		score += 10
	default:
		score += 5
	}

	downPaymentShare := 0.0
	if in.MaxPropertyPrice > 0 {
		downPaymentShare = in.DownPayment / in.MaxPropertyPrice
	}
	switch {
	case downPaymentShare >= 0.20:
		score += 25
	case downPaymentShare >= 0.15:
		score += 20
	case downPaymentShare >= 0.10:
		score += 15
	default:
		score += 10
	}

	switch {
	case in.Age >= 28 && in.Age <= 45:
		score += 25
	case in.Age >= 25 && in.Age <= 50:
		score += 20
	case in.Age >= 22 && in.Age <= 55:
		score += 15
	default:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Status pairs a score band label with its applicant-facing description.
type Status struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// ReadinessStatus maps a readiness score to its band.
func ReadinessStatus(score int) Status {
	switch {
	case score >= 80:
		return Status{Label: "Excellent", Description: "Ready to buy"}
	case score >= 60:
		return Status{Label: "Good", Description: "Nearly ready"}
	case score >= 40:
		return Status{Label: "Fair", Description: "Needs improvement"}
	case score >= 20:
		return Status{Label: "Poor", Description: "Significant work needed"}
	default:
		return Status{Label: "Critical", Description: "Not ready"}
	}
}
