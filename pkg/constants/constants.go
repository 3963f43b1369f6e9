// Package constants provides shared constants for the affordability engine.
package constants

// Loan math constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier converts fractions to percentages
	PercentageMultiplier = 100.0

	// MinInterestRate is the lowest annual home-loan rate accepted from a
	// profile, in percent
	MinInterestRate = 7.5

	// MaxInterestRate is the highest annual home-loan rate accepted from a
	// profile, in percent
	MaxInterestRate = 12.0

	// VariationRateDown is the rate offset for the optimistic flexible-loan
	// EMI, in percentage points
	VariationRateDown = 2.0

	// VariationRateUp is the rate offset for the pessimistic flexible-loan
	// EMI, in percentage points
	VariationRateUp = 3.0
)

// Scoring constants
const (
	// ExpenseRatio is the share of income assumed spent each month when
	// sizing an emergency fund
	ExpenseRatio = 0.6

	// UnknownCreditScore is the CIBIL score assumed when the applicant does
	// not know their band
	UnknownCreditScore = 650

	// LowIncomeThreshold is the monthly income below which the risk
	// assessment flags an income factor
	LowIncomeThreshold = 50000.0
)

// What-if scenario constants
const (
	// DownPaymentCap bounds the doubled down payment in the savings scenario
	DownPaymentCap = 1000000.0

	// MinDownPaymentShare is the mandatory buyer contribution as a fraction
	// of the property price
	MinDownPaymentShare = 0.20
)

// Projection constants
const (
	// DefaultIncomeGrowthRate is the assumed annual income growth in percent
	DefaultIncomeGrowthRate = 8.0

	// DefaultProjectionYears is the horizon for income-versus-EMI projections
	DefaultProjectionYears = 5

	// RentEscalationRate is the assumed year-over-year rent increase as a
	// fraction
	RentEscalationRate = 0.05
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Calculator product constants
const (
	// ProductDetailed is the full affordability calculator
	ProductDetailed = "detailed"

	// ProductQuick is the quick affordability estimate
	ProductQuick = "quick"

	// ProductComparison is the full-payment-versus-loan comparison
	ProductComparison = "comparison"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation bounds
const (
	// MinApplicantAge and MaxApplicantAge bound the accepted applicant age
	MinApplicantAge = 18
	MaxApplicantAge = 70

	// MaxWorkExperienceYears bounds the accepted work experience
	MaxWorkExperienceYears = 50

	// MinTenureYears and MaxTenureYears bound the accepted loan tenure
	MinTenureYears = 1
	MaxTenureYears = 30
)
