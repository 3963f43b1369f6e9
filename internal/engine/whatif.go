package engine

import (
	"math"

	"github.com/propfin/affordability/internal/config"
	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/emi"
	"github.com/propfin/affordability/pkg/foir"
	"github.com/propfin/affordability/pkg/mathutil"
)

// ScenarioMetrics is a before/after snapshot for one scenario.
type ScenarioMetrics struct {
	FOIR             float64 `json:"foir,omitempty" yaml:"foir,omitempty"`
	MaxLoan          float64 `json:"maxLoan,omitempty" yaml:"maxLoan,omitempty"`
	DownPayment      float64 `json:"downPayment,omitempty" yaml:"downPayment,omitempty"`
	MaxPropertyPrice float64 `json:"maxPropertyPrice,omitempty" yaml:"maxPropertyPrice,omitempty"`
}

// Improvement reports the scenario's deltas as percentages or points.
type Improvement struct {
	FOIRReduction       float64 `json:"foirReduction,omitempty" yaml:"foirReduction,omitempty"`
	LoanIncrease        float64 `json:"loanIncrease,omitempty" yaml:"loanIncrease,omitempty"`
	DownPaymentIncrease float64 `json:"downPaymentIncrease,omitempty" yaml:"downPaymentIncrease,omitempty"`
	PropertyIncrease    float64 `json:"propertyIncrease,omitempty" yaml:"propertyIncrease,omitempty"`
}

// Scenario is one what-if projection on a modified copy of the profile.
type Scenario struct {
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Current     ScenarioMetrics `json:"current" yaml:"current"`
	Projected   ScenarioMetrics `json:"projected" yaml:"projected"`
	Improvement Improvement     `json:"improvement" yaml:"improvement"`
	Effort      string          `json:"effort" yaml:"effort"`
	Timeline    string          `json:"timeline" yaml:"timeline"`
}

// GenerateWhatIfScenarios re-runs the affordability math on modified copies
// of the profile: existing EMIs halved, and the down payment doubled up to
// the cap. The input profile is never mutated. Scenarios that would produce
// degenerate numbers are omitted.
func GenerateWhatIfScenarios(profile *config.FinancialProfile, currentFOIR, maxPropertyPrice float64) []Scenario {
	var scenarios []Scenario

	if profile.ExistingEMIs > 0 {
		modified := *profile
		modified.ExistingEMIs = profile.ExistingEMIs * 0.5

		income := modified.TotalMonthlyIncome()
		obligations := modified.TotalMonthlyObligations()
		newFOIR := foir.Compute(income, obligations)
		newMaxLoan := emi.MaxLoanAmount(income, obligations, profile.InterestRate, profile.LoanTenure)
		currentLoan := maxPropertyPrice - profile.DownPayment

		if currentLoan > 0 && newMaxLoan > 0 {
			scenarios = append(scenarios, Scenario{
				Title:       "Reduce Existing EMIs by 50%",
				Description: "What if you reduce your current EMIs?",
				Current:     ScenarioMetrics{FOIR: currentFOIR, MaxLoan: currentLoan},
				Projected:   ScenarioMetrics{FOIR: newFOIR, MaxLoan: newMaxLoan},
				Improvement: Improvement{
					FOIRReduction: mathutil.RoundTenth(currentFOIR - newFOIR),
					LoanIncrease:  mathutil.RoundTenth((newMaxLoan - currentLoan) / currentLoan * 100),
				},
				Effort:   "medium",
				Timeline: "3-6 months",
			})
		}
	}

	if profile.DownPayment > 0 && profile.DownPayment < constants.DownPaymentCap && maxPropertyPrice > 0 {
		increased := math.Min(profile.DownPayment*2, constants.DownPaymentCap)
		// The loan component is unchanged, so the property price moves by
		// exactly the down-payment delta.
		newMaxPropertyPrice := (maxPropertyPrice - profile.DownPayment) + increased

		scenarios = append(scenarios, Scenario{
			Title:       "Double Your Down Payment",
			Description: "What if you increase your down payment?",
			Current:     ScenarioMetrics{DownPayment: profile.DownPayment, MaxPropertyPrice: maxPropertyPrice},
			Projected:   ScenarioMetrics{DownPayment: increased, MaxPropertyPrice: newMaxPropertyPrice},
			Improvement: Improvement{
				DownPaymentIncrease: mathutil.RoundTenth((increased - profile.DownPayment) / profile.DownPayment * 100),
				PropertyIncrease:    mathutil.RoundTenth((newMaxPropertyPrice - maxPropertyPrice) / maxPropertyPrice * 100),
			},
			Effort:   "high",
			Timeline: "6-12 months",
		})
	}

	return scenarios
}
