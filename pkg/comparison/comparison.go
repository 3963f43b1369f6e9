// Package comparison analyzes a property purchase financed by a loan against
// investing the remaining cash: loan servicing cost, investment growth,
// optional rental income, property appreciation, and final net worth.
package comparison

import (
	"fmt"
	"math"

	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/emi"
	"github.com/propfin/affordability/pkg/format"
	"github.com/propfin/affordability/pkg/mathutil"
)

// Input holds the purchase scenario under analysis.
type Input struct {
	PropertyPrice        float64 `json:"propertyPrice" yaml:"propertyPrice"`
	AvailableCash        float64 `json:"availableCash" yaml:"availableCash"`
	Contribution         float64 `json:"contribution" yaml:"contribution"`
	InterestRate         float64 `json:"interestRate" yaml:"interestRate"`
	TenureYears          int     `json:"tenureYears" yaml:"tenureYears"`
	InvestmentGrowthRate float64 `json:"investmentGrowthRate" yaml:"investmentGrowthRate"`
	AppreciationRate     float64 `json:"appreciationRate" yaml:"appreciationRate"`
	GivenOnRent          bool    `json:"givenOnRent" yaml:"givenOnRent"`
	RentPercentage       float64 `json:"rentPercentage" yaml:"rentPercentage"`
}

// Result holds the full purchase-versus-invest breakdown.
type Result struct {
	PropertyPrice        float64        `json:"propertyPrice" yaml:"propertyPrice"`
	AvailableCash        float64        `json:"availableCash" yaml:"availableCash"`
	Contribution         float64        `json:"contribution" yaml:"contribution"`
	CashLeft             float64        `json:"cashLeft" yaml:"cashLeft"`
	LoanComponent        float64        `json:"loanComponent" yaml:"loanComponent"`
	EMI                  float64        `json:"emi" yaml:"emi"`
	TenureYears          int            `json:"tenureYears" yaml:"tenureYears"`
	TotalInterest        float64        `json:"totalInterest" yaml:"totalInterest"`
	TotalPaid            float64        `json:"totalPaid" yaml:"totalPaid"`
	InitialRentAmount    float64        `json:"initialRentAmount" yaml:"initialRentAmount"`
	TotalRentIncome      float64        `json:"totalRentIncome" yaml:"totalRentIncome"`
	PropertyAppreciation float64        `json:"propertyAppreciation" yaml:"propertyAppreciation"`
	GainLossFromProperty float64        `json:"gainLossFromProperty" yaml:"gainLossFromProperty"`
	InvestmentValue      float64        `json:"investmentValue" yaml:"investmentValue"`
	FinalNetWorth        float64        `json:"finalNetWorth" yaml:"finalNetWorth"`
	Recommendation       Recommendation `json:"recommendation" yaml:"recommendation"`
}

// Recommendation is the verdict with its explanation and any extra insights.
type Recommendation struct {
	Verdict     string `json:"verdict" yaml:"verdict"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Insights    string `json:"insights,omitempty" yaml:"insights,omitempty"`
}

// MinContribution returns the mandatory buyer contribution for a property
// price: 20% of the price, rounded.
func MinContribution(propertyPrice float64) float64 {
	return mathutil.Round(propertyPrice * constants.MinDownPaymentShare)
}

// Analyze computes the purchase-versus-invest breakdown for a scenario.
func Analyze(in Input) Result {
	cashLeft := in.AvailableCash - in.Contribution
	loanComponent := in.PropertyPrice - in.Contribution

	payment := emi.Compute(loanComponent, in.InterestRate, in.TenureYears)
	totalInterest := emi.TotalInterest(loanComponent, in.InterestRate, in.TenureYears)
	totalPaid := in.PropertyPrice + totalInterest

	investmentValue := 0.0
	if cashLeft > 0 {
		investmentValue = cashLeft * math.Pow(1+in.InvestmentGrowthRate/100, float64(in.TenureYears))
	}

	initialRent := 0.0
	totalRentIncome := 0.0
	if in.GivenOnRent {
		initialRent = in.PropertyPrice * in.RentPercentage / 100
		// Geometric series of annual rents escalating 5% year over year.
		growth := 1 + constants.RentEscalationRate
		totalRentIncome = initialRent * (math.Pow(growth, float64(in.TenureYears)) - 1) / constants.RentEscalationRate
	}

	appreciation := in.PropertyPrice * math.Pow(1+in.AppreciationRate/100, float64(in.TenureYears))
	gainLoss := appreciation - totalPaid
	netWorth := gainLoss + totalRentIncome + investmentValue

	result := Result{
		PropertyPrice:        in.PropertyPrice,
		AvailableCash:        in.AvailableCash,
		Contribution:         in.Contribution,
		CashLeft:             cashLeft,
		LoanComponent:        loanComponent,
		EMI:                  payment,
		TenureYears:          in.TenureYears,
		TotalInterest:        mathutil.Round(totalInterest),
		TotalPaid:            mathutil.Round(totalPaid),
		InitialRentAmount:    mathutil.Round(initialRent),
		TotalRentIncome:      mathutil.Round(totalRentIncome),
		PropertyAppreciation: mathutil.Round(appreciation),
		GainLossFromProperty: mathutil.Round(gainLoss),
		InvestmentValue:      mathutil.Round(investmentValue),
		FinalNetWorth:        mathutil.Round(netWorth),
	}
	result.Recommendation = recommend(in, result)
	return result
}

func recommend(in Input, r Result) Recommendation {
	var rec Recommendation

	if r.FinalNetWorth > 0 {
		rec.Verdict = "Property investment looks favorable"
		rec.Explanation = fmt.Sprintf(
			"Your property investment strategy shows a positive net worth of %s after %d years.",
			format.Rupees(r.FinalNetWorth), in.TenureYears)
	} else {
		rec.Verdict = "Consider alternative investment strategies"
		rec.Explanation = fmt.Sprintf(
			"Your current scenario shows a negative net worth of %s after %d years.",
			format.Rupees(math.Abs(r.FinalNetWorth)), in.TenureYears)
	}

	if in.InvestmentGrowthRate > in.InterestRate {
		rec.Insights += fmt.Sprintf(
			" Your expected investment return (%g%%) is higher than the loan interest rate (%g%%), which helps offset loan costs.",
			in.InvestmentGrowthRate, in.InterestRate)
	}
	if in.AppreciationRate > 0 {
		rec.Insights += fmt.Sprintf(
			" With an average %g%% annual property appreciation, your property value will grow significantly over %d years.",
			in.AppreciationRate, in.TenureYears)
	}

	return rec
}
