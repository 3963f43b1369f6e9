// Package projection models income growth against a constant EMI over a
// multi-year horizon.
package projection

import (
	"math"

	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/mathutil"
)

// Year holds the projected figures for one year of the horizon.
type Year struct {
	Year           int     `json:"year" yaml:"year"`
	MonthlyIncome  float64 `json:"monthlyIncome" yaml:"monthlyIncome"`
	MonthlyEMI     float64 `json:"monthlyEMI" yaml:"monthlyEMI"`
	MonthlySurplus float64 `json:"monthlySurplus" yaml:"monthlySurplus"`
}

// Result is a full income-versus-EMI projection.
type Result struct {
	Years               []Year  `json:"years" yaml:"years"`
	InitialSurplus      float64 `json:"initialSurplus" yaml:"initialSurplus"`
	FinalSurplus        float64 `json:"finalSurplus" yaml:"finalSurplus"`
	TotalSavings        float64 `json:"totalSavings" yaml:"totalSavings"`
	GrowthRatePercent   float64 `json:"growthRatePercent" yaml:"growthRatePercent"`
	HorizonYears        int     `json:"horizonYears" yaml:"horizonYears"`
	MonthlyEMIAtStart   float64 `json:"monthlyEMIAtStart" yaml:"monthlyEMIAtStart"`
	IncomeGrowthOverall float64 `json:"incomeGrowthOverall" yaml:"incomeGrowthOverall"`
}

// Project compounds monthly income at the growth rate while the EMI stays
// constant, reporting each year's surplus and the accumulated savings over
// the horizon. Non-positive growth or years fall back to the defaults.
func Project(monthlyIncome, monthlyEMI, growthRatePercent float64, years int) Result {
	if growthRatePercent <= 0 {
		growthRatePercent = constants.DefaultIncomeGrowthRate
	}
	if years <= 0 {
		years = constants.DefaultProjectionYears
	}

	result := Result{
		GrowthRatePercent: growthRatePercent,
		HorizonYears:      years,
		MonthlyEMIAtStart: monthlyEMI,
	}

	totalSavings := 0.0
	for y := 1; y <= years; y++ {
		income := monthlyIncome * math.Pow(1+growthRatePercent/100, float64(y-1))
		surplus := income - monthlyEMI
		totalSavings += surplus * constants.MonthsPerYear

		result.Years = append(result.Years, Year{
			Year:           y,
			MonthlyIncome:  mathutil.Round(income),
			MonthlyEMI:     monthlyEMI,
			MonthlySurplus: mathutil.Round(surplus),
		})
	}

	result.InitialSurplus = result.Years[0].MonthlySurplus
	result.FinalSurplus = result.Years[len(result.Years)-1].MonthlySurplus
	result.TotalSavings = mathutil.Round(totalSavings)
	if monthlyIncome > 0 {
		finalIncome := monthlyIncome * math.Pow(1+growthRatePercent/100, float64(years-1))
		result.IncomeGrowthOverall = mathutil.RoundTenth((finalIncome - monthlyIncome) / monthlyIncome * 100)
	}
	return result
}
