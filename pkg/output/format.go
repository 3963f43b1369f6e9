// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/propfin/affordability/internal/engine"
	"github.com/propfin/affordability/pkg/comparison"
	"github.com/propfin/affordability/pkg/format"
)

// PrettyAffordability writes a human-readable affordability report.
func PrettyAffordability(w io.Writer, result *engine.AffordabilityResult) {
	fmt.Fprintf(w, "--- Affordability Report ---\n")
	fmt.Fprintf(w, "Monthly income      | %s\n", format.Rupees(result.TotalMonthlyIncome))
	fmt.Fprintf(w, "Monthly obligations | %s\n", format.Rupees(result.TotalMonthlyObligations))
	fmt.Fprintf(w, "FOIR                | %.1f%% (%s, %s risk)\n", result.FOIR, result.FOIRStatus.Status, result.FOIRStatus.Risk)
	fmt.Fprintf(w, "Readiness           | %d/100 (%s: %s)\n", result.ReadinessScore, result.ReadinessStatus.Label, result.ReadinessStatus.Description)
	fmt.Fprintf(w, "Savings health      | %d/100 (%s)\n", result.SavingsProfile.Score, result.SavingsProfile.Status)

	if result.NoLoanNeeded {
		fmt.Fprintf(w, "Budget (no loan)    | %s\n", format.Rupees(result.MaxPropertyPrice))
	} else {
		fmt.Fprintf(w, "Max loan            | %s (%s)\n", format.Rupees(result.MaxLoanAmount), format.Compact(result.MaxLoanAmount))
		fmt.Fprintf(w, "Max property price  | %s (%s)\n", format.Rupees(result.MaxPropertyPrice), format.Compact(result.MaxPropertyPrice))
		fmt.Fprintf(w, "Max EMI             | %s/month\n", format.Rupees(result.MaxEMI))
	}

	if v := result.EMIVariations; v != nil {
		fmt.Fprintf(w, "\nEMI at %.2f%%        | %s\n", v.LowerRate, format.Rupees(v.LowerEMI))
		fmt.Fprintf(w, "EMI at selected rate | %s\n", format.Rupees(v.CurrentEMI))
		fmt.Fprintf(w, "EMI at %.2f%%        | %s\n", v.HigherRate, format.Rupees(v.HigherEMI))
	}

	fmt.Fprintf(w, "\n%s\n", result.Guidance.Summary)
	for _, rec := range result.Guidance.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}

	if len(result.Guidance.WhatIfScenarios) > 0 {
		fmt.Fprintf(w, "\nWhat-if scenarios:\n")
		for _, s := range result.Guidance.WhatIfScenarios {
			fmt.Fprintf(w, "  * %s (%s, %s effort)\n", s.Title, s.Timeline, s.Effort)
		}
	}

	risk := result.Guidance.RiskAssessment
	fmt.Fprintf(w, "\nRisk: %s — %s\n", risk.Level, risk.Message)
	for _, f := range risk.Factors {
		fmt.Fprintf(w, "  - %s\n", f)
	}
}

// PrettyQuick writes a human-readable quick-estimate report.
func PrettyQuick(w io.Writer, result *engine.QuickResult) {
	fmt.Fprintf(w, "--- Quick Affordability Estimate ---\n")
	fmt.Fprintf(w, "Monthly income      | %s\n", format.Rupees(result.MonthlyIncome))
	fmt.Fprintf(w, "Monthly obligations | %s\n", format.Rupees(result.MonthlyObligations))

	if result.NoLoanRequired {
		fmt.Fprintf(w, "Budget (no loan)    | %s\n", format.Rupees(result.MaxHomePrice))
		return
	}

	fmt.Fprintf(w, "Interest rate       | %.2f%%\n", result.InterestRate)
	fmt.Fprintf(w, "Max EMI             | %s/month\n", format.Rupees(result.MonthlyEMI))
	fmt.Fprintf(w, "Max loan            | %s\n", format.Rupees(result.MaxLoanAmount))
	fmt.Fprintf(w, "FOIR                | %.1f%% (%s)\n", result.FOIR, result.FOIRStatus.Status)
	fmt.Fprintf(w, "Readiness           | %d/100 (%s)\n", result.ReadinessScore, result.ReadinessStatus.Label)
	fmt.Fprintf(w, "\nCharges on %s base price:\n", format.Rupees(result.BasePrice))
	fmt.Fprintf(w, "  Stamp duty        | %s\n", format.Rupees(result.Charges.StampDuty))
	fmt.Fprintf(w, "  Registration      | %s\n", format.Rupees(result.Charges.Registration))
	fmt.Fprintf(w, "  Document handling | %s\n", format.Rupees(result.Charges.DocumentHandling))
	fmt.Fprintf(w, "  Other             | %s\n", format.Rupees(result.Charges.Other))
	fmt.Fprintf(w, "Max home price      | %s (%s)\n", format.Rupees(result.MaxHomePrice), format.Compact(result.MaxHomePrice))
}

// PrettyComparison writes a human-readable purchase-versus-invest report.
func PrettyComparison(w io.Writer, result *comparison.Result) {
	fmt.Fprintf(w, "--- Property Investment Analysis ---\n")
	fmt.Fprintf(w, "Property price      | %s\n", format.Rupees(result.PropertyPrice))
	fmt.Fprintf(w, "Contribution        | %s\n", format.Rupees(result.Contribution))
	fmt.Fprintf(w, "Loan component      | %s\n", format.Rupees(result.LoanComponent))
	fmt.Fprintf(w, "EMI                 | %s/month for %d years\n", format.Rupees(result.EMI), result.TenureYears)
	fmt.Fprintf(w, "Total interest      | %s\n", format.Rupees(result.TotalInterest))
	fmt.Fprintf(w, "Total paid          | %s\n", format.Rupees(result.TotalPaid))
	if result.TotalRentIncome > 0 {
		fmt.Fprintf(w, "Rent income         | %s\n", format.Rupees(result.TotalRentIncome))
	}
	fmt.Fprintf(w, "Property value      | %s\n", format.Rupees(result.PropertyAppreciation))
	fmt.Fprintf(w, "Investment value    | %s\n", format.Rupees(result.InvestmentValue))
	fmt.Fprintf(w, "Final net worth     | %s\n", format.Rupees(result.FinalNetWorth))
	fmt.Fprintf(w, "\n%s\n%s\n", result.Recommendation.Verdict, result.Recommendation.Explanation)
	if result.Recommendation.Insights != "" {
		fmt.Fprintf(w, "%s\n", strings.TrimSpace(result.Recommendation.Insights))
	}
}

// CsvAffordability writes the projection table in comma-separated value format.
func CsvAffordability(w io.Writer, result *engine.AffordabilityResult) {
	fmt.Fprintf(w, `"year","monthlyIncome","monthlyEMI","monthlySurplus"`)
	fmt.Fprintf(w, "\n")
	for _, y := range result.Projection.Years {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f"`, y.Year, y.MonthlyIncome, y.MonthlyEMI, y.MonthlySurplus)
		fmt.Fprintf(w, "\n")
	}
}

// JSON writes any result as indented JSON.
func JSON(w io.Writer, result interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
