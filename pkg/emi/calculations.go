// Package emi implements equated-monthly-installment math for amortizing
// home loans: the EMI formula, its algebraic inverse for sizing a loan
// against a payment budget, and rate-variation helpers.
package emi

import (
	"math"

	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/mathutil"
)

// Compute calculates the equated monthly installment for a loan of the given
// principal at the given annual rate over the given tenure. The result is
// rounded to the nearest whole currency unit. A non-positive principal
// returns 0; a zero rate amortizes linearly.
func Compute(principal, annualRatePercent float64, tenureYears int) float64 {
	if principal <= 0 || tenureYears <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / constants.MonthsPerYear / constants.PercentageMultiplier
	numPayments := float64(tenureYears * constants.MonthsPerYear)

	if monthlyRate == 0 {
		return mathutil.Round(principal / numPayments)
	}

	factor := math.Pow(1+monthlyRate, numPayments)
	payment := principal * monthlyRate * factor / (factor - 1)
	return mathutil.Round(payment)
}

// PrincipalForPayment returns the largest principal whose EMI at the given
// rate and tenure fits within the given monthly payment. It is the algebraic
// inverse of Compute and is consistent with it to within one currency unit.
func PrincipalForPayment(payment, annualRatePercent float64, tenureYears int) float64 {
	if payment <= 0 || tenureYears <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / constants.MonthsPerYear / constants.PercentageMultiplier
	numPayments := float64(tenureYears * constants.MonthsPerYear)

	if monthlyRate == 0 {
		return mathutil.Round(payment * numPayments)
	}

	factor := math.Pow(1+monthlyRate, numPayments)
	principal := payment * (factor - 1) / (monthlyRate * factor)
	return mathutil.Round(principal)
}

// MaxLoanAmount sizes the largest affordable loan given monthly income and
// obligations: the full surplus income services the EMI.
func MaxLoanAmount(monthlyIncome, monthlyObligations, annualRatePercent float64, tenureYears int) float64 {
	available := monthlyIncome - monthlyObligations
	return PrincipalForPayment(available, annualRatePercent, tenureYears)
}

// TotalInterest returns the interest paid over the full tenure of a loan.
func TotalInterest(principal, annualRatePercent float64, tenureYears int) float64 {
	if principal <= 0 || tenureYears <= 0 {
		return 0
	}
	payment := Compute(principal, annualRatePercent, tenureYears)
	return payment*float64(tenureYears*constants.MonthsPerYear) - principal
}

// Variation holds the EMI at the selected rate alongside the EMIs at the
// bracketing rates offered on flexible-rate loans.
type Variation struct {
	LowerRate  float64
	LowerEMI   float64
	CurrentEMI float64
	HigherRate float64
	HigherEMI  float64
}

// Variations computes EMIs at the selected rate and at the flexible-loan
// bracket rates, clamped to the market rate band.
func Variations(principal, annualRatePercent float64, tenureYears int) Variation {
	lowerRate := math.Max(annualRatePercent-constants.VariationRateDown, constants.MinInterestRate)
	higherRate := math.Min(annualRatePercent+constants.VariationRateUp, constants.MaxInterestRate)

	return Variation{
		LowerRate:  lowerRate,
		LowerEMI:   Compute(principal, lowerRate, tenureYears),
		CurrentEMI: Compute(principal, annualRatePercent, tenureYears),
		HigherRate: higherRate,
		HigherEMI:  Compute(principal, higherRate, tenureYears),
	}
}
