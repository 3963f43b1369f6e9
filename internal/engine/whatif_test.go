package engine

import (
	"testing"

	"github.com/propfin/affordability/pkg/emi"
	"github.com/propfin/affordability/pkg/foir"
)

func TestGenerateWhatIfScenarios(t *testing.T) {
	profile := testProfile()
	income := profile.TotalMonthlyIncome()
	obligations := profile.TotalMonthlyObligations()
	ratio := foir.Compute(income, obligations)
	maxLoan := emi.MaxLoanAmount(income, obligations, profile.InterestRate, profile.LoanTenure)
	maxPrice := maxLoan + profile.DownPayment

	scenarios := GenerateWhatIfScenarios(profile, ratio, maxPrice)
	if len(scenarios) != 1 {
		t.Fatalf("expected 1 scenario (down payment above cap), got %d", len(scenarios))
	}
	if scenarios[0].Title != "Reduce Existing EMIs by 50%" {
		t.Errorf("Title = %q", scenarios[0].Title)
	}

	s := scenarios[0]
	if s.Projected.FOIR >= s.Current.FOIR {
		t.Errorf("halving EMIs should reduce FOIR: current %v, projected %v", s.Current.FOIR, s.Projected.FOIR)
	}
	if s.Projected.MaxLoan <= s.Current.MaxLoan {
		t.Errorf("halving EMIs should increase the max loan: current %v, projected %v",
			s.Current.MaxLoan, s.Projected.MaxLoan)
	}
	if s.Improvement.FOIRReduction <= 0 || s.Improvement.LoanIncrease <= 0 {
		t.Errorf("expected positive improvements, got %+v", s.Improvement)
	}

	// The input profile must not be mutated by scenario generation.
	if profile.ExistingEMIs != 10000 {
		t.Errorf("profile mutated: ExistingEMIs = %v", profile.ExistingEMIs)
	}
}

func TestGenerateWhatIfScenariosDownPayment(t *testing.T) {
	profile := testProfile()
	profile.DownPayment = 400000

	income := profile.TotalMonthlyIncome()
	obligations := profile.TotalMonthlyObligations()
	ratio := foir.Compute(income, obligations)
	maxLoan := emi.MaxLoanAmount(income, obligations, profile.InterestRate, profile.LoanTenure)
	maxPrice := maxLoan + profile.DownPayment

	scenarios := GenerateWhatIfScenarios(profile, ratio, maxPrice)
	if len(scenarios) != 2 {
		t.Fatalf("expected both scenarios, got %d", len(scenarios))
	}

	dp := scenarios[1]
	if dp.Title != "Double Your Down Payment" {
		t.Errorf("Title = %q", dp.Title)
	}
	if dp.Projected.DownPayment != 800000 {
		t.Errorf("projected down payment = %v, expected 800000", dp.Projected.DownPayment)
	}
	if dp.Improvement.DownPaymentIncrease != 100.0 {
		t.Errorf("DownPaymentIncrease = %v, expected 100.0", dp.Improvement.DownPaymentIncrease)
	}
	// The property price moves by exactly the down-payment delta.
	if dp.Projected.MaxPropertyPrice-dp.Current.MaxPropertyPrice != 400000 {
		t.Errorf("property delta = %v, expected 400000",
			dp.Projected.MaxPropertyPrice-dp.Current.MaxPropertyPrice)
	}
}

func TestGenerateWhatIfScenariosDownPaymentCapped(t *testing.T) {
	profile := testProfile()
	profile.DownPayment = 700000

	income := profile.TotalMonthlyIncome()
	obligations := profile.TotalMonthlyObligations()
	maxLoan := emi.MaxLoanAmount(income, obligations, profile.InterestRate, profile.LoanTenure)
	maxPrice := maxLoan + profile.DownPayment

	scenarios := GenerateWhatIfScenarios(profile, 37.3, maxPrice)

	var dp *Scenario
	for i := range scenarios {
		if scenarios[i].Title == "Double Your Down Payment" {
			dp = &scenarios[i]
		}
	}
	if dp == nil {
		t.Fatalf("expected a down-payment scenario")
	}
	if dp.Projected.DownPayment != 1000000 {
		t.Errorf("projected down payment = %v, expected cap 1000000", dp.Projected.DownPayment)
	}
}

func TestGenerateWhatIfScenariosNoEMIs(t *testing.T) {
	profile := testProfile()
	profile.ExistingEMIs = 0
	profile.DownPayment = 2000000 // above cap

	scenarios := GenerateWhatIfScenarios(profile, 30, 10000000)
	if len(scenarios) != 0 {
		t.Errorf("expected no scenarios, got %d", len(scenarios))
	}
}
