package engine

import (
	"math"
	"testing"

	"github.com/propfin/affordability/internal/config"
	"github.com/propfin/affordability/pkg/emi"
)

func testQuickProfile() *config.QuickProfile {
	return &config.QuickProfile{
		NetIncome:       100000,
		VariablePay:     120000,
		OtherIncome:     0,
		ExistingEMIs:    10000,
		CreditCard:      5000,
		Rent:            20000,
		SchoolFees:      60000,
		OtherExpense:    5000,
		CreditBand:      "good",
		IncomeStability: "high",
		EmploymentType:  "salaried",
		Age:             32,
		LoanTenure:      20,
		DownPayment:     1000000,
		LoanRequired:    true,
	}
}

func TestInterestRateFor(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.QuickProfile)
		expected float64
	}{
		{
			name:     "salaried high stability good credit",
			mutate:   func(q *config.QuickProfile) {},
			expected: 8.25, // 8.5 - 0.25 stability bonus
		},
		{
			name:     "excellent credit",
			mutate:   func(q *config.QuickProfile) { q.CreditBand = "excellent" },
			expected: 7.25,
		},
		{
			name: "business owner with low stability and poor credit",
			mutate: func(q *config.QuickProfile) {
				q.CreditBand = "poor"
				q.EmploymentType = "business"
				q.IncomeStability = "low"
			},
			expected: 12.25, // 11.0 + 0.75 + 0.5
		},
		{
			name: "self-employed medium stability fair credit",
			mutate: func(q *config.QuickProfile) {
				q.CreditBand = "fair"
				q.EmploymentType = "self-employed"
				q.IncomeStability = "medium"
			},
			expected: 10.0, // 9.5 + 0.5
		},
		{
			name: "unset band defaults to base rate",
			mutate: func(q *config.QuickProfile) {
				q.CreditBand = ""
				q.IncomeStability = "medium"
			},
			expected: 8.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := testQuickProfile()
			tt.mutate(q)
			if got := InterestRateFor(q); got != tt.expected {
				t.Errorf("InterestRateFor = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestComputeQuickEstimate(t *testing.T) {
	quick := testQuickProfile()
	result, err := ComputeQuickEstimate(nil, quick)
	if err != nil {
		t.Fatalf("ComputeQuickEstimate returned error: %v", err)
	}

	// income = 100000 + 120000/12 = 110000; obligations = 10000+5000+20000+5000+5000 = 45000
	if result.MonthlyIncome != 110000 {
		t.Errorf("MonthlyIncome = %v, expected 110000", result.MonthlyIncome)
	}
	if result.MonthlyObligations != 45000 {
		t.Errorf("MonthlyObligations = %v, expected 45000", result.MonthlyObligations)
	}

	// maxEMI = 110000*0.5 - 45000 = 10000
	if result.MonthlyEMI != 10000 {
		t.Errorf("MonthlyEMI = %v, expected 10000", result.MonthlyEMI)
	}

	expectedLoan := emi.PrincipalForPayment(10000, 8.25, 20)
	if result.MaxLoanAmount != expectedLoan {
		t.Errorf("MaxLoanAmount = %v, expected %v", result.MaxLoanAmount, expectedLoan)
	}

	// maxHomePrice = basePrice less the 9% transaction charges.
	basePrice := expectedLoan + 1000000
	if math.Abs(result.MaxHomePrice-(basePrice-result.Charges.Total)) > 1 {
		t.Errorf("MaxHomePrice = %v, expected base price minus charges", result.MaxHomePrice)
	}
	if math.Abs(result.Charges.Total-basePrice*0.09) > 2 {
		t.Errorf("Charges.Total = %v, expected about 9%% of base price %v", result.Charges.Total, basePrice)
	}

	// FOIR 45000/110000 = 40.9 -> Fair on the four-band scale.
	if result.FOIR != 40.9 {
		t.Errorf("FOIR = %v, expected 40.9", result.FOIR)
	}
	if result.FOIRStatus.Status != "Fair" {
		t.Errorf("FOIRStatus = %v, expected Fair", result.FOIRStatus.Status)
	}

	if result.NoLoanRequired {
		t.Errorf("NoLoanRequired should be false")
	}
	if result.ReadinessScore <= 0 {
		t.Errorf("expected a positive readiness score")
	}
}

func TestComputeQuickEstimateNoLoan(t *testing.T) {
	quick := testQuickProfile()
	quick.LoanRequired = false

	result, err := ComputeQuickEstimate(nil, quick)
	if err != nil {
		t.Fatalf("ComputeQuickEstimate returned error: %v", err)
	}
	if !result.NoLoanRequired {
		t.Errorf("NoLoanRequired should be true")
	}
	if result.MaxHomePrice != quick.DownPayment {
		t.Errorf("MaxHomePrice = %v, expected down payment", result.MaxHomePrice)
	}
	if result.MaxLoanAmount != 0 || result.MonthlyEMI != 0 || result.InterestRate != 0 {
		t.Errorf("loan figures should be zero when no loan is required")
	}
	if result.Charges.Total != 0 {
		t.Errorf("charges should be zero when no loan is required")
	}
}

func TestComputeQuickEstimateOverloaded(t *testing.T) {
	quick := testQuickProfile()
	quick.NetIncome = 40000
	quick.VariablePay = 0
	quick.Rent = 25000

	result, err := ComputeQuickEstimate(nil, quick)
	if err != nil {
		t.Fatalf("ComputeQuickEstimate returned error: %v", err)
	}
	// maxEMI = max(0, 20000 - 50000) = 0, so only the down payment counts.
	if result.MonthlyEMI != 0 {
		t.Errorf("MonthlyEMI = %v, expected 0", result.MonthlyEMI)
	}
	if result.MaxLoanAmount != 0 {
		t.Errorf("MaxLoanAmount = %v, expected 0", result.MaxLoanAmount)
	}
}

func TestComputeQuickEstimateNilProfile(t *testing.T) {
	if _, err := ComputeQuickEstimate(nil, nil); err != ErrNilProfile {
		t.Errorf("expected ErrNilProfile, got %v", err)
	}
}
