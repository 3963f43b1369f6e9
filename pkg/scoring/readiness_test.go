package scoring

import "testing"

func TestParseCreditScore(t *testing.T) {
	tests := []struct {
		name     string
		band     string
		expected int
	}{
		{name: "range lower bound", band: "700-749", expected: 700},
		{name: "high range", band: "750-900", expected: 750},
		{name: "unknown score", band: "don't know", expected: 650},
		{name: "unknown without apostrophe", band: "dont know", expected: 650},
		{name: "spaced range", band: "650 - 699", expected: 650},
		{name: "unparseable", band: "excellent", expected: 0},
		{name: "empty", band: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCreditScore(tt.band); got != tt.expected {
				t.Errorf("ParseCreditScore(%q) = %v, expected %v", tt.band, got, tt.expected)
			}
		})
	}
}

func TestStrictReadiness(t *testing.T) {
	tests := []struct {
		name       string
		age        int
		experience int
		creditBand string
		foir       float64
		expected   int
	}{
		{
			name: "ideal applicant keeps full score",
			age:  32, experience: 8, creditBand: "750-900", foir: 25,
			expected: 100,
		},
		{
			name: "young applicant with fair credit",
			age:  23, experience: 2, creditBand: "650-699", foir: 35,
			// 100 - 10 (foir) - 15 (age) - 10 (experience) - 15 (credit)
			expected: 50,
		},
		{
			name: "overloaded applicant floors at zero",
			age:  65, experience: 0, creditBand: "300-549", foir: 75,
			// 100 - 70 - 25 - 20 - 50 clamps to 0
			expected: 0,
		},
		{
			name: "older applicant mid profile",
			age:  50, experience: 20, creditBand: "700-749", foir: 45,
			// 100 - 25 (foir) - 10 (age) - 0 - 15 (credit)
			expected: 50,
		},
		{
			name: "unknown credit assumed fair",
			age:  30, experience: 5, creditBand: "don't know", foir: 28,
			expected: 85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StrictReadiness(tt.age, tt.experience, tt.creditBand, tt.foir)
			if got != tt.expected {
				t.Errorf("StrictReadiness = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestWeightedReadiness(t *testing.T) {
	tests := []struct {
		name     string
		in       WeightedInput
		expected int
	}{
		{
			name: "all top categories",
			in: WeightedInput{
				IncomeStability:  "high",
				CreditBand:       "excellent",
				DownPayment:      2000000,
				MaxPropertyPrice: 8000000,
				Age:              35,
			},
			expected: 100,
		},
		{
			name: "all bottom categories",
			in: WeightedInput{
				IncomeStability:  "low",
				CreditBand:       "poor",
				DownPayment:      100000,
				MaxPropertyPrice: 8000000,
				Age:              60,
			},
			// 5 + 5 + 10 + 10
			expected: 30,
		},
		{
			name: "mixed profile",
			in: WeightedInput{
				IncomeStability:  "medium",
				CreditBand:       "good",
				DownPayment:      1200000,
				MaxPropertyPrice: 8000000, // 15% share
				Age:              26,
			},
			// 15 + 20 + 20 + 20
			expected: 75,
		},
		{
			name: "zero max price scores minimum down payment band",
			in: WeightedInput{
				IncomeStability:  "high",
				CreditBand:       "good",
				DownPayment:      500000,
				MaxPropertyPrice: 0,
				Age:              35,
			},
			// 25 + 20 + 10 + 25
			expected: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightedReadiness(tt.in); got != tt.expected {
				t.Errorf("WeightedReadiness = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestReadinessStatus(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{score: 100, expected: "Excellent"},
		{score: 80, expected: "Excellent"},
		{score: 79, expected: "Good"},
		{score: 60, expected: "Good"},
		{score: 45, expected: "Fair"},
		{score: 25, expected: "Poor"},
		{score: 10, expected: "Critical"},
	}

	for _, tt := range tests {
		if got := ReadinessStatus(tt.score); got.Label != tt.expected {
			t.Errorf("ReadinessStatus(%d) = %s, expected %s", tt.score, got.Label, tt.expected)
		}
	}
}
