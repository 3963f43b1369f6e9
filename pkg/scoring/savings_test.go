package scoring

import "testing"

func TestSavingsProfile(t *testing.T) {
	tests := []struct {
		name           string
		income         float64
		savings        float64
		total          float64
		expectedScore  int
		expectedStatus string
	}{
		{
			name:   "disciplined saver",
			income: 100000, savings: 30000, total: 1200000,
			// rate 30% -> 50; fund 20 months -> 30; total = 12x income -> 20
			expectedScore:  100,
			expectedStatus: "Excellent",
		},
		{
			name:   "moderate saver",
			income: 100000, savings: 15000, total: 300000,
			// rate 15% -> 30; fund 5 months -> 15; total = 3x income -> 5
			expectedScore:  50,
			expectedStatus: "Fair",
		},
		{
			name:   "no savings at all",
			income: 100000, savings: 0, total: 0,
			expectedScore:  0,
			expectedStatus: "Critical",
		},
		{
			name:   "zero income",
			income: 0, savings: 0, total: 0,
			expectedScore:  0,
			expectedStatus: "Critical",
		},
		{
			name:   "low saver",
			income: 100000, savings: 6000, total: 150000,
			// rate 6% -> 10; fund 2.5 months -> 10; total < 3x income -> 0
			expectedScore:  20,
			expectedStatus: "Poor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SavingsProfile(tt.income, tt.savings, tt.total)
			if got.Score != tt.expectedScore {
				t.Errorf("Score = %v, expected %v", got.Score, tt.expectedScore)
			}
			if got.Status != tt.expectedStatus {
				t.Errorf("Status = %v, expected %v", got.Status, tt.expectedStatus)
			}
			if len(got.Recommendations) == 0 {
				t.Errorf("expected recommendations for status %s", got.Status)
			}
		})
	}
}

func TestSavingsProfileRatios(t *testing.T) {
	got := SavingsProfile(90000, 10000, 270000)

	// 10000/90000 = 11.1%
	if got.SavingsRate != 11.1 {
		t.Errorf("SavingsRate = %v, expected 11.1", got.SavingsRate)
	}
	// 270000 / (90000 * 0.6) = 5 months
	if got.EmergencyFundMonths != 5.0 {
		t.Errorf("EmergencyFundMonths = %v, expected 5.0", got.EmergencyFundMonths)
	}
}
