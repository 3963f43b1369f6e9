// Package foir computes the fixed-obligation-to-income ratio and classifies
// it against lender banding scales.
package foir

import "github.com/propfin/affordability/pkg/mathutil"

// Compute returns monthly obligations as a percentage of monthly income,
// rounded to one decimal place. Zero income yields 0, never NaN or Inf.
func Compute(monthlyIncome, monthlyObligations float64) float64 {
	if monthlyIncome == 0 {
		return 0
	}
	return mathutil.RoundTenth(monthlyObligations / monthlyIncome * 100)
}

// Rating pairs a FOIR status label with its lender risk label.
type Rating struct {
	Status string `json:"status" yaml:"status"`
	Risk   string `json:"risk" yaml:"risk"`
}

// Band is one classification band of a scale: the rating applies up to and
// including Limit.
type Band struct {
	Limit  float64
	Rating Rating
}

// Scale is an ordered list of FOIR bands plus the rating for values beyond
// the last band.
type Scale struct {
	Bands    []Band
	Overflow Rating
}

// Classify returns the rating for a FOIR percentage against the scale.
func (s Scale) Classify(foirPercent float64) Rating {
	for _, band := range s.Bands {
		if foirPercent <= band.Limit {
			return band.Rating
		}
	}
	return s.Overflow
}

// FiveBandScale is the detailed-calculator scale; it distinguishes Critical
// profiles above 60%.
var FiveBandScale = Scale{
	Bands: []Band{
		{Limit: 30, Rating: Rating{Status: "Excellent", Risk: "Very Low"}},
		{Limit: 40, Rating: Rating{Status: "Good", Risk: "Low"}},
		{Limit: 50, Rating: Rating{Status: "Fair", Risk: "Moderate"}},
		{Limit: 60, Rating: Rating{Status: "Poor", Risk: "High"}},
	},
	Overflow: Rating{Status: "Critical", Risk: "Very High"},
}

// FourBandScale is the quick-estimate scale; everything above 50% is Poor.
var FourBandScale = Scale{
	Bands: []Band{
		{Limit: 30, Rating: Rating{Status: "Excellent", Risk: "Very Low"}},
		{Limit: 40, Rating: Rating{Status: "Good", Risk: "Low"}},
		{Limit: 50, Rating: Rating{Status: "Fair", Risk: "Moderate"}},
	},
	Overflow: Rating{Status: "Poor", Risk: "High"},
}
