package engine

import (
	"fmt"
	"math"

	"github.com/propfin/affordability/internal/config"
	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/format"
	"github.com/propfin/affordability/pkg/scoring"
)

// Guidance bundles the applicant-facing advice derived from a computation.
type Guidance struct {
	Summary               string             `json:"summary" yaml:"summary"`
	Recommendations       []string           `json:"recommendations" yaml:"recommendations"`
	ImprovementStrategies []Strategy         `json:"improvementStrategies" yaml:"improvementStrategies"`
	WhatIfScenarios       []Scenario         `json:"whatIfScenarios" yaml:"whatIfScenarios"`
	RiskAssessment        scoring.RiskResult `json:"riskAssessment" yaml:"riskAssessment"`
}

// Strategy groups improvement actions under a category with a priority.
type Strategy struct {
	Category string   `json:"category" yaml:"category"`
	Priority string   `json:"priority" yaml:"priority"`
	Actions  []Action `json:"actions" yaml:"actions"`
}

// Action is one concrete improvement step.
type Action struct {
	Action   string `json:"action" yaml:"action"`
	Impact   string `json:"impact" yaml:"impact"`
	Timeline string `json:"timeline" yaml:"timeline"`
	Effort   string `json:"effort" yaml:"effort"`
}

func generateGuidance(profile *config.FinancialProfile, ratio float64, readiness int, maxPropertyPrice float64) Guidance {
	return Guidance{
		Summary:               guidanceSummary(ratio, readiness, maxPropertyPrice),
		Recommendations:       recommendations(profile, ratio, readiness, maxPropertyPrice),
		ImprovementStrategies: improvementStrategies(profile, ratio),
		WhatIfScenarios:       GenerateWhatIfScenarios(profile, ratio, maxPropertyPrice),
		RiskAssessment:        scoring.AssessRisk(ratio, scoring.ParseCreditScore(profile.CreditScoreBand), profile.GrossIncome),
	}
}

func guidanceSummary(ratio float64, readiness int, maxPropertyPrice float64) string {
	switch {
	case ratio <= 30 && readiness >= 80:
		return fmt.Sprintf("Excellent! Your financial profile is ideal for home buying. You can afford properties up to %s with strong loan eligibility.",
			format.Rupees(maxPropertyPrice))
	case ratio <= 45 && readiness >= 60:
		return fmt.Sprintf("Good! Your financial profile is suitable for home buying. You can afford properties up to %s with standard loan terms.",
			format.Rupees(maxPropertyPrice))
	case ratio <= 60 && readiness >= 40:
		return fmt.Sprintf("Fair. Your financial profile needs some improvement for optimal home buying. Currently you can afford properties up to %s.",
			format.Rupees(maxPropertyPrice))
	default:
		return "Your financial profile needs significant improvement before home buying. Focus on reducing expenses and improving credit score."
	}
}

func recommendations(profile *config.FinancialProfile, ratio float64, readiness int, maxPropertyPrice float64) []string {
	var recs []string

	if ratio > 50 {
		recs = append(recs, "Reduce existing EMIs and monthly expenses to improve FOIR")
	}
	if readiness < 60 {
		recs = append(recs, "Improve your CIBIL score for better loan terms")
		recs = append(recs, "Consider increasing your work experience")
	}
	if profile.DownPayment < maxPropertyPrice*constants.MinDownPaymentShare {
		recs = append(recs, "Increase your down payment to cover a significant portion of the property price")
	}
	if !profile.CoApplicant && ratio > 40 {
		recs = append(recs, "Consider adding a co-applicant for better loan eligibility")
	}

	if len(recs) == 0 {
		recs = append(recs, "Your financial profile is excellent for home buying")
		recs = append(recs, fmt.Sprintf("Consider properties in the %s range", format.Rupees(maxPropertyPrice)))
	}
	return recs
}

func improvementStrategies(profile *config.FinancialProfile, ratio float64) []Strategy {
	var strategies []Strategy

	if ratio > 45 {
		strategies = append(strategies, Strategy{
			Category: "FOIR Reduction",
			Priority: "high",
			Actions: []Action{
				{
					Action:   "Reduce existing EMIs",
					Impact:   fmt.Sprintf("Could reduce FOIR by %.1f%%", math.Min(5, ratio-45)),
					Timeline: "1-3 months",
					Effort:   "medium",
				},
				{
					Action:   "Increase down payment",
					Impact:   "Reduces loan amount and EMI",
					Timeline: "3-6 months",
					Effort:   "high",
				},
				{
					Action:   "Extend loan tenure",
					Impact:   "Reduces monthly EMI",
					Timeline: "immediate",
					Effort:   "low",
				},
			},
		})
	}

	if scoring.ParseCreditScore(profile.CreditScoreBand) < 750 {
		strategies = append(strategies, Strategy{
			Category: "CIBIL Score Improvement",
			Priority: "high",
			Actions: []Action{
				{
					Action:   "Pay bills on time",
					Impact:   "Improve credit history",
					Timeline: "6-12 months",
					Effort:   "low",
				},
				{
					Action:   "Reduce credit utilization",
					Impact:   "Lower credit risk",
					Timeline: "3-6 months",
					Effort:   "medium",
				},
			},
		})
	}

	return strategies
}
