// Package config defines the applicant profile data structures and includes
// functions for loading and validating the configuration.
package config

import (
	"fmt"

	"github.com/propfin/affordability/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for an affordability run.
type Configuration struct {
	Calculator string           `yaml:"calculator,omitempty"` // detailed, quick, comparison
	Profile    FinancialProfile `yaml:"profile,omitempty"`
	Quick      QuickProfile     `yaml:"quick,omitempty"`
	Comparison ComparisonInput  `yaml:"comparison,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ComparisonInput holds the purchase-versus-invest scenario parameters.
type ComparisonInput struct {
	PropertyPrice        float64 `yaml:"propertyPrice" json:"propertyPrice"`
	AvailableCash        float64 `yaml:"availableCash" json:"availableCash"`
	Contribution         float64 `yaml:"contribution" json:"contribution"`
	InterestRate         float64 `yaml:"interestRate" json:"interestRate"`
	LoanTenure           int     `yaml:"loanTenure" json:"loanTenure"`
	InvestmentGrowthRate float64 `yaml:"investmentGrowthRate" json:"investmentGrowthRate"`
	AppreciationRate     float64 `yaml:"appreciationRate" json:"appreciationRate"`
	GivenOnRent          bool    `yaml:"givenOnRent" json:"givenOnRent"`
	RentPercentage       float64 `yaml:"rentPercentage" json:"rentPercentage"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Calculator == "" {
		configuration.Calculator = constants.ProductDetailed
	}

	return &configuration, nil
}

// ValidateConfiguration validates the configuration for the selected
// calculator and returns field-level errors. An empty result means the
// profile is safe to compute on.
func (c *Configuration) ValidateConfiguration() []FieldError {
	switch c.Calculator {
	case constants.ProductQuick:
		return c.Quick.Validate()
	case constants.ProductComparison:
		return c.Comparison.Validate()
	default:
		return c.Profile.Validate()
	}
}

// Validate checks the comparison scenario parameters.
func (in *ComparisonInput) Validate() []FieldError {
	var errs []FieldError

	if in.PropertyPrice <= 0 {
		errs = append(errs, FieldError{Field: "propertyPrice", Message: "property price must be positive"})
	}
	if in.AvailableCash < 0 {
		errs = append(errs, FieldError{Field: "availableCash", Message: "available cash cannot be negative"})
	}
	minContribution := in.PropertyPrice * constants.MinDownPaymentShare
	if in.Contribution < minContribution {
		errs = append(errs, FieldError{
			Field:   "contribution",
			Message: fmt.Sprintf("contribution must cover the mandatory 20%% down payment (%.0f)", minContribution),
		})
	}
	if in.Contribution > in.AvailableCash {
		errs = append(errs, FieldError{Field: "contribution", Message: "contribution cannot exceed available cash"})
	}
	if in.InterestRate < constants.MinInterestRate || in.InterestRate > constants.MaxInterestRate {
		errs = append(errs, FieldError{
			Field:   "interestRate",
			Message: fmt.Sprintf("interest rate must be between %.1f and %.1f", constants.MinInterestRate, constants.MaxInterestRate),
		})
	}
	if in.LoanTenure < constants.MinTenureYears || in.LoanTenure > constants.MaxTenureYears {
		errs = append(errs, FieldError{
			Field:   "loanTenure",
			Message: fmt.Sprintf("loan tenure must be between %d and %d years", constants.MinTenureYears, constants.MaxTenureYears),
		})
	}
	if in.RentPercentage < 0 {
		errs = append(errs, FieldError{Field: "rentPercentage", Message: "rent percentage cannot be negative"})
	}

	return errs
}
