package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/propfin/affordability/internal/config"
	"github.com/propfin/affordability/internal/engine"
	"github.com/propfin/affordability/pkg/comparison"
	"github.com/propfin/affordability/pkg/constants"
	"github.com/propfin/affordability/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func validateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("invalid output format: %s", format)
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", "profile.yaml", "path to profile configuration file")
	calculatorFlag := flag.String("calculator", "", "calculator override: detailed, quick, comparison")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *calculatorFlag != "" {
		conf.Calculator = *calculatorFlag
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	if err := validateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate the profile; computation never runs on invalid input.
	if errs := conf.ValidateConfiguration(); len(errs) > 0 {
		for _, fieldErr := range errs {
			logger.Error("invalid profile field: "+fieldErr.Error(),
				zap.String("op", "main"),
			)
		}
		logger.Fatal("profile validation failed",
			zap.String("op", "main"),
			zap.Int("errorCount", len(errs)),
		)
	}

	switch conf.Calculator {
	case constants.ProductQuick:
		result, err := engine.ComputeQuickEstimate(logger, &conf.Quick)
		if err != nil {
			logger.Fatal("failed to compute quick estimate",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		switch outputFormat {
		case constants.OutputFormatJSON:
			if err := output.JSON(os.Stdout, result); err != nil {
				logger.Fatal("failed to encode result", zap.String("op", "main"), zap.Error(err))
			}
		default:
			output.PrettyQuick(os.Stdout, result)
		}

	case constants.ProductComparison:
		result := comparison.Analyze(comparison.Input{
			PropertyPrice:        conf.Comparison.PropertyPrice,
			AvailableCash:        conf.Comparison.AvailableCash,
			Contribution:         conf.Comparison.Contribution,
			InterestRate:         conf.Comparison.InterestRate,
			TenureYears:          conf.Comparison.LoanTenure,
			InvestmentGrowthRate: conf.Comparison.InvestmentGrowthRate,
			AppreciationRate:     conf.Comparison.AppreciationRate,
			GivenOnRent:          conf.Comparison.GivenOnRent,
			RentPercentage:       conf.Comparison.RentPercentage,
		})
		switch outputFormat {
		case constants.OutputFormatJSON:
			if err := output.JSON(os.Stdout, result); err != nil {
				logger.Fatal("failed to encode result", zap.String("op", "main"), zap.Error(err))
			}
		default:
			output.PrettyComparison(os.Stdout, &result)
		}

	default:
		result, err := engine.ComputeAffordability(logger, &conf.Profile)
		if err != nil {
			logger.Fatal("failed to compute affordability",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		switch outputFormat {
		case constants.OutputFormatCSV:
			output.CsvAffordability(os.Stdout, result)
		case constants.OutputFormatJSON:
			if err := output.JSON(os.Stdout, result); err != nil {
				logger.Fatal("failed to encode result", zap.String("op", "main"), zap.Error(err))
			}
		default:
			output.PrettyAffordability(os.Stdout, result)
		}
	}
}
