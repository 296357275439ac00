package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tbg-enterprises/quote-builder/internal/categories"
	"github.com/tbg-enterprises/quote-builder/internal/config"
	"github.com/tbg-enterprises/quote-builder/internal/export"
	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/internal/render"
	"github.com/tbg-enterprises/quote-builder/pkg/constants"
	"github.com/tbg-enterprises/quote-builder/pkg/output"
	"github.com/tbg-enterprises/quote-builder/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

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

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

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
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

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

func main() {
	configLocation := flag.String("config", "", "path to configuration file (optional)")
	quoteLocation := flag.String("quote", "", "path to the quote YAML file")
	outputFormatFlag := flag.String("format", "", "type of output override: pdf, qbo-csv, qb-iif, summary")
	outputLocation := flag.String("output", "", "output file path (defaults derive from the quote number)")
	listCategories := flag.Bool("list-categories", false, "print the ordered category list and exit")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Without -config, pick up config.yaml from the working directory when
	// present, otherwise run on built-in defaults.
	configPath := *configLocation
	if configPath == "" {
		if _, err := os.Stat(constants.DefaultConfigFile); err == nil {
			configPath = constants.DefaultConfigFile
		}
	}

	conf := config.Default()
	if configPath != "" {
		var err error
		conf, err = config.LoadConfiguration(configPath)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", configPath, err)
			return
		}
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *listCategories {
		path, err := categories.DefaultPath()
		if err != nil {
			logger.Fatal(err.Error(),
				zap.String("op", "main"),
			)
		}
		output.Categories(categories.Load(path))
		return
	}

	if *quoteLocation == "" {
		logger.Fatal("no quote file specified; use -quote",
			zap.String("op", "main"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatSummary
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	q, err := quote.Load(*quoteLocation)
	if err != nil {
		logger.Fatal("failed to load quote",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Advisory checks only; the hard presence checks run inside each export.
	warnings := validation.ValidateQuote(*q)
	for _, warning := range warnings {
		logger.Warn("Quote warning: "+warning,
			zap.String("op", "main"),
		)
	}

	totals := quote.ComputeTotals(*q)

	if outputFormat == constants.OutputFormatSummary {
		output.Summary(*q, totals)
		return
	}

	path := *outputLocation
	if path == "" {
		path = defaultOutputPath(outputFormat, *q)
	}

	switch outputFormat {
	case constants.OutputFormatPDF:
		err = render.New(conf.Company, nil, logger).RenderFile(path, *q, totals)
	case constants.OutputFormatQBOCSV:
		err = export.QBOCSVFile(path, *q)
	case constants.OutputFormatQBIIF:
		err = export.QBIIFFile(path, *q, totals)
	}
	if err != nil {
		logger.Fatal("export failed",
			zap.String("op", "main"),
			zap.String("format", outputFormat),
			zap.Error(err),
		)
	}

	logger.Info("export complete",
		zap.String("op", "main"),
		zap.String("format", outputFormat),
		zap.String("path", path),
	)
}

// defaultOutputPath derives a file name from the quote number when no
// -output path is given.
func defaultOutputPath(format string, q quote.Quote) string {
	switch format {
	case constants.OutputFormatPDF:
		customer := strings.ReplaceAll(q.Customer.Name, " ", "_")
		return fmt.Sprintf("Quote_%s_%s.pdf", q.Number, customer)
	case constants.OutputFormatQBOCSV:
		return fmt.Sprintf("QBO_Estimate_%s.csv", q.Number)
	default:
		return fmt.Sprintf("QBD_Estimate_%s.iif", q.Number)
	}
}
