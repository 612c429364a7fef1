package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"phostamp/internal/domain"
)

// StartDateLayout is the only accepted start-date format.
const StartDateLayout = "2006-01-02 15:04:05"

// DefaultIncrementMinutes applies when neither flag nor env set an increment.
const DefaultIncrementMinutes = 60

// Options holds the raw CLI values before env fallback and validation.
type Options struct {
	Folder           string
	StartDate        string
	IncrementMinutes int
	IncrementSet     bool
	Extensions       string
	DryRun           bool
	Verbose          bool
	Interactive      bool
}

type Config struct {
	Folder           string
	Start            time.Time
	StartGiven       bool
	IncrementMinutes int
	Extensions       domain.ExtensionSet
	DryRun           bool
	Verbose          bool
	Interactive      bool
}

func (c Config) Increment() time.Duration {
	return time.Duration(c.IncrementMinutes) * time.Minute
}

// Resolve fills unset options from PHOSTAMP_* environment variables (after
// loading a .env file if one exists), validates, and produces the immutable
// run configuration. Flags take precedence over the environment. An empty
// start date means "now", resolved here so the whole run sees one instant.
func Resolve(opts Options) (Config, error) {
	_ = godotenv.Load()

	if opts.Folder == "" {
		opts.Folder = envOrEmpty("PHOSTAMP_FOLDER")
	}
	if opts.StartDate == "" {
		opts.StartDate = envOrEmpty("PHOSTAMP_START_DATE")
	}
	if !opts.IncrementSet && opts.IncrementMinutes == 0 {
		opts.IncrementMinutes = envInt("PHOSTAMP_INCREMENT_MINUTES")
		if opts.IncrementMinutes == 0 {
			opts.IncrementMinutes = DefaultIncrementMinutes
		}
	}
	if opts.Extensions == "" {
		opts.Extensions = envOrEmpty("PHOSTAMP_EXTENSIONS")
	}
	if !opts.Verbose {
		opts.Verbose = envTruthy("PHOSTAMP_VERBOSE")
	}
	if !opts.DryRun {
		opts.DryRun = envTruthy("PHOSTAMP_DRY_RUN")
	}

	if opts.Folder == "" {
		return Config{}, errors.New("folder is required")
	}
	if opts.IncrementMinutes < 1 {
		return Config{}, fmt.Errorf("increment must be a positive number of minutes, got %d", opts.IncrementMinutes)
	}

	cfg := Config{
		Folder:           opts.Folder,
		IncrementMinutes: opts.IncrementMinutes,
		Extensions:       domain.DefaultExtensions(),
		DryRun:           opts.DryRun,
		Verbose:          opts.Verbose,
		Interactive:      opts.Interactive,
	}

	if opts.StartDate != "" {
		parsed, err := time.ParseInLocation(StartDateLayout, opts.StartDate, time.Local)
		if err != nil {
			return Config{}, errors.New("invalid start date, use YYYY-MM-DD HH:MM:SS")
		}
		cfg.Start = parsed
		cfg.StartGiven = true
	} else {
		cfg.Start = time.Now()
	}

	if opts.Extensions != "" {
		set := domain.NewExtensionSet(strings.Split(opts.Extensions, ",")...)
		if set.Len() == 0 {
			return Config{}, errors.New("extension list is empty")
		}
		cfg.Extensions = set
	}

	return cfg, nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string) int {
	val, err := strconv.Atoi(envOrEmpty(key))
	if err != nil {
		return 0
	}
	return val
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
