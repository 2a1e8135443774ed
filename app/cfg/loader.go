package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version != "" {
		return Version
	}
	return "unknown"
}

type rawCfg struct {
	// Application configuration
	Port       string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	SourcesDir string `long:"sources-dir" env:"SOURCES_DIR" default:"./sources" description:"Directory with additional source definition files"`
	ExportDir  string `long:"export-dir" env:"EXPORT_DIR" default:"./exports" description:"Directory for exported article files"`

	// Fetch behavior
	Timeout    int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP request timeout in seconds"`
	MaxRetries int    `long:"max-retries" env:"MAX_RETRIES" default:"3" description:"Total number of attempts per feed request"`
	RetryDelay int    `long:"retry-delay" env:"RETRY_DELAY" default:"1000" description:"Base delay between attempts in milliseconds"`
	Backoff    string `long:"backoff" env:"BACKOFF" default:"exponential" choice:"exponential" choice:"fixed" description:"Retry backoff policy"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"FinFeed/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:       raw.Port,
		SourcesDir: raw.SourcesDir,
		ExportDir:  raw.ExportDir,
		Timeout:    raw.Timeout,
		MaxRetries: raw.MaxRetries,
		RetryDelay: raw.RetryDelay,
		Backoff:    raw.Backoff,
		UserAgent:  raw.UserAgent,
		Timezone:   raw.Timezone,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
