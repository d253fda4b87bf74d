package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Catalog and rules configuration
	SourcesDir string `long:"sources-dir" env:"SOURCES_DIR" default:"./sources" description:"Directory containing source catalog files"`
	RulesFile  string `long:"rules-file" env:"RULES_FILE" description:"Classification rules override file (optional)"`

	// Cache configuration
	CacheBackend string `long:"cache-backend" env:"CACHE_BACKEND" default:"memory" choice:"memory" choice:"redis" choice:"sqlite" description:"Cache backend"`
	CachePath    string `long:"cache-path" env:"CACHE_PATH" default:"./opp-comb.db" description:"SQLite cache file path"`
	RedisAddr    string `long:"redis-addr" env:"REDIS_ADDR" default:"localhost:6379" description:"Redis address"`
	CacheTTL     int    `long:"cache-ttl" env:"CACHE_TTL" default:"600" description:"Cache TTL in seconds"`

	// Fetch configuration
	BaselineTimeout   int `long:"baseline-timeout" env:"BASELINE_TIMEOUT" default:"10" description:"Baseline fetch timeout in seconds"`
	EnhancedTimeout   int `long:"enhanced-timeout" env:"ENHANCED_TIMEOUT" default:"20" description:"Enhanced fetch timeout in seconds"`
	FetchRetries      int `long:"fetch-retries" env:"FETCH_RETRIES" default:"3" description:"Retry limit on the enhanced fetch path"`
	ItemCap           int `long:"item-cap" env:"ITEM_CAP" default:"50" description:"Maximum items taken from a single source"`
	BaselineGroupSize int `long:"baseline-group-size" env:"BASELINE_GROUP_SIZE" default:"10" description:"Concurrent fetch group size on the baseline path"`
	EnhancedGroupSize int `long:"enhanced-group-size" env:"ENHANCED_GROUP_SIZE" default:"5" description:"Concurrent fetch group size on the enhanced path"`
	WarmInterval      int `long:"warm-interval" env:"WARM_INTERVAL" default:"0" description:"Cache warm interval in seconds (0 disables warming)"`

	// Application configuration
	Port    string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl string `long:"base-url" env:"BASE_URL" description:"Public base URL for the service (e.g., https://opps.example.com)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Opp Comb/1.0" description:"User agent string for baseline HTTP requests"`
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
		SourcesDir:        raw.SourcesDir,
		RulesFile:         raw.RulesFile,
		CacheBackend:      raw.CacheBackend,
		CachePath:         raw.CachePath,
		RedisAddr:         raw.RedisAddr,
		CacheTTL:          raw.CacheTTL,
		BaselineTimeout:   raw.BaselineTimeout,
		EnhancedTimeout:   raw.EnhancedTimeout,
		FetchRetries:      raw.FetchRetries,
		ItemCap:           raw.ItemCap,
		BaselineGroupSize: raw.BaselineGroupSize,
		EnhancedGroupSize: raw.EnhancedGroupSize,
		WarmInterval:      raw.WarmInterval,
		Port:              raw.Port,
		BaseUrl:           raw.BaseUrl,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
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
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
