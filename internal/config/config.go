package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Runtime holds the console's effective configuration: connection parameters
// for the platform API and the calendar geometry.
type Runtime struct {
	ConfigFile string

	Endpoint   string
	Token      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool

	Span      int
	FirstHour int
	LastHour  int
}

// Load reads configuration from an env-style config file (default
// $XDG_CONFIG_HOME/primata/console.env) overridden by PRIMATA_* environment
// variables, falling back to defaults for any unset value.
func Load() (Runtime, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Runtime{}, fmt.Errorf("resolve home dir: %w", err)
	}

	xdgConfig := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	configFile := strings.TrimSpace(os.Getenv("PRIMATA_CONFIG_FILE"))
	if configFile == "" {
		configFile = filepath.Join(xdgConfig, "primata", "console.env")
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("env")
	// A missing config file is fine; env vars and defaults still apply.
	_ = v.ReadInConfig()

	v.SetEnvPrefix("PRIMATA")
	v.AutomaticEnv()

	_ = v.BindEnv("api_endpoint", "PRIMATA_API_ENDPOINT", "API_ENDPOINT")
	_ = v.BindEnv("api_token", "PRIMATA_API_TOKEN", "API_TOKEN")
	_ = v.BindEnv("api_timeout_ms", "PRIMATA_API_TIMEOUT_MS")
	_ = v.BindEnv("api_max_retries", "PRIMATA_API_MAX_RETRIES")
	_ = v.BindEnv("log_calls", "PRIMATA_LOG_CALLS")
	_ = v.BindEnv("window_span", "PRIMATA_WINDOW_SPAN")
	_ = v.BindEnv("grid_first_hour", "PRIMATA_GRID_FIRST_HOUR")
	_ = v.BindEnv("grid_last_hour", "PRIMATA_GRID_LAST_HOUR")

	v.SetDefault("api_endpoint", "http://localhost:3000")
	v.SetDefault("api_timeout_ms", 10000)
	v.SetDefault("api_max_retries", 1)
	v.SetDefault("log_calls", false)
	v.SetDefault("window_span", 7)
	v.SetDefault("grid_first_hour", 8)
	v.SetDefault("grid_last_hour", 23)

	rt := Runtime{
		ConfigFile: configFile,
		Endpoint:   strings.TrimRight(strings.TrimSpace(v.GetString("api_endpoint")), "/"),
		Token:      strings.TrimSpace(v.GetString("api_token")),
		TimeoutMs:  v.GetInt("api_timeout_ms"),
		MaxRetries: v.GetInt("api_max_retries"),
		LogCalls:   v.GetBool("log_calls"),
		Span:       v.GetInt("window_span"),
		FirstHour:  v.GetInt("grid_first_hour"),
		LastHour:   v.GetInt("grid_last_hour"),
	}

	if rt.Endpoint == "" {
		return Runtime{}, fmt.Errorf("api endpoint must not be empty")
	}
	if rt.TimeoutMs <= 0 {
		rt.TimeoutMs = 10000
	}
	if rt.MaxRetries < 0 {
		rt.MaxRetries = 0
	}
	if rt.Span < 1 {
		rt.Span = 7
	}
	if rt.FirstHour < 0 || rt.FirstHour > 23 {
		rt.FirstHour = 8
	}
	if rt.LastHour <= rt.FirstHour || rt.LastHour > 23 {
		rt.LastHour = 23
	}

	return rt, nil
}
