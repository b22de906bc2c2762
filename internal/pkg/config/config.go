package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListPageSize    = 50
	defaultListMaxPageSize = 200
)

type (
	Tasks struct {
		StaleAlertsRefreshInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		AllowedHosts     []string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Auth struct {
		SecretKey         string
		SuperuserUsername string
		SuperuserPassword string
	}

	App struct {
		Debug           bool
		LookupMatchMode string
		ListPageSize    int
		ListMaxPageSize int
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Auth     Auth
		App      App
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	staleAlertsInterval, err := osGetEnvDuration("BACKGROUND_STALE_ALERTS_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	debug, err := osGetBool("DEBUG")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	listPageSize, err := osGetInt("LIST_PAGE_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if listPageSize == 0 {
		listPageSize = defaultListPageSize
	}

	listMaxPageSize, err := osGetInt("LIST_MAX_PAGE_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if listMaxPageSize == 0 {
		listMaxPageSize = defaultListMaxPageSize
	}

	return &Config{
		Tasks: Tasks{
			StaleAlertsRefreshInterval: staleAlertsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			AllowedHosts:     osGetList("ALLOWED_HOSTS"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Auth: Auth{
			SecretKey:         os.Getenv("SECRET_KEY"),
			SuperuserUsername: os.Getenv("SUPERUSER_USERNAME"),
			SuperuserPassword: os.Getenv("SUPERUSER_PASSWORD"),
		},
		App: App{
			Debug:           debug,
			LookupMatchMode: os.Getenv("LOOKUP_MATCH_MODE"),
			ListPageSize:    listPageSize,
			ListMaxPageSize: listMaxPageSize,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if len(cfg.Server.AllowedHosts) == 0 && !cfg.App.Debug {
		return errors.New("ALLOWED_HOSTS is required when DEBUG is off")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Auth.SecretKey == "" {
		return errors.New("SECRET_KEY is required")
	}
	if cfg.Auth.SuperuserUsername == "" {
		return errors.New("SUPERUSER_USERNAME is required")
	}
	if cfg.Auth.SuperuserPassword == "" {
		return errors.New("SUPERUSER_PASSWORD is required")
	}

	switch cfg.App.LookupMatchMode {
	case "", "exact", "partial":
	default:
		return fmt.Errorf("LOOKUP_MATCH_MODE must be exact or partial, got %q", cfg.App.LookupMatchMode)
	}

	if cfg.App.ListPageSize > cfg.App.ListMaxPageSize {
		return errors.New("LIST_PAGE_SIZE must not exceed LIST_MAX_PAGE_SIZE")
	}

	if cfg.Tasks.StaleAlertsRefreshInterval == time.Duration(0) {
		return errors.New("BACKGROUND_STALE_ALERTS_REFRESH_INTERVAL is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	parts := strings.Split(val, ",")
	hosts := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			hosts = append(hosts, trimmed)
		}
	}
	return hosts
}
