package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	DBURL                   string
	DBDisablePreparedBinary bool
	CacheEnabled            bool
	CacheTTL                time.Duration
	CORSAllowedOrigins      []string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration

	NFLSeasonOpen  time.Time
	NFLSeasonWeeks int
	CFBSeasonOpen  time.Time
	CFBSeasonWeeks int

	ResolverWeeklyTolerance time.Duration
	ResolverRangeTolerance  time.Duration

	OddsAPIEnabled               bool
	OddsAPIBaseURL               string
	OddsAPIKey                   string
	OddsAPIRegions               string
	OddsAPIMarkets               string
	OddsAPITimeout               time.Duration
	OddsAPIMaxRetries            int
	OddsAPICircuitEnabled        bool
	OddsAPICircuitFailureCount   int
	OddsAPICircuitOpenTimeout    time.Duration
	OddsAPICircuitHalfOpenMaxReq int

	LogoCDNBaseURL string

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	nflSeasonOpen, err := getEnvAsTime("NFL_SEASON_OPEN", "2025-09-02T00:00:00Z")
	if err != nil {
		return Config{}, fmt.Errorf("parse NFL_SEASON_OPEN: %w", err)
	}
	nflSeasonWeeks, err := getEnvAsInt("NFL_SEASON_WEEKS", 18)
	if err != nil {
		return Config{}, fmt.Errorf("parse NFL_SEASON_WEEKS: %w", err)
	}
	if nflSeasonWeeks < 1 {
		return Config{}, fmt.Errorf("NFL_SEASON_WEEKS must be >= 1")
	}

	cfbSeasonOpen, err := getEnvAsTime("CFB_SEASON_OPEN", "2025-08-26T00:00:00Z")
	if err != nil {
		return Config{}, fmt.Errorf("parse CFB_SEASON_OPEN: %w", err)
	}
	cfbSeasonWeeks, err := getEnvAsInt("CFB_SEASON_WEEKS", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse CFB_SEASON_WEEKS: %w", err)
	}
	if cfbSeasonWeeks < 1 {
		return Config{}, fmt.Errorf("CFB_SEASON_WEEKS must be >= 1")
	}

	resolverWeeklyTolerance, err := time.ParseDuration(getEnv("RESOLVER_WEEKLY_TOLERANCE", "3h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RESOLVER_WEEKLY_TOLERANCE: %w", err)
	}
	if resolverWeeklyTolerance <= 0 {
		return Config{}, fmt.Errorf("RESOLVER_WEEKLY_TOLERANCE must be > 0")
	}
	resolverRangeTolerance, err := time.ParseDuration(getEnv("RESOLVER_RANGE_TOLERANCE", "48h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RESOLVER_RANGE_TOLERANCE: %w", err)
	}
	if resolverRangeTolerance <= 0 {
		return Config{}, fmt.Errorf("RESOLVER_RANGE_TOLERANCE must be > 0")
	}

	oddsAPIEnabled, err := strconv.ParseBool(getEnv("ODDS_API_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ODDS_API_ENABLED: %w", err)
	}
	oddsAPIKey := strings.TrimSpace(getEnv("ODDS_API_KEY", ""))
	if oddsAPIEnabled && oddsAPIKey == "" {
		return Config{}, fmt.Errorf("ODDS_API_KEY is required when ODDS_API_ENABLED=true")
	}
	oddsAPITimeout, err := time.ParseDuration(getEnv("ODDS_API_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ODDS_API_TIMEOUT: %w", err)
	}
	if oddsAPITimeout <= 0 {
		return Config{}, fmt.Errorf("ODDS_API_TIMEOUT must be > 0")
	}
	oddsAPIMaxRetries, err := getEnvAsInt("ODDS_API_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse ODDS_API_MAX_RETRIES: %w", err)
	}
	if oddsAPIMaxRetries < 0 {
		return Config{}, fmt.Errorf("ODDS_API_MAX_RETRIES must be >= 0")
	}
	oddsAPICircuitEnabled, err := strconv.ParseBool(getEnv("ODDS_API_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ODDS_API_CIRCUIT_ENABLED: %w", err)
	}
	oddsAPICircuitFailureCount, err := getEnvAsInt("ODDS_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ODDS_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if oddsAPICircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ODDS_API_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	oddsAPICircuitOpenTimeout, err := time.ParseDuration(getEnv("ODDS_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ODDS_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if oddsAPICircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ODDS_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	oddsAPICircuitHalfOpenMaxReq, err := getEnvAsInt("ODDS_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ODDS_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if oddsAPICircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ODDS_API_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "weekendlocks-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                   getEnv("DB_URL", ""),
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		CacheEnabled:            cacheEnabled,
		CacheTTL:                cacheTTL,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,

		NFLSeasonOpen:  nflSeasonOpen,
		NFLSeasonWeeks: nflSeasonWeeks,
		CFBSeasonOpen:  cfbSeasonOpen,
		CFBSeasonWeeks: cfbSeasonWeeks,

		ResolverWeeklyTolerance: resolverWeeklyTolerance,
		ResolverRangeTolerance:  resolverRangeTolerance,

		OddsAPIEnabled:               oddsAPIEnabled,
		OddsAPIBaseURL:               strings.TrimSpace(getEnv("ODDS_API_BASE_URL", "https://api.the-odds-api.com/v4")),
		OddsAPIKey:                   oddsAPIKey,
		OddsAPIRegions:               strings.TrimSpace(getEnv("ODDS_API_REGIONS", "us")),
		OddsAPIMarkets:               strings.TrimSpace(getEnv("ODDS_API_MARKETS", "spreads,totals,h2h")),
		OddsAPITimeout:               oddsAPITimeout,
		OddsAPIMaxRetries:            oddsAPIMaxRetries,
		OddsAPICircuitEnabled:        oddsAPICircuitEnabled,
		OddsAPICircuitFailureCount:   oddsAPICircuitFailureCount,
		OddsAPICircuitOpenTimeout:    oddsAPICircuitOpenTimeout,
		OddsAPICircuitHalfOpenMaxReq: oddsAPICircuitHalfOpenMaxReq,

		LogoCDNBaseURL: strings.TrimSpace(getEnv("LOGO_CDN_BASE_URL", "")),

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		LogLevel: parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsTime(key, fallback string) (time.Time, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		value = fallback
	}

	out, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}

	return out.UTC(), nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
