package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/footyrecords/club-history/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	LogLevel       logging.Level

	// DBURL empty selects the in-memory store.
	DBURL string

	CORSAllowedOrigins []string

	// AdminToken gates season submission and other mutating routes.
	AdminToken string

	StabilityMaxWorkers int

	EstimatorEnabled               bool
	EstimatorBaseURL               string
	EstimatorToken                 string
	EstimatorTimeout               time.Duration
	EstimatorMaxRetries            int
	EstimatorCircuitEnabled        bool
	EstimatorCircuitFailureCount   int
	EstimatorCircuitOpenTimeout    time.Duration
	EstimatorCircuitHalfOpenMaxReq int

	RecalcQueueEnabled bool
	RecalcQueueBaseURL string
	RecalcQueueToken   string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	stabilityMaxWorkers, err := getEnvAsInt("STABILITY_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse STABILITY_MAX_WORKERS: %w", err)
	}
	if stabilityMaxWorkers < 1 {
		return Config{}, fmt.Errorf("STABILITY_MAX_WORKERS must be >= 1")
	}

	estimatorEnabled, err := strconv.ParseBool(getEnv("ESTIMATOR_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESTIMATOR_ENABLED: %w", err)
	}
	estimatorTimeout, err := time.ParseDuration(getEnv("ESTIMATOR_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESTIMATOR_TIMEOUT: %w", err)
	}
	estimatorMaxRetries, err := getEnvAsInt("ESTIMATOR_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESTIMATOR_MAX_RETRIES: %w", err)
	}
	estimatorCircuitEnabled, err := strconv.ParseBool(getEnv("ESTIMATOR_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESTIMATOR_CIRCUIT_ENABLED: %w", err)
	}
	estimatorCircuitFailureCount, err := getEnvAsInt("ESTIMATOR_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESTIMATOR_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	estimatorCircuitOpenTimeout, err := time.ParseDuration(getEnv("ESTIMATOR_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESTIMATOR_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	estimatorCircuitHalfOpenMaxReq, err := getEnvAsInt("ESTIMATOR_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESTIMATOR_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	estimatorBaseURL := strings.TrimSpace(getEnv("ESTIMATOR_BASE_URL", ""))
	if estimatorEnabled && estimatorBaseURL == "" {
		return Config{}, fmt.Errorf("ESTIMATOR_BASE_URL is required when ESTIMATOR_ENABLED=true")
	}

	recalcQueueEnabled, err := strconv.ParseBool(getEnv("RECALC_QUEUE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RECALC_QUEUE_ENABLED: %w", err)
	}
	recalcQueueBaseURL := strings.TrimSpace(getEnv("RECALC_QUEUE_BASE_URL", ""))
	recalcQueueToken := strings.TrimSpace(getEnv("RECALC_QUEUE_TOKEN", ""))
	if recalcQueueEnabled {
		if recalcQueueBaseURL == "" {
			return Config{}, fmt.Errorf("RECALC_QUEUE_BASE_URL is required when RECALC_QUEUE_ENABLED=true")
		}
		if recalcQueueToken == "" {
			return Config{}, fmt.Errorf("RECALC_QUEUE_TOKEN is required when RECALC_QUEUE_ENABLED=true")
		}
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	cfg := Config{
		AppEnv:                         appEnv,
		ServiceName:                    getEnv("APP_SERVICE_NAME", "club-history-api"),
		ServiceVersion:                 getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                       getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                    readTimeout,
		WriteTimeout:                   writeTimeout,
		LogLevel:                       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DBURL:                          strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:             splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AdminToken:                     strings.TrimSpace(getEnv("ADMIN_TOKEN", "")),
		StabilityMaxWorkers:            stabilityMaxWorkers,
		EstimatorEnabled:               estimatorEnabled,
		EstimatorBaseURL:               estimatorBaseURL,
		EstimatorToken:                 strings.TrimSpace(getEnv("ESTIMATOR_TOKEN", "")),
		EstimatorTimeout:               estimatorTimeout,
		EstimatorMaxRetries:            estimatorMaxRetries,
		EstimatorCircuitEnabled:        estimatorCircuitEnabled,
		EstimatorCircuitFailureCount:   estimatorCircuitFailureCount,
		EstimatorCircuitOpenTimeout:    estimatorCircuitOpenTimeout,
		EstimatorCircuitHalfOpenMaxReq: estimatorCircuitHalfOpenMaxReq,
		RecalcQueueEnabled:             recalcQueueEnabled,
		RecalcQueueBaseURL:             recalcQueueBaseURL,
		RecalcQueueToken:               recalcQueueToken,
		UptraceEnabled:                 uptraceEnabled,
		UptraceDSN:                     uptraceDSN,
		PyroscopeEnabled:               pyroscopeEnabled,
		PyroscopeServerAddress:         pyroscopeServerAddress,
		PyroscopeAuthToken:             strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:            pyroscopeUploadRate,
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case EnvDev, EnvStage, EnvProd:
		return v, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
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
