package config

import (
	"testing"
	"time"

	"github.com/footyrecords/club-history/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default http addr: %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("unexpected default timeouts: %s/%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected default log level: %v", cfg.LogLevel)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DB_URL to select the in-memory store, got %q", cfg.DBURL)
	}
	if cfg.StabilityMaxWorkers != 4 {
		t.Fatalf("unexpected default stability workers: %d", cfg.StabilityMaxWorkers)
	}
	if cfg.EstimatorEnabled || cfg.RecalcQueueEnabled || cfg.UptraceEnabled || cfg.PyroscopeEnabled {
		t.Fatalf("optional integrations must be disabled by default")
	}
}

func TestLoad_StabilityWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("rejects zero", func(t *testing.T) {
		t.Setenv("STABILITY_MAX_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for STABILITY_MAX_WORKERS=0")
		}
	})

	t.Run("rejects non-integer", func(t *testing.T) {
		t.Setenv("STABILITY_MAX_WORKERS", "many")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-integer STABILITY_MAX_WORKERS")
		}
	})
}

func TestLoad_EstimatorRequiresBaseURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ESTIMATOR_ENABLED", "true")
	t.Setenv("ESTIMATOR_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ESTIMATOR_ENABLED=true without ESTIMATOR_BASE_URL")
	}
}

func TestLoad_EstimatorConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ESTIMATOR_ENABLED", "true")
	t.Setenv("ESTIMATOR_BASE_URL", "https://popcensus.example.com")
	t.Setenv("ESTIMATOR_TOKEN", "token-123")
	t.Setenv("ESTIMATOR_TIMEOUT", "4s")
	t.Setenv("ESTIMATOR_MAX_RETRIES", "3")
	t.Setenv("ESTIMATOR_CIRCUIT_FAILURE_COUNT", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.EstimatorEnabled {
		t.Fatalf("expected EstimatorEnabled=true")
	}
	if cfg.EstimatorBaseURL != "https://popcensus.example.com" {
		t.Fatalf("unexpected EstimatorBaseURL: %q", cfg.EstimatorBaseURL)
	}
	if cfg.EstimatorToken != "token-123" {
		t.Fatalf("unexpected EstimatorToken")
	}
	if cfg.EstimatorTimeout != 4*time.Second {
		t.Fatalf("unexpected EstimatorTimeout: %s", cfg.EstimatorTimeout)
	}
	if cfg.EstimatorMaxRetries != 3 {
		t.Fatalf("unexpected EstimatorMaxRetries: %d", cfg.EstimatorMaxRetries)
	}
	if cfg.EstimatorCircuitFailureCount != 7 {
		t.Fatalf("unexpected EstimatorCircuitFailureCount: %d", cfg.EstimatorCircuitFailureCount)
	}
}

func TestLoad_RecalcQueueRequiresURLAndToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RECALC_QUEUE_ENABLED", "true")

	t.Run("missing base url", func(t *testing.T) {
		t.Setenv("RECALC_QUEUE_BASE_URL", "")
		t.Setenv("RECALC_QUEUE_TOKEN", "tok")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when RECALC_QUEUE_BASE_URL is missing")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("RECALC_QUEUE_BASE_URL", "https://queue.example.com")
		t.Setenv("RECALC_QUEUE_TOKEN", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when RECALC_QUEUE_TOKEN is missing")
		}
	})

	t.Run("enabled with required values", func(t *testing.T) {
		t.Setenv("RECALC_QUEUE_BASE_URL", "https://queue.example.com")
		t.Setenv("RECALC_QUEUE_TOKEN", "tok")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.RecalcQueueEnabled {
			t.Fatalf("expected RecalcQueueEnabled=true")
		}
	})
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "club-history-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "club-history-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logging.Level
	}{
		{in: "debug", want: logging.LevelDebug},
		{in: "WARN", want: logging.LevelWarn},
		{in: "warning", want: logging.LevelWarn},
		{in: "error", want: logging.LevelError},
		{in: "", want: logging.LevelInfo},
		{in: "nonsense", want: logging.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
