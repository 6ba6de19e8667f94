package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "default values",
			env:  map[string]string{"PROJECT_ROOT": "/srv/app"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "8000" {
					t.Errorf("expected port 8000, got %s", cfg.Port)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("expected log level info, got %s", cfg.LogLevel)
				}
				if cfg.CSVPath != filepath.Join("/srv/app", DEFAULT_CSV_RESOURCE) {
					t.Errorf("unexpected CSV path %s", cfg.CSVPath)
				}
				if cfg.FrontendDist != filepath.Join("/srv/app", "frontend", "dist") {
					t.Errorf("unexpected frontend dist %s", cfg.FrontendDist)
				}
				if got := cfg.TrainCutoff.Format(time.DateOnly); got != DEFAULT_TRAIN_CUTOFF {
					t.Errorf("expected cutoff %s, got %s", DEFAULT_TRAIN_CUTOFF, got)
				}
				if got := cfg.ValidationStart.Format(time.DateOnly); got != DEFAULT_VALIDATION_START {
					t.Errorf("expected validation start %s, got %s", DEFAULT_VALIDATION_START, got)
				}
				if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
					t.Errorf("expected wildcard origin, got %v", cfg.AllowedOrigins)
				}
				if cfg.RunLogEnabled() {
					t.Errorf("run log should be disabled without REDIS_ADDR")
				}
				if cfg.RunLogSize != DEFAULT_RUN_LOG_SIZE {
					t.Errorf("expected run log size %d, got %d", DEFAULT_RUN_LOG_SIZE, cfg.RunLogSize)
				}
			},
		},
		{
			name: "custom values",
			env: map[string]string{
				"PORT":             "9000",
				"LOG_LEVEL":        "debug",
				"CSV_PATH":         "/data/calls.csv",
				"TRAIN_CUTOFF":     "2025-03-31",
				"VALIDATION_START": "2025-05-01",
				"ALLOWED_ORIGINS":  "http://example.com, http://test.com",
				"REDIS_ADDR":       "localhost:6379",
				"REDIS_DB":         "2",
				"RUN_LOG_SIZE":     "10",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("expected port 9000, got %s", cfg.Port)
				}
				if cfg.CSVPath != "/data/calls.csv" {
					t.Errorf("expected CSV path /data/calls.csv, got %s", cfg.CSVPath)
				}
				if got := cfg.TrainCutoff.Format(time.DateOnly); got != "2025-03-31" {
					t.Errorf("expected cutoff 2025-03-31, got %s", got)
				}
				if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://test.com" {
					t.Errorf("expected 2 trimmed origins, got %v", cfg.AllowedOrigins)
				}
				if !cfg.RunLogEnabled() || cfg.RedisDB != 2 || cfg.RunLogSize != 10 {
					t.Errorf("unexpected redis settings: %+v", cfg)
				}
			},
		},
		{
			name:    "invalid cutoff",
			env:     map[string]string{"TRAIN_CUTOFF": "31/08/2025"},
			wantErr: true,
		},
		{
			name:    "cutoff after validation start",
			env:     map[string]string{"TRAIN_CUTOFF": "2025-10-05", "VALIDATION_START": "2025-10-01"},
			wantErr: true,
		},
		{
			name:    "cutoff equal to validation start",
			env:     map[string]string{"TRAIN_CUTOFF": "2025-10-01", "VALIDATION_START": "2025-10-01"},
			wantErr: true,
		},
		{
			name:    "invalid REDIS_DB",
			env:     map[string]string{"REDIS_DB": "zero"},
			wantErr: true,
		},
		{
			name:    "non-positive RUN_LOG_SIZE",
			env:     map[string]string{"RUN_LOG_SIZE": "-3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestModelOrder(t *testing.T) {
	if got := ModelOrder.String(); got != "SARIMA(1,1,1)(1,1,1)[7]" {
		t.Errorf("unexpected model order %s", got)
	}
}
