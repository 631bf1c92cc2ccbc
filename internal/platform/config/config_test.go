package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if !cfg.UseMock {
		t.Error("UseMock should default to true")
	}
	if cfg.SessionFile != ".fieldforce/session.json" {
		t.Errorf("SessionFile = %q", cfg.SessionFile)
	}
	if cfg.MockLatency != 200*time.Millisecond {
		t.Errorf("MockLatency = %v", cfg.MockLatency)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FF_USE_MOCK", "false")
	t.Setenv("FF_API_BASE_URL", "https://api.thegapcompany.co.zw")
	t.Setenv("FF_MOCK_LATENCY", "50ms")
	t.Setenv("FF_RATE_LIMIT_PER_MINUTE", "120")

	cfg := Load()
	if cfg.UseMock {
		t.Error("UseMock should be false")
	}
	if cfg.APIBaseURL != "https://api.thegapcompany.co.zw" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.MockLatency != 50*time.Millisecond {
		t.Errorf("MockLatency = %v", cfg.MockLatency)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Errorf("RateLimitPerMinute = %d", cfg.RateLimitPerMinute)
	}
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Setenv("FF_USE_MOCK", "not-a-bool")
	t.Setenv("FF_MOCK_LATENCY", "soon")
	t.Setenv("FF_RATE_LIMIT_PER_MINUTE", "many")

	cfg := Load()
	if !cfg.UseMock || cfg.MockLatency != 200*time.Millisecond || cfg.RateLimitPerMinute != 60 {
		t.Errorf("malformed values did not fall back: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		UseMock:            true,
		SessionFile:        "session.json",
		MockLatency:        200 * time.Millisecond,
		RequestTimeout:     15 * time.Second,
		RateLimitPerMinute: 60,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "mock defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "real mode needs base url", mutate: func(c *Config) { c.UseMock = false }, wantErr: true},
		{name: "real mode with base url", mutate: func(c *Config) { c.UseMock = false; c.APIBaseURL = "http://localhost:8080" }, wantErr: false},
		{name: "empty session file", mutate: func(c *Config) { c.SessionFile = "  " }, wantErr: true},
		{name: "negative latency", mutate: func(c *Config) { c.MockLatency = -time.Second }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimitPerMinute = 0 }, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
