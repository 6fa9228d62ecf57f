package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
			Mode: "debug",
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:3000/api/v1",
			Timeout: "15s",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{Path: "data/test.db"},
		},
		Session: SessionConfig{
			Secret:      "0123456789abcdef0123456789abcdef",
			TokenExpiry: "24h",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TrimsAndNormalizes(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Host = "  127.0.0.1  "
	cfg.Upstream.BaseURL = "http://localhost:3000/api/v1/"
	cfg.Log.Level = "  INFO "

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("host not trimmed: %q", cfg.Server.Host)
	}
	if cfg.Upstream.BaseURL != "http://localhost:3000/api/v1" {
		t.Errorf("base url trailing slash not stripped: %q", cfg.Upstream.BaseURL)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level not normalized: %q", cfg.Log.Level)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"bad mode", func(c *Config) { c.Server.Mode = "production" }, "server.mode"},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"empty host", func(c *Config) { c.Server.Host = "  " }, "server.host"},
		{"missing base url", func(c *Config) { c.Upstream.BaseURL = "" }, "upstream.base_url"},
		{"bad base url scheme", func(c *Config) { c.Upstream.BaseURL = "ftp://host" }, "scheme"},
		{"http upstream in release mode", func(c *Config) {
			c.Server.Mode = "release"
			c.Upstream.BaseURL = "http://host/api"
		}, "https"},
		{"bad driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"sqlite without path", func(c *Config) { c.Database.SQLite.Path = "" }, "database.sqlite.path"},
		{"postgres without host", func(c *Config) {
			c.Database.Driver = "postgres"
		}, "database.postgres.host"},
		{"missing secret", func(c *Config) { c.Session.Secret = "" }, "session.secret"},
		{"short secret", func(c *Config) { c.Session.Secret = "tooshort" }, "32 characters"},
		{"weak secret in release mode", func(c *Config) {
			c.Server.Mode = "release"
			c.Upstream.BaseURL = "https://host/api"
			c.Session.Secret = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
		}, "character classes"},
		{"missing token expiry", func(c *Config) { c.Session.TokenExpiry = "" }, "session.token_expiry"},
		{"bad token expiry", func(c *Config) { c.Session.TokenExpiry = "soon" }, "session.token_expiry"},
		{"negative token expiry", func(c *Config) { c.Session.TokenExpiry = "-1h" }, "greater than 0"},
		{"bad upstream timeout", func(c *Config) { c.Upstream.Timeout = "fast" }, "upstream.timeout"},
		{"bad view ttl", func(c *Config) { c.Session.ViewTTL = "forever" }, "session.view_ttl"},
		{"bad user ttl", func(c *Config) { c.Cache.UserTTL = "10minutes" }, "cache.user_ttl"},
		{"negative prime concurrency", func(c *Config) { c.Cache.PrimeConcurrency = -1 }, "cache.prime_concurrency"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("expected error to mention %q, got %q", tt.wantSub, err.Error())
			}
		})
	}
}

func TestCountSecretClasses(t *testing.T) {
	tests := []struct {
		secret string
		want   int
	}{
		{"", 0},
		{"aaaa", 1},
		{"aaaaAAAA", 2},
		{"aaaaAAAA1111", 3},
		{"aaaaAAAA1111!!!!", 4},
	}
	for _, tt := range tests {
		if got := CountSecretClasses(tt.secret); got != tt.want {
			t.Errorf("CountSecretClasses(%q) = %d, want %d", tt.secret, got, tt.want)
		}
	}
}
