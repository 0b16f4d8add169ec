package config

import (
	"os"
	"testing"
	"time"
)

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "invalid value uses default",
			key:      "TEST_BOOL_INVALID",
			value:    "invalid",
			def:      true,
			expected: true,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{
			name:     "single value",
			value:    "value1",
			expected: []string{"value1"},
		},
		{
			name:     "multiple values",
			value:    "value1, value2, value3",
			expected: []string{"value1", "value2", "value3"},
		},
		{
			name:     "quoted values and blanks",
			value:    `"a.example", , 'b.example'`,
			expected: []string{"a.example", "b.example"},
		},
		{
			name:     "empty",
			value:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.value)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() length = %v, want %v", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestNormalizePort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8080", ":8080"},
		{":9000", ":9000"},
		{"127.0.0.1:8080", "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalizePort(tt.in); got != tt.want {
				t.Errorf("normalizePort(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ScrollOffset != 80 {
		t.Errorf("ScrollOffset = %d, want 80", cfg.ScrollOffset)
	}
	if cfg.PageCacheTTL != 5*time.Minute {
		t.Errorf("PageCacheTTL = %v, want 5m", cfg.PageCacheTTL)
	}
	if cfg.CatalogFile != "" || cfg.AboutFile != "" {
		t.Errorf("content files should default to bundled, got %q %q", cfg.CatalogFile, cfg.AboutFile)
	}
	if cfg.RedisEnabled() {
		t.Error("RedisEnabled() should be false without SHOWREEL_REDIS_ADDR")
	}
	if cfg.RateLimitBurst != 60 || cfg.RateLimitPerMin != 120 {
		t.Errorf("rate limit = %d/%d, want 60/120", cfg.RateLimitBurst, cfg.RateLimitPerMin)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHOWREEL_LISTEN_PORT", "9090")
	t.Setenv("SHOWREEL_CATALOG_FILE", "/data/catalog.yaml")
	t.Setenv("SHOWREEL_REDIS_ADDR", "localhost:6379")
	t.Setenv("SHOWREEL_ALLOWED_CIDRS", "10.0.0.0/8, 127.0.0.1")
	t.Setenv("SHOWREEL_WATCH_CATALOG", "false")

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %q, want :9090", cfg.ListenPort)
	}
	if cfg.CatalogFile != "/data/catalog.yaml" {
		t.Errorf("CatalogFile = %q", cfg.CatalogFile)
	}
	if !cfg.RedisEnabled() {
		t.Error("RedisEnabled() should be true")
	}
	if len(cfg.AllowedCIDRS) != 2 {
		t.Errorf("AllowedCIDRS = %v, want 2 entries", cfg.AllowedCIDRS)
	}
	if cfg.WatchCatalog {
		t.Error("WatchCatalog should be false")
	}
}

func TestLoadPanicsOnInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative scroll offset", "SHOWREEL_SCROLL_OFFSET", "-1"},
		{"zero reload interval", "SHOWREEL_RELOAD_INTERVAL", "0s"},
		{"zero rate limit", "SHOWREEL_RATE_LIMIT_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Load() should have panicked")
				}
			}()

			Load()
		})
	}
}

func TestLoadRedisPasswordRequired(t *testing.T) {
	t.Setenv("SHOWREEL_REDIS_ADDR", "localhost:6379")
	t.Setenv("SHOWREEL_REDIS_PASSWORD_REQUIRED", "true")

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Load() should have panicked without password")
		}
	}()

	Load()
}
