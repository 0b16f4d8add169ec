package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile    string        // path to catalog.yaml (empty = bundled catalog)
	AboutFile      string        // path to about.md (empty = bundled page)
	AssetsDir      string        // directory holding thumbnails/ and images/
	ReloadInterval time.Duration // interval to reload the catalog (default: 24h)
	GCInterval     time.Duration // interval to drop stale play counters (default: 24h)
	WatchCatalog   bool          // reload on catalog file change
	PageCacheTTL   time.Duration // rendered page cache TTL (0 = no cache)
	ScrollOffset   int           // fixed nav height compensation, in pixels

	// Redis (optional, empty addr = disabled)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts    []string // optional, restrict /reload to specific Host headers
	AllowedCIDRS    []string // optional, restrict ops routes to specific IP (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy      bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	RateLimitBurst  int      // api token bucket size per client
	RateLimitPerMin int      // api refill rate per client
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      normalizePort(getenv("SHOWREEL_LISTEN_PORT", ":8080")),
		ShutdownTimeout: mustDuration("SHOWREEL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SHOWREEL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SHOWREEL_PRETTY_LOG", true),

		// Content
		CatalogFile:    getenv("SHOWREEL_CATALOG_FILE", ""),
		AboutFile:      getenv("SHOWREEL_ABOUT_FILE", ""),
		AssetsDir:      getenv("SHOWREEL_ASSETS_DIR", "./public"),
		ReloadInterval: mustDuration("SHOWREEL_RELOAD_INTERVAL", 24*time.Hour),
		GCInterval:     mustDuration("SHOWREEL_GC_INTERVAL", 24*time.Hour),
		WatchCatalog:   mustBool("SHOWREEL_WATCH_CATALOG", true),
		PageCacheTTL:   mustDuration("SHOWREEL_PAGE_CACHE_TTL", 5*time.Minute),
		ScrollOffset:   getenvInt("SHOWREEL_SCROLL_OFFSET", 80),

		// Redis settings
		RedisAddr:             getenv("SHOWREEL_REDIS_ADDR", ""),
		RedisUser:             getenv("SHOWREEL_REDIS_USERNAME", ""),
		RedisPasswordRequired: mustBool("SHOWREEL_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("SHOWREEL_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("SHOWREEL_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts:    splitAndTrim(getenv("SHOWREEL_ALLOWED_HOSTS", "")),
		AllowedCIDRS:    parseAllowedIPs(getenv("SHOWREEL_ALLOWED_CIDRS", "")),
		TrustProxy:      mustBool("SHOWREEL_TRUST_PROXY", false),
		RateLimitBurst:  getenvInt("SHOWREEL_RATE_LIMIT_BURST", 60),
		RateLimitPerMin: getenvInt("SHOWREEL_RATE_LIMIT_PER_MIN", 120),
	}

	cfg.validate()

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// RedisEnabled reports whether a Redis address is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func (c *Config) validate() {
	if c.RedisEnabled() && c.RedisPasswordRequired && c.RedisPassword == "" {
		panic("❌ FATAL: SHOWREEL_REDIS_PASSWORD is required when SHOWREEL_REDIS_PASSWORD_REQUIRED=true")
	}
	if c.ReloadInterval <= 0 {
		panic(fmt.Sprintf("❌ FATAL: SHOWREEL_RELOAD_INTERVAL must be > 0, got %v", c.ReloadInterval))
	}
	if c.GCInterval <= 0 {
		panic(fmt.Sprintf("❌ FATAL: SHOWREEL_GC_INTERVAL must be > 0, got %v", c.GCInterval))
	}
	if c.PageCacheTTL < 0 {
		panic(fmt.Sprintf("❌ FATAL: SHOWREEL_PAGE_CACHE_TTL must be >= 0, got %v", c.PageCacheTTL))
	}
	if c.ScrollOffset < 0 {
		panic(fmt.Sprintf("❌ FATAL: SHOWREEL_SCROLL_OFFSET must be >= 0, got %d", c.ScrollOffset))
	}
	if c.RateLimitBurst <= 0 || c.RateLimitPerMin <= 0 {
		panic(fmt.Sprintf("❌ FATAL: rate limit must be > 0, got burst=%d per_min=%d", c.RateLimitBurst, c.RateLimitPerMin))
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// normalizePort accepts "8080" as well as ":8080" or "host:8080"
func normalizePort(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
