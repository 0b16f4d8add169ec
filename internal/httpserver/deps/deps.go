package deps

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/showreel/internal/index"
	"github.com/MrSnakeDoc/showreel/internal/logger"
	"github.com/MrSnakeDoc/showreel/internal/render"
	redisstore "github.com/MrSnakeDoc/showreel/internal/store/redis"
)

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time   // for testing, defaults to time.Now
	MemoryIndex     *index.MemoryIndex // In-memory catalog, about page and play counters
	Renderer        *render.Renderer   // HTML page renderer
	Pages           *cache.Cache       // Rendered page cache (nil = disabled)
	Store           *redisstore.Store  // Redis store (nil when Redis is disabled)
	RedisClient     *redis.Client      // Redis client connection (nil when Redis is disabled)
	AllowedHosts    []string           // Host headers allowed to access /reload
	AllowedCIDRS    []string           // IPs allowed to access ops endpoints
	TrustProxy      bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	AssetsDir       string             // Directory holding thumbnails/ and images/
	ReloadTrigger   chan struct{}      // Channel to trigger manual catalog reload
	RateLimitBurst  int                // /api token bucket size per client
	RateLimitPerMin int                // /api refill rate per client
}

// Now returns the current time, honouring TimeNow when set
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
