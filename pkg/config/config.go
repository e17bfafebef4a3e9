package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Upstream    UpstreamConfig
	Redis       RedisConfig
	Session     SessionConfig
	CORS        CORSConfig
	Log         LogConfig
	Admin       AdminConfig
	Listing     ListingConfig
	Options     OptionsConfig
	Leaderboard LeaderboardConfig
}

// UpstreamConfig points the console at the platform API that owns all
// business logic.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig controls browser session cookies and the console-signed
// session tokens stored inside them.
type SessionConfig struct {
	CookieSecret  string
	JWTSecret     string
	StudentMaxAge time.Duration
	AdminExpiry   time.Duration
	SecureCookies bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AdminConfig gates the admin console surface.
type AdminConfig struct {
	Enabled          bool
	AnalyticsEnabled bool
}

// ListingConfig tunes the shared fetch/filter/paginate behaviour of the admin
// list views.
type ListingConfig struct {
	DebounceWindow  time.Duration
	DefaultPageSize int
}

// OptionsConfig governs the shared option-set cache used by the question
// upload and role mapping forms.
type OptionsConfig struct {
	CacheTTL    time.Duration
	WarmWorkers int
}

// LeaderboardConfig toggles leaderboard snapshot exports.
type LeaderboardConfig struct {
	ExportEnabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
		Timeout: parseDuration(v.GetString("UPSTREAM_TIMEOUT"), 30*time.Second),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Session = SessionConfig{
		CookieSecret:  v.GetString("SESSION_COOKIE_SECRET"),
		JWTSecret:     v.GetString("SESSION_JWT_SECRET"),
		StudentMaxAge: parseDuration(v.GetString("STUDENT_SESSION_MAX_AGE"), 30*24*time.Hour),
		AdminExpiry:   parseDuration(v.GetString("ADMIN_SESSION_EXPIRY"), 12*time.Hour),
		SecureCookies: v.GetBool("SESSION_SECURE_COOKIES"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Admin = AdminConfig{
		Enabled:          v.GetBool("ENABLE_ADMIN_CONSOLE"),
		AnalyticsEnabled: v.GetBool("ENABLE_ADMIN_ANALYTICS"),
	}

	cfg.Listing = ListingConfig{
		DebounceWindow:  parseDuration(v.GetString("LISTING_DEBOUNCE_WINDOW"), 300*time.Millisecond),
		DefaultPageSize: v.GetInt("LISTING_DEFAULT_PAGE_SIZE"),
	}

	cfg.Options = OptionsConfig{
		CacheTTL:    parseDuration(v.GetString("OPTIONS_CACHE_TTL"), 10*time.Minute),
		WarmWorkers: v.GetInt("OPTIONS_WARM_WORKERS"),
	}

	cfg.Leaderboard = LeaderboardConfig{
		ExportEnabled: v.GetBool("ENABLE_LEADERBOARD_EXPORT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("UPSTREAM_BASE_URL", "http://localhost:8000")
	v.SetDefault("UPSTREAM_TIMEOUT", "30s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_COOKIE_SECRET", "dev_cookie_secret")
	v.SetDefault("SESSION_JWT_SECRET", "dev_session_secret")
	v.SetDefault("STUDENT_SESSION_MAX_AGE", "720h")
	v.SetDefault("ADMIN_SESSION_EXPIRY", "12h")
	v.SetDefault("SESSION_SECURE_COOKIES", false)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_ADMIN_CONSOLE", true)
	v.SetDefault("ENABLE_ADMIN_ANALYTICS", true)

	v.SetDefault("LISTING_DEBOUNCE_WINDOW", "300ms")
	v.SetDefault("LISTING_DEFAULT_PAGE_SIZE", 20)

	v.SetDefault("OPTIONS_CACHE_TTL", "10m")
	v.SetDefault("OPTIONS_WARM_WORKERS", 1)

	v.SetDefault("ENABLE_LEADERBOARD_EXPORT", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
