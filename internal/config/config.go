package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, HTTP server, database connection,
// third-party providers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log configures the optional rotating log file written next to stdout.
	Log struct {
		// File is the path of the log file. Empty disables the file sink.
		File       string `env:"LOG_FILE" env-default:"" yaml:"file"`
		MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" env-default:"100" yaml:"maxSizeMB"`
		MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"5" yaml:"maxBackups"`
		MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" env-default:"30" yaml:"maxAgeDays"`
	} `yaml:"log"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// DebugAddr is the private address serving pprof. Empty disables it.
		DebugAddr string `env:"HTTP_DEBUG_ADDR" env-default:"" yaml:"debugAddr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// PDF exports are exempt and bounded by Export.Timeout instead.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"15s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins restricts CORS to the listed origins. Empty allows any origin without credentials.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// TrustedProxies is the number of reverse proxies in front of the server that append
		// to X-Forwarded-For. Zero ignores the header and uses the connection address.
		TrustedProxies int `env:"HTTP_TRUSTED_PROXIES" env-default:"0" yaml:"trustedProxies"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"guidiqo" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Auth configures bearer-token verification and the super-admin gate.
	Auth struct {
		// PublicKey is the PEM encoded RSA public key used to verify RS256 tokens.
		PublicKey string `env:"AUTH_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key. Only the jwt command uses it.
		PrivateKey string `env:"AUTH_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
		// AdminEmails grants super-admin access regardless of the token role.
		AdminEmails []string `env:"AUTH_ADMIN_EMAILS" env-separator:"," yaml:"adminEmails"`
	} `yaml:"auth"`

	// Images configures the stock-photo proxy.
	Images struct {
		UnsplashKey string `env:"UNSPLASH_ACCESS_KEY" env-default:"" yaml:"unsplashKey"`
		PexelsKey   string `env:"PEXELS_API_KEY" env-default:"" yaml:"pexelsKey"`
		// DefaultProvider is queried first unless the request names another provider.
		DefaultProvider string `env:"IMAGES_DEFAULT_PROVIDER" env-default:"unsplash" yaml:"defaultProvider"`
		// CacheTTL is how long a proxied response is served from memory.
		CacheTTL time.Duration `env:"IMAGES_CACHE_TTL" env-default:"1h" yaml:"cacheTTL"`
		// RateLimitCapacity is the token-bucket size per client IP, refilled linearly every hour.
		RateLimitCapacity int `env:"IMAGES_RATE_LIMIT_CAPACITY" env-default:"100" yaml:"rateLimitCapacity"`
		// SweepSchedule is the cron spec of the cache and bucket cleanup.
		SweepSchedule string `env:"IMAGES_SWEEP_SCHEDULE" env-default:"@every 10m" yaml:"sweepSchedule"`
		// HTTPTimeout bounds every call to a provider.
		HTTPTimeout time.Duration `env:"IMAGES_HTTP_TIMEOUT" env-default:"8s" yaml:"httpTimeout"`
		// FallbackURL is served when every provider failed or returned nothing.
		FallbackURL string `env:"IMAGES_FALLBACK_URL" env-default:"https://images.unsplash.com/photo-1557683316-973673baf926?w=1920&q=80" yaml:"fallbackURL"` //nolint: lll
	} `yaml:"images"`

	// Newsletter configures campaign delivery.
	Newsletter struct {
		ResendKey string `env:"RESEND_API_KEY" env-default:"" yaml:"resendKey"`
		// From is the sender address, e.g. "Guidiqo <news@guidiqo.com>".
		From string `env:"NEWSLETTER_FROM" env-default:"Guidiqo <newsletter@guidiqo.com>" yaml:"from"`
		// BatchSize is the number of recipients sent per provider call.
		BatchSize int `env:"NEWSLETTER_BATCH_SIZE" env-default:"50" yaml:"batchSize"`
		// SendRate is the number of provider calls per second shared by all delivery jobs.
		SendRate float64 `env:"NEWSLETTER_SEND_RATE" env-default:"2" yaml:"sendRate"`
		// UnsubscribeSecret signs the HS256 unsubscribe tokens.
		UnsubscribeSecret string `env:"NEWSLETTER_UNSUBSCRIBE_SECRET" env-default:"change-me" yaml:"unsubscribeSecret"`
		// PublicBaseURL is the site URL used to build unsubscribe links.
		PublicBaseURL string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:8080" yaml:"publicBaseURL"`
	} `yaml:"newsletter"`

	// AI configures the suggestion endpoints.
	AI struct {
		GeminiKey string `env:"GEMINI_API_KEY" env-default:"" yaml:"geminiKey"`
		Model     string `env:"AI_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
		// Timeout bounds a single generation call before the catalog fallback is used.
		Timeout time.Duration `env:"AI_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"ai"`

	// Export configures the PDF renderer.
	Export struct {
		// ChromeURL is the DevTools websocket of a running Chrome. Empty launches a local headless browser.
		ChromeURL string `env:"EXPORT_CHROME_URL" env-default:"" yaml:"chromeURL"`
		// Disabled turns PDF export off, e.g. on hosts without Chrome.
		Disabled bool          `env:"EXPORT_DISABLED" env-default:"false" yaml:"disabled"`
		Timeout  time.Duration `env:"EXPORT_TIMEOUT" env-default:"45s" yaml:"timeout"`
	} `yaml:"export"`

	// Worker configures the background job processor.
	Worker struct {
		// MaxWorkers is the number of concurrent newsletter jobs.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"2" yaml:"maxWorkers"`
		// MaxAttempts is the number of tries before a campaign is marked failed.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RateLimitSnooze is how long a job waits after the email provider throttled it.
		RateLimitSnooze time.Duration `env:"WORKER_RATE_LIMIT_SNOOZE" env-default:"1m" yaml:"rateLimitSnooze"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
