package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// OAuthCarrier holds settings of a carrier API authenticated with OAuth client credentials.
type OAuthCarrier struct {
	// Enabled registers the carrier client with the tracker
	Enabled bool `yaml:"enabled"`
	// BaseURL overrides the production API host
	BaseURL string `yaml:"baseUrl" validate:"omitempty,url"`
	// ClientID is the OAuth client id
	ClientID string `yaml:"clientId" validate:"required_if=Enabled true"`
	// ClientSecret is the OAuth client secret
	ClientSecret string `yaml:"clientSecret" validate:"required_if=Enabled true"`
}

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, tracking behavior,
// credential caching, locality resolution, database connection, carrier APIs
// and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment" validate:"oneof=development production test"` //nolint: lll

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins" validate:"dive,required"`
	} `yaml:"http"`

	// JWT holds the RS256 key pair used to authenticate API callers.
	// Authentication is disabled while PublicKey is empty.
	JWT struct {
		// PublicKey is the PEM encoded key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded key used by the jwt command to mint tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Tracking configures retries, timeouts and fallback chains of the orchestrator
	Tracking struct {
		// AttemptTimeout bounds a single call to a carrier API
		AttemptTimeout time.Duration `env:"TRACKING_ATTEMPT_TIMEOUT" env-default:"15s" yaml:"attemptTimeout" validate:"gt=0"` //nolint: lll
		// MaxRetries is how many times a transient failure is retried per provider
		MaxRetries uint64 `env:"TRACKING_MAX_RETRIES" env-default:"2" yaml:"maxRetries" validate:"lte=5"`
		// RetryBaseDelay is the first backoff delay
		RetryBaseDelay time.Duration `env:"TRACKING_RETRY_BASE_DELAY" env-default:"200ms" yaml:"retryBaseDelay" validate:"gt=0"` //nolint: lll
		// RetryMaxDelay caps a single backoff delay
		RetryMaxDelay time.Duration `env:"TRACKING_RETRY_MAX_DELAY" env-default:"2s" yaml:"retryMaxDelay" validate:"gtefield=RetryBaseDelay"` //nolint: lll
		// LocalityConcurrency limits parallel locality lookups within one call
		LocalityConcurrency int `env:"TRACKING_LOCALITY_CONCURRENCY" env-default:"4" yaml:"localityConcurrency" validate:"gte=1,lte=32"` //nolint: lll
		// Chains overrides the provider fallback order per carrier
		Chains map[string][]string `yaml:"chains" validate:"dive,keys,oneof=ups upsmi fedex usps dhl dhlgm ontrac,endkeys,min=1"` //nolint: lll
		// UnderReporting lists providers whose single-event replies trigger fallback
		UnderReporting []string `env:"TRACKING_UNDER_REPORTING" env-separator:"," yaml:"underReporting"`
	} `yaml:"tracking"`

	// Credentials configures where carrier bearer tokens are cached
	Credentials struct {
		// Backend is either memory or redis
		Backend string `env:"CREDENTIALS_BACKEND" env-default:"memory" yaml:"backend" validate:"oneof=memory redis"`
		// SafetyMargin is subtracted from token lifetimes
		SafetyMargin time.Duration `env:"CREDENTIALS_SAFETY_MARGIN" env-default:"100s" yaml:"safetyMargin" validate:"gte=0"` //nolint: lll
		// Redis holds the redis connection used by the redis backend
		Redis struct {
			// Addr is the redis server address
			Addr string `env:"CREDENTIALS_REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
			// Password for redis authentication
			Password string `env:"CREDENTIALS_REDIS_PASSWORD" yaml:"password"`
			// DB is the redis database number
			DB int `env:"CREDENTIALS_REDIS_DB" env-default:"0" yaml:"db"`
			// Prefix namespaces token keys
			Prefix string `env:"CREDENTIALS_REDIS_PREFIX" env-default:"tracker:token:" yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"credentials"`

	// Locality configures how free-text event locations are resolved
	Locality struct {
		// Backend is none, geocoder or postgres
		Backend string `env:"LOCALITY_BACKEND" env-default:"none" yaml:"backend" validate:"oneof=none geocoder postgres"`
		// Cache stores geocoder answers in the postgres gazetteer
		Cache bool `env:"LOCALITY_CACHE" env-default:"false" yaml:"cache"`
		// BaseURL overrides the geocoding API host
		BaseURL string `env:"LOCALITY_BASE_URL" yaml:"baseUrl" validate:"omitempty,url"`
		// APIKey authenticates against the geocoding API
		APIKey string `env:"LOCALITY_API_KEY" yaml:"apiKey" validate:"required_if=Backend geocoder"`
		// RequestsPerSecond limits outbound geocoding calls
		RequestsPerSecond float64 `env:"LOCALITY_REQUESTS_PER_SECOND" env-default:"10" yaml:"requestsPerSecond" validate:"gt=0"` //nolint: lll
		// Burst is the limiter burst size
		Burst int `env:"LOCALITY_BURST" env-default:"1" yaml:"burst" validate:"gte=1"`
	} `yaml:"locality"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"tracker" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
		// ConnectRetries is how many times an unreachable server is pinged on startup
		ConnectRetries uint64 `env:"DATABASE_CONNECT_RETRIES" env-default:"3" yaml:"connectRetries" validate:"lte=10"`
	} `yaml:"database"`

	// Carriers holds per-carrier API settings. Disabled carriers are left out of fallback chains.
	Carriers struct {
		UPS   OAuthCarrier `yaml:"ups"`
		UPSMI struct {
			Enabled bool   `yaml:"enabled"`
			BaseURL string `yaml:"baseUrl" validate:"omitempty,url"`
		} `yaml:"upsmi"`
		FedEx      OAuthCarrier `yaml:"fedex"`
		USPS       OAuthCarrier `yaml:"usps"`
		USPSLegacy struct {
			Enabled  bool   `yaml:"enabled"`
			BaseURL  string `yaml:"baseUrl" validate:"omitempty,url"`
			UserID   string `yaml:"userId" validate:"required_if=Enabled true"`
			ClientIP string `yaml:"clientIp"`
		} `yaml:"uspsLegacy"`
		DHL struct {
			Enabled bool   `yaml:"enabled"`
			BaseURL string `yaml:"baseUrl" validate:"omitempty,url"`
			APIKey  string `yaml:"apiKey" validate:"required_if=Enabled true"`
		} `yaml:"dhl"`
		DHLGM  OAuthCarrier `yaml:"dhlgm"`
		OnTrac struct {
			Enabled  bool   `yaml:"enabled"`
			BaseURL  string `yaml:"baseUrl" validate:"omitempty,url"`
			Account  string `yaml:"account" validate:"required_if=Enabled true"`
			Password string `yaml:"password" validate:"required_if=Enabled true"`
		} `yaml:"ontrac"`
	} `yaml:"carriers"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled and validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints that cleanenv cannot express.
func Validate(cfg *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
