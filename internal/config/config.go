package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// UpstreamGateway proxies searches to an API Gateway endpoint.
	UpstreamGateway = "gateway"
	// UpstreamLocal answers searches with the in-process knowledge base.
	UpstreamLocal = "local"
)

// Config represents the application configuration structure.
// Every field can be set from the yaml file or overridden by its env variable.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

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
		// RequestTimeout bounds a single request and must exceed Upstream.Timeout
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"40s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowOrigin is sent as Access-Control-Allow-Origin
		AllowOrigin string `env:"HTTP_ALLOW_ORIGIN" env-default:"*" yaml:"allowOrigin"`
	} `yaml:"http"`

	// Upstream selects where searches are answered
	Upstream struct {
		// Mode is either "gateway" or "local"
		Mode string `env:"UPSTREAM_MODE" env-default:"gateway" yaml:"mode"`
		// URL of the API Gateway search endpoint, required in gateway mode
		URL string `env:"API_GATEWAY_URL" yaml:"url"`
		// Timeout of a single upstream call
		Timeout time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"upstream"`

	// Gemini configures the generator of the local knowledge base
	Gemini struct {
		APIKey string `env:"GEMINI_API_KEY" yaml:"apiKey"`
		Model  string `env:"GEMINI_MODEL" env-default:"models/gemini-1.5-pro" yaml:"model"`
	} `yaml:"gemini"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"checkups" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// History configures search history recording
	History struct {
		// Enabled turns on recording; it requires the database
		Enabled bool `env:"HISTORY_ENABLED" env-default:"false" yaml:"enabled"`
		// Workers is the number of concurrent River workers persisting records
		Workers int `env:"HISTORY_WORKERS" env-default:"4" yaml:"workers"`
		// Retention is how long records are kept; zero keeps them forever
		Retention time.Duration `env:"HISTORY_RETENTION" env-default:"720h" yaml:"retention"`
	} `yaml:"history"`

	// JWT holds the RS256 key pair. Bearer auth is enforced when PublicKey is set
	JWT struct {
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// RateLimit limits requests per client IP; zero PerSecond disables it
	RateLimit struct {
		PerSecond float64 `env:"RATE_LIMIT_PER_SECOND" env-default:"3" yaml:"perSecond"`
		Burst     int     `env:"RATE_LIMIT_BURST" env-default:"10" yaml:"burst"`

		// TrustProxyHeaders keys clients by X-Forwarded-For; enable only behind a trusted proxy
		TrustProxyHeaders bool `env:"RATE_LIMIT_TRUST_PROXY_HEADERS" env-default:"false" yaml:"trustProxyHeaders"`
	} `yaml:"rateLimit"`

	// Client configures the search command
	Client struct {
		// ServerURL is the base URL of a running checkups server
		ServerURL string `env:"CHECKUPS_SERVER_URL" env-default:"http://localhost:8080" yaml:"serverURL"`
		Timeout   time.Duration `env:"CHECKUPS_CLIENT_TIMEOUT" env-default:"45s" yaml:"timeout"`
		Token     string        `env:"CHECKUPS_TOKEN" yaml:"token"`
	} `yaml:"client"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml file at configPath, or only the environment when
// configPath is empty, and validates the result.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints that tags cannot express.
func (c *Config) Validate() error {
	switch c.Upstream.Mode {
	case UpstreamGateway, UpstreamLocal:
	default:
		return fmt.Errorf("invalid upstream mode %q, expected %q or %q", c.Upstream.Mode, UpstreamGateway, UpstreamLocal)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive")
	}
	if c.History.Enabled && c.History.Workers <= 0 {
		return fmt.Errorf("history workers must be positive when history is enabled")
	}

	return nil
}
