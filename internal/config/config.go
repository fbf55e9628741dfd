package config

import (
	"fmt"
	"net/url"
	"purger/pkg/serrors"
	"purger/pkg/varnish/httpban"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// DispatchInline delivers ban requests from an in-process goroutine.
	DispatchInline = "inline"
	// DispatchQueue delivers ban requests through River workers.
	DispatchQueue = "queue"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the caching proxy and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowOrigin is the CORS origin allowed to call the event API
		AllowOrigin string `env:"HTTP_ALLOW_ORIGIN" env-default:"*" yaml:"allowOrigin"`
	} `yaml:"http"`

	// JWT holds the key material for event API authentication.
	JWT struct {
		// PublicKey is the PEM encoded RSA key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA key used by the jwt command to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

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
		DatabaseName string `env:"DATABASE_NAME" env-default:"purger" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Varnish configures how ban requests reach the caching proxy.
	Varnish struct {
		// HomeURL is the site's base URL; ban requests are posted to it
		HomeURL string `env:"VARNISH_HOME_URL" env-required:"true" yaml:"homeURL"`
		// Secret is the shared secret the proxy expects with every ban
		Secret string `env:"VARNISH_SECRET" yaml:"secret"`
		// Timeout bounds a single ban request
		Timeout time.Duration `env:"VARNISH_TIMEOUT" env-default:"300ms" yaml:"timeout"`
		// Dispatch selects how bans are delivered: inline or queue
		Dispatch string `env:"VARNISH_DISPATCH" env-default:"inline" yaml:"dispatch"`
	} `yaml:"varnish"`

	// Site describes the tenant whose hostnames are purged.
	Site struct {
		// BlogID identifies the blog in a multi-site installation
		BlogID int64 `env:"SITE_BLOG_ID" env-default:"1" yaml:"blogID"`
		// DomainMapping adds the blog's mapped domains to every ban
		DomainMapping bool `env:"SITE_DOMAIN_MAPPING" env-default:"false" yaml:"domainMapping"`
		// HostsCacheTTL is how long the resolved host set is reused
		HostsCacheTTL time.Duration `env:"SITE_HOSTS_CACHE_TTL" env-default:"1h" yaml:"hostsCacheTTL"`
	} `yaml:"site"`

	// Queue configures the River workers used by the queue dispatch mode.
	Queue struct {
		// MaxWorkers is the number of concurrent ban workers
		MaxWorkers int `env:"QUEUE_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"queue"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled and
// validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Varnish.HomeURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return serrors.Wrap(serrors.ErrInvalidConfig, err, "varnish home URL %q must be an absolute http(s) URL",
			c.Varnish.HomeURL)
	}
	if err := httpban.ValidateSecret(c.Varnish.Secret); err != nil {
		return err
	}
	if c.Varnish.Timeout <= 0 {
		return serrors.With(serrors.ErrInvalidConfig, "varnish timeout must be positive")
	}
	switch c.Varnish.Dispatch {
	case DispatchInline, DispatchQueue:
	default:
		return serrors.With(serrors.ErrInvalidConfig, "unknown dispatch mode %q", c.Varnish.Dispatch)
	}
	if c.Queue.MaxWorkers <= 0 {
		return serrors.With(serrors.ErrInvalidConfig, "queue max workers must be positive")
	}

	return nil
}
