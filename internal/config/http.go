package config

import "time"

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

type HttpServerConfig struct {
	Host            string        `envconfig:"HOST" default:"127.0.0.1"`
	Port            int           `envconfig:"HTTP_SERVER_PORT" default:"8089" validate:"min=0,max=65535"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"90s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// RateLimitConfig keeps the suite endpoints cheap to hit: every request
// that runs checks touches the database and the backend.
type RateLimitConfig struct {
	GlobalRequests int           `envconfig:"GLOBAL_REQUESTS" default:"120"`
	GlobalWindow   time.Duration `envconfig:"GLOBAL_WINDOW" default:"1m"`
	RequestsPerIP  int           `envconfig:"REQUESTS_PER_IP" default:"30"`
	IPWindow       time.Duration `envconfig:"IP_WINDOW" default:"1m"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:""`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"300"`
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := process(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
