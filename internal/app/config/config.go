package config

import (
	"log/slog"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/travel"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Mongo     Mongo      `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	JWT       JWT        `mapstructure:",squash"`
	Upload    Upload     `mapstructure:",squash"`
	AMQP      AMQP       `mapstructure:",squash"`
	NewRelic  NewRelic   `mapstructure:",squash"`
	RateLimit RateLimit  `mapstructure:",squash"`
	Travel    Travel     `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

type Mongo struct {
	URI      string        `mapstructure:"MONGODB_URI"`
	Database string        `mapstructure:"MONGODB_DATABASE"`
	Timeout  time.Duration `mapstructure:"MONGODB_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

type JWT struct {
	Secret     string        `mapstructure:"JWT_SECRET"`
	Expiration time.Duration `mapstructure:"JWT_EXPIRATION"`
	Issuer     string        `mapstructure:"JWT_ISSUER"`
}

// Upload holds where uploaded documents and profile photos are kept.
type Upload struct {
	Dir     string `mapstructure:"UPLOAD_DIR"`
	MaxSize int64  `mapstructure:"UPLOAD_MAX_SIZE"`
}

// AMQP holds the broker used to hand itinerary share jobs to the mailer.
type AMQP struct {
	URL           string `mapstructure:"AMQP_URL"`
	ShareExchange string `mapstructure:"AMQP_SHARE_EXCHANGE"`
}

// NewRelic is disabled when LicenseKey is empty.
type NewRelic struct {
	AppName    string `mapstructure:"NEW_RELIC_APP_NAME"`
	LicenseKey string `mapstructure:"NEW_RELIC_LICENSE_KEY"`
}

type RateLimit struct {
	PerMinute int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

// Travel holds extra places for the estimator, e.g.
// TRAVEL_PLACES=[{"name":"Port Blair","lat":11.6234,"lon":92.7265}]
type Travel struct {
	Places []travel.Place `mapstructure:"TRAVEL_PLACES"`
}
