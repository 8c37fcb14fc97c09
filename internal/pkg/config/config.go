package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Gateway GatewayConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Kolkata"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// GatewayConfig carries the Razorpay credentials. The key ID is public (it is
// handed to the browser checkout); the secret signs and verifies callbacks.
type GatewayConfig struct {
	BaseURL    string        `envconfig:"RAZORPAY_BASE_URL" default:"https://api.razorpay.com/v1"`
	KeyID      string        `envconfig:"RAZORPAY_KEY_ID" required:"true"`
	KeySecret  string        `envconfig:"RAZORPAY_KEY_SECRET" required:"true"`
	Timeout    time.Duration `envconfig:"RAZORPAY_TIMEOUT" default:"20s"`
	CallbackRL float64       `envconfig:"CALLBACK_RATE_LIMIT" default:"5"` // requests/sec on the payment callback
}

// RedisConfig enables the room-catalog cache; an empty address disables it.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	TTLSec   int    `envconfig:"REDIS_ROOM_TTL_SEC" default:"30"`
}

// AMQPConfig enables booking lifecycle events; an empty URL disables them.
type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"booking.events"`
}

// BookingConfig holds the policy switches for behaviors the original system
// left ambiguous. The defaults reproduce it exactly.
type BookingConfig struct {
	// single_night charges one night regardless of stay length; per_night
	// multiplies by the number of nights.
	PricingMode string `envconfig:"BOOKING_PRICING_MODE" default:"single_night"`
	// When true, check-out must be strictly after check-in.
	RequireDateOrder bool `envconfig:"BOOKING_REQUIRE_DATE_ORDER" default:"false"`
	// point_in_time excludes rooms with any confirmed booking ending today or
	// later; interval_overlap only excludes rooms whose confirmed stays overlap
	// the requested dates.
	AvailabilityMode string `envconfig:"BOOKING_AVAILABILITY_MODE" default:"point_in_time"`
	Currency         string `envconfig:"BOOKING_CURRENCY" default:"INR"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Kolkata",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Gateway: GatewayConfig{
			BaseURL:    "http://localhost:18089",
			KeyID:      "rzp_test_key",
			KeySecret:  "rzp_test_secret",
			Timeout:    5 * time.Second,
			CallbackRL: 100,
		},
		Booking: BookingConfig{
			PricingMode:      "single_night",
			RequireDateOrder: false,
			AvailabilityMode: "point_in_time",
			Currency:         "INR",
		},
	}
}
