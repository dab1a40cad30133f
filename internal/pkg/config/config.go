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
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Booking    BookingConfig
	Settlement SettlementConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Jakarta"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Jakarta"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// Tokens are issued by the external auth service; only the shared secret is needed here.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type BookingConfig struct {
	SettlementTimeout time.Duration `envconfig:"BOOKING_SETTLEMENT_TIMEOUT" default:"30s"`
	FlowIdleTTL       time.Duration `envconfig:"BOOKING_FLOW_IDLE_TTL" default:"30m"`
	SweepInterval     time.Duration `envconfig:"BOOKING_FLOW_SWEEP_INTERVAL" default:"1m"`
	TimeZone          string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Jakarta"`
	// empty means every method of the default catalog
	PaymentMethods []string `envconfig:"BOOKING_PAYMENT_METHODS" default:""`
}

type SettlementConfig struct {
	SimulatedDelay  time.Duration `envconfig:"SETTLEMENT_SIMULATED_DELAY" default:"3s"`
	DeclinedMethods []string      `envconfig:"SETTLEMENT_DECLINED_METHODS" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the zone database does not know TimeZone.
func (c *BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings envconfig accepts but the booking flow cannot run with.
func (c Config) Validate() error {
	if c.Booking.SettlementTimeout <= 0 {
		return fmt.Errorf("BOOKING_SETTLEMENT_TIMEOUT must be positive, got %s", c.Booking.SettlementTimeout)
	}
	if c.Booking.FlowIdleTTL <= 0 {
		return fmt.Errorf("BOOKING_FLOW_IDLE_TTL must be positive, got %s", c.Booking.FlowIdleTTL)
	}
	if c.Booking.SweepInterval <= 0 {
		return fmt.Errorf("BOOKING_FLOW_SWEEP_INTERVAL must be positive, got %s", c.Booking.SweepInterval)
	}
	if _, err := time.LoadLocation(c.Booking.TimeZone); err != nil {
		return fmt.Errorf("BOOKING_TIMEZONE %q: %w", c.Booking.TimeZone, err)
	}
	if c.Settlement.SimulatedDelay < 0 {
		return fmt.Errorf("SETTLEMENT_SIMULATED_DELAY must not be negative, got %s", c.Settlement.SimulatedDelay)
	}
	return nil
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
			TimeZone: "Asia/Jakarta",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Jakarta",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Booking: BookingConfig{
			SettlementTimeout: 2 * time.Second,
			FlowIdleTTL:       time.Minute,
			SweepInterval:     time.Second,
			TimeZone:          "Asia/Jakarta",
		},
		Settlement: SettlementConfig{
			SimulatedDelay: 10 * time.Millisecond,
		},
	}
}
