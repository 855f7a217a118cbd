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
	Monitor MonitorConfig
	Sensor  SensorConfig
	Push    PushConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Prague"`
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
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Europe/Prague"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// MonitorConfig drives the water-temperature incident monitor. Thresholds are
// degrees Celsius; readings outside [MinTemp, MaxTemp] are incidents.
type MonitorConfig struct {
	MinTemp      float64 `envconfig:"MONITOR_MIN_TEMP" default:"30"`
	MaxTemp      float64 `envconfig:"MONITOR_MAX_TEMP" default:"70"`
	CheckSpec    string  `envconfig:"MONITOR_CHECK_SPEC" default:"*/30 * * * *"`
	SummarySpec  string  `envconfig:"MONITOR_SUMMARY_SPEC" default:"0 20 * * *"`
	JobsDisabled bool    `envconfig:"MONITOR_JOBS_DISABLED" default:"false"`
}

type SensorConfig struct {
	BaseURL  string        `envconfig:"SENSOR_BASE_URL" default:"https://energyface.eu"`
	SiteID   string        `envconfig:"SENSOR_SITE_ID" required:"true"`
	DeviceID int           `envconfig:"SENSOR_DEVICE_ID" default:"2"`
	Timeout  time.Duration `envconfig:"SENSOR_TIMEOUT" default:"10s"`
}

type PushConfig struct {
	VAPIDPublicKey  string        `envconfig:"VAPID_PUBLIC_KEY" required:"true"`
	VAPIDPrivateKey string        `envconfig:"VAPID_PRIVATE_KEY" required:"true"`
	Subscriber      string        `envconfig:"VAPID_SUBSCRIBER" default:"mailto:admin@localhost"`
	Timeout         time.Duration `envconfig:"PUSH_TIMEOUT" default:"15s"`
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
			TimeZone: "Europe/Prague",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Europe/Prague",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Monitor: MonitorConfig{
			MinTemp:     30,
			MaxTemp:     70,
			CheckSpec:   "*/30 * * * *",
			SummarySpec: "0 20 * * *",
		},
	}
}
