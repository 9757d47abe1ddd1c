package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Messaging channels supported by the notification gateway.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelSMS      = "sms"
)

// Config stores service settings.
type Config struct {
	Port      int
	HTTP      HTTP
	DB        DB
	Migrate   bool
	Notify    Notify
	Auth      Auth
	RateLimit RateLimit
	Kafka     Kafka
	PprofAddr string
	LogLevel  string
}

// HTTP stores HTTP server settings.
type HTTP struct {
	RequestTimeout time.Duration
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns a libpq-style connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Notify stores messaging provider settings.
type Notify struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
	Channel    string
	Timeout    time.Duration
}

// Enabled reports whether the provider credentials are complete.
func (n Notify) Enabled() bool {
	return n.AccountSID != "" && n.AuthToken != "" && n.From != ""
}

// Auth stores staff credentials checked by the API middleware.
type Auth struct {
	User string
	Pass string
}

// RateLimit stores dispatch endpoint rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Kafka stores dispatch event publishing settings. No brokers disables publishing.
type Kafka struct {
	Brokers []string
	Topic   string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		HTTP:      defaultHTTP,
		DB:        defaultDB,
		Notify:    defaultNotify,
		RateLimit: defaultRateLimit,
		Kafka:     Kafka{Topic: defaultKafkaTopic},
		LogLevel:  defaultLogLevel,
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.HTTP.RequestTimeout, err = envDuration("HTTP_REQUEST_TIMEOUT", cfg.HTTP.RequestTimeout); err != nil {
		return nil, err
	}

	cfg.DB.Host = envString("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envString("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envString("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envString("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envString("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}
	if cfg.Migrate, err = envBool("DB_MIGRATE", false); err != nil {
		return nil, err
	}

	cfg.Notify.BaseURL = strings.TrimRight(envString("NOTIFY_BASE_URL", cfg.Notify.BaseURL), "/")
	cfg.Notify.AccountSID = envString("TWILIO_SID", "")
	cfg.Notify.AuthToken = envString("TWILIO_TOKEN", "")
	cfg.Notify.From = envString("TWILIO_FROM", "")
	cfg.Notify.Channel = strings.ToLower(envString("NOTIFY_CHANNEL", cfg.Notify.Channel))
	if cfg.Notify.Timeout, err = envDuration("NOTIFY_TIMEOUT", cfg.Notify.Timeout); err != nil {
		return nil, err
	}

	cfg.Auth.User = envString("ADMIN_USER", "")
	cfg.Auth.Pass = envString("ADMIN_PASSWORD", "")

	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RATE", cfg.RateLimit.Rate); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return nil, err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL); err != nil {
		return nil, err
	}
	if cfg.RateLimit.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets); err != nil {
		return nil, err
	}

	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = envString("KAFKA_DISPATCH_TOPIC", cfg.Kafka.Topic)

	cfg.PprofAddr = envString("PPROF_ADDR", "")
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)

	fs := pflag.CommandLine
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.BoolVar(&cfg.Migrate, "migrate", cfg.Migrate, "apply schema migrations on start")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("invalid HTTP_REQUEST_TIMEOUT: %s", c.HTTP.RequestTimeout)
	}
	if c.Notify.Timeout <= 0 {
		return fmt.Errorf("invalid NOTIFY_TIMEOUT: %s", c.Notify.Timeout)
	}
	switch c.Notify.Channel {
	case ChannelWhatsApp, ChannelSMS:
	default:
		return fmt.Errorf("invalid NOTIFY_CHANNEL: %q", c.Notify.Channel)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
