package config

import "time"

const defaultPort = 8080

var defaultHTTP = HTTP{
	RequestTimeout: 20 * time.Second,
}

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "live_orders",
}

var defaultNotify = Notify{
	BaseURL: "https://api.twilio.com",
	Channel: ChannelWhatsApp,
	Timeout: 15 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       2,
	Burst:      5,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

const defaultKafkaTopic = "dispatch-events"

const defaultLogLevel = "info"

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultNotify returns the default messaging provider settings.
func DefaultNotify() Notify {
	return defaultNotify
}

// DefaultRateLimit returns the default dispatch rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
