package app

import (
	"os"

	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/logx"
)

// NewLogger returns the JSON stdout logger at cfg.LogLevel.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, logx.ParseLevel(cfg.LogLevel)).
		With(logx.String("service", "live-orders-dispatch"))
}
