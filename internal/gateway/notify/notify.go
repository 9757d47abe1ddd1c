// Package notify delivers dispatch messages to drivers through an external messaging provider.
package notify

import (
	"live-orders-dispatch/internal/config"
	"live-orders-dispatch/internal/logx"
)

// New returns the Twilio gateway when credentials are configured, the Disabled one otherwise.
func New(cfg config.Notify, logger logx.Logger) Sender {
	if !cfg.Enabled() {
		logx.OrNop(logger).Warn("messaging provider credentials missing, notifications disabled")
		return NewDisabled(logger)
	}
	return NewTwilio(cfg, logger)
}
