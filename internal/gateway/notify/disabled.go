package notify

import (
	"context"

	"live-orders-dispatch/internal/logx"
)

// Disabled is used when no provider credentials are configured. Every send fails.
type Disabled struct {
	logger logx.Logger
}

// NewDisabled creates a Disabled gateway.
func NewDisabled(logger logx.Logger) *Disabled {
	return &Disabled{logger: logx.OrNop(logger)}
}

// SendMessage always reports failure.
func (d *Disabled) SendMessage(_ context.Context, toPhone, _ string) bool {
	d.logger.Warn("notification not sent: messaging provider not configured",
		logx.String("to", toPhone),
	)
	return false
}
