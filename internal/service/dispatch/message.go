package dispatch

import (
	"fmt"
	"strings"

	"live-orders-dispatch/internal/domain"
)

const messageTemplate = "New delivery:\nOrder #%d\nTotal: %s\nAddress: %s\nPostcode: %s\nNotes: %s\nPlease confirm."

// ComposeMessage renders the driver notification for an order.
func ComposeMessage(o domain.Order) string {
	notes := strings.TrimSpace(o.Notes)
	if notes == "" {
		notes = "-"
	}
	return fmt.Sprintf(messageTemplate,
		o.ID,
		domain.FormatMoney(o.TotalMinor),
		o.AddressLine1,
		o.Postcode,
		notes,
	)
}
