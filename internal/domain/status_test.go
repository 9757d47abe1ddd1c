package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeliveryStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []DeliveryStatus{DeliveryNew, DeliveryAssigned, DeliveryEnroute, DeliveryDelivered, DeliveryFailed} {
		require.True(t, s.Valid(), s)
	}
	require.False(t, DeliveryStatus("lost").Valid())
	require.False(t, DeliveryStatus("").Valid())
}

func TestDeliveryStatus_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to DeliveryStatus
		want     bool
	}{
		{DeliveryNew, DeliveryAssigned, true},
		{DeliveryNew, DeliveryFailed, true},
		{DeliveryNew, DeliveryDelivered, false},
		{DeliveryAssigned, DeliveryAssigned, true},
		{DeliveryAssigned, DeliveryEnroute, true},
		{DeliveryEnroute, DeliveryDelivered, true},
		{DeliveryEnroute, DeliveryAssigned, false},
		{DeliveryEnroute, DeliveryFailed, true},
		{DeliveryDelivered, DeliveryFailed, false},
		{DeliveryFailed, DeliveryAssigned, false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestDeliveryStatus_TerminalAndLive(t *testing.T) {
	t.Parallel()

	require.True(t, DeliveryDelivered.Terminal())
	require.True(t, DeliveryFailed.Terminal())
	require.False(t, DeliveryAssigned.Terminal())

	require.True(t, DeliveryNew.Live())
	require.True(t, DeliveryAssigned.Live())
	require.False(t, DeliveryEnroute.Live())
	require.Equal(t, []DeliveryStatus{DeliveryNew, DeliveryAssigned}, LiveStatuses())
}

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	require.Equal(t, "£12.50", FormatMoney(1250))
	require.Equal(t, "£0.05", FormatMoney(5))
	require.Equal(t, "£0.00", FormatMoney(0))
	require.Equal(t, "-£3.10", FormatMoney(-310))
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	require.True(t, Applied().IsApplied())

	o := Skipped(ReasonOrderNotFound)
	require.False(t, o.IsApplied())
	require.Equal(t, OutcomeSkipped, o.Status)
	require.True(t, o.Reason.NotFound())
	require.False(t, o.Reason.Invalid())
	require.True(t, ReasonEmptyName.Invalid())
	require.False(t, ReasonNotificationFailed.Invalid())
}
