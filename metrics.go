package rift

import "time"

// MetricsHook allows callers to observe the connection monitor's polling
// behavior. Implementers can log, aggregate metrics, or emit traces. All
// methods are optional in spirit; a no-op implementation is valid.
type MetricsHook interface {
	// Monitor lifecycle
	OnMonitorStart(pollInterval time.Duration)
	OnMonitorStop()

	// One poll cycle: duration of the IsConnected check and whether the
	// connection state flipped.
	OnPoll(duration time.Duration, connected, changed bool)

	// Connection transitions as seen by the monitor.
	OnConnectionChange(connected bool)
}
