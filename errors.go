package rift

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrDeviceUnavailable is reported by Open when the native module cannot
// produce a device handle: no headset attached, driver missing, or the
// module out of resources. Steady-state disconnection after a successful
// Open is not an error; observe it through IsConnected.
var ErrDeviceUnavailable = errors.New("rift: device unavailable")

// ErrDisposed is reported by every operation invoked after Dispose. It
// indicates caller-side misuse, never device state, and is always safe to
// recover from.
var ErrDisposed = errors.New("rift: hmd disposed")

// DomainError reports a configuration value outside its valid domain. The
// call is rejected before the native module is touched, so the previous
// configuration stays in effect.
type DomainError struct {
	Param  string
	Value  float32
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("rift: %s = %v: %s", e.Param, e.Value, e.Reason)
}

// ErrorHandler receives diagnostics that have no call site to return to:
// leaked sessions detected by the finalizer and failures inside the
// connection monitor loop.
type ErrorHandler interface {
	HandleError(error)
}

// DefaultErrorHandler logs through slog at warn level.
type DefaultErrorHandler struct{}

func (h *DefaultErrorHandler) HandleError(err error) {
	slog.Warn("rift diagnostic", "error", err)
}

// LoggingErrorHandler wraps another handler and tees errors to a logger
// function first.
type LoggingErrorHandler struct {
	underlying ErrorHandler
	logger     func(error)
}

// NewLoggingErrorHandler creates a new logging error handler
func NewLoggingErrorHandler(underlying ErrorHandler, logger func(error)) *LoggingErrorHandler {
	return &LoggingErrorHandler{
		underlying: underlying,
		logger:     logger,
	}
}

func (h *LoggingErrorHandler) HandleError(err error) {
	if h.logger != nil {
		h.logger(err)
	}
	if h.underlying != nil {
		h.underlying.HandleError(err)
	}
}

// PanicErrorHandler panics on any error (useful for development)
type PanicErrorHandler struct{}

func (h *PanicErrorHandler) HandleError(err error) {
	panic(fmt.Sprintf("rift error: %v", err))
}
