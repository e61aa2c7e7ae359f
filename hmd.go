package rift

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/shaban/rift/native"
)

// HMD is one live session against the native device module. It exclusively
// owns one native handle from Open until Dispose; the handle is never
// shared between sessions and never touched after disposal.
//
// An HMD is not meant to be shared across goroutines without external
// synchronization. Dispose is the exception: it is safe to call from any
// goroutine, any number of times.
type HMD struct {
	id     uuid.UUID
	module native.Module

	mu       sync.Mutex
	handle   native.Handle
	disposed bool

	errorHandler ErrorHandler
}

// Open creates a session on the registered native driver with default
// options.
func Open() (*HMD, error) {
	return OpenWithOptions(DefaultOptions())
}

// OpenWithOptions creates a session configured by opts.
//
// The first live session initializes the native module before its handle
// is created; later sessions reuse the initialized module. When handle
// creation fails the module claim is rolled back and the error wraps
// ErrDeviceUnavailable, so a failed Open never leaves the module
// initialized without a live session.
func OpenWithOptions(opts Options) (*HMD, error) {
	m := opts.Module
	if m == nil {
		m = native.Default()
	}
	if m == nil {
		return nil, fmt.Errorf("%w: no native driver registered", ErrDeviceUnavailable)
	}

	errorHandler := opts.ErrorHandler
	if errorHandler == nil {
		errorHandler = &DefaultErrorHandler{}
	}

	bracket.acquire(m)
	handle, err := m.Create()
	if err != nil {
		bracket.release(m)
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	h := &HMD{
		id:           uuid.New(),
		module:       m,
		handle:       handle,
		errorHandler: errorHandler,
	}

	// Initial prediction config goes through the public setters so it is
	// subject to the same domain validation as any later call.
	if opts.PredictionDelta != 0 {
		if err := h.SetPredictionDelta(opts.PredictionDelta); err != nil {
			h.Dispose()
			return nil, err
		}
	}
	if opts.EnablePrediction {
		if err := h.SetPredictionEnabled(true); err != nil {
			h.Dispose()
			return nil, err
		}
	}

	if opts.LeakCheck {
		runtime.SetFinalizer(h, (*HMD).finalize)
	}

	return h, nil
}

// ID returns the session's identity used in diagnostics.
func (h *HMD) ID() uuid.UUID {
	return h.id
}

// Dispose destroys the session's native handle and drops its claim on the
// module; the last session to go also shuts the module down. Disposing an
// already-disposed session is a no-op: the handle is destroyed exactly
// once no matter how often Dispose runs. Dispose never fails, so it is
// safe in deferred cleanup.
func (h *HMD) Dispose() {
	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		return
	}
	h.disposed = true
	handle := h.handle
	h.handle = 0
	h.mu.Unlock()

	runtime.SetFinalizer(h, nil)

	// Destroy strictly before release: a count reaching zero must find
	// its handle already gone before Shutdown runs.
	h.module.Destroy(handle)
	bracket.release(h.module)
}

// Disposed reports whether the session has been disposed.
func (h *HMD) Disposed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disposed
}

// guard is the single gate in front of every native call. It returns the
// session's handle, or ErrDisposed without touching the module.
func (h *HMD) guard() (native.Handle, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return 0, ErrDisposed
	}
	return h.handle, nil
}

// finalize is the leak diagnostic. Reclaiming a live session without an
// explicit Dispose is a programming error; warn with the session identity,
// then release the handle anyway so the module bracket still balances.
func (h *HMD) finalize() {
	if h.Disposed() {
		return
	}
	h.errorHandler.HandleError(
		fmt.Errorf("hmd session %s was garbage collected while still live; call Dispose explicitly", h.id))
	h.Dispose()
}
