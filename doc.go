// Package rift wraps a head-mounted display behind a managed session
// object:
//   - One HMD session per native device handle, with strict exclusive
//     ownership from Open to Dispose
//   - A process-wide init/shutdown bracket reference-counted across all
//     live sessions, safe under concurrent construction and disposal
//   - Guarded pass-through accessors for calibration, pose, and
//     prediction configuration
//   - Optional connection monitoring with adaptive polling
//
// It is intentionally strict about lifecycle:
//   - The first session to open initializes the native module before any
//     handle exists; the last one to dispose shuts it down afterwards
//   - Dispose is idempotent and never fails, so it belongs in defer
//   - Any call on a disposed session fails with ErrDisposed and performs
//     no native call
//   - A session reclaimed by the garbage collector while still live is a
//     programming error and is reported before being released
//
// Consumers can attach a MetricsHook to observe connection polling.
package rift
