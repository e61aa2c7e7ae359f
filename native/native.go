// Package native defines the boundary to the device module that performs
// the actual HMD communication and sensor fusion. Everything behind this
// interface is opaque: the wrapper never inspects a handle, it only passes
// one back to the module that issued it.
//
// The call surface mirrors the module's C ABI one-to-one:
//   - Init/Shutdown bracket the whole module, process-wide
//   - Create/Destroy bracket one device session
//   - everything else is a pure query or configure call taking a handle
//
// Real drivers register themselves via Register (the cgo driver does this
// from an init function when built with the rifthw tag). Tests substitute
// a counting stub through the same interface.
package native

// Handle identifies one native device session. It is issued by Create,
// consumed by Destroy, and meaningless outside the module that issued it.
type Handle uintptr

// Module is the fixed entry-point surface of the native device module.
//
// Init and Shutdown are process-wide and must bracket all handle activity:
// Init strictly before the first Create, Shutdown strictly after the last
// Destroy. The rift package enforces that ordering; implementations may
// assume it.
//
// Query and configure calls are synchronous and never fail at the ABI
// level; a disconnected device keeps answering with its last state and is
// observable via IsConnected.
type Module interface {
	// Init prepares the module for handle creation.
	Init()
	// Shutdown releases module-wide resources. No handle may be live.
	Shutdown()

	// Create opens a new device session. A nil-handle failure at the ABI
	// level surfaces as a non-nil error here.
	Create() (Handle, error)
	// Destroy closes a session. The handle must not be used afterwards.
	Destroy(h Handle)

	// IsConnected reports whether the physical device behind h is
	// currently attached and streaming.
	IsConnected(h Handle) bool

	// Calibration queries. Distances are meters, resolutions pixels.
	DesktopPosition(h Handle) (x, y int)
	ScreenResolution(h Handle) (hres, vres int)
	ScreenSize(h Handle) (hsize, vsize float32)
	ScreenCenterOffset(h Handle) float32
	LensSeparation(h Handle) float32
	InterpupillaryDistance(h Handle) float32
	EyeToScreenDistance(h Handle) float32
	DistortionK(h Handle) [4]float32
	ChromaAbCorrection(h Handle) [4]float32

	// Pose queries. Orientation is the accumulated sensor-fusion output,
	// PredictedOrientation the same pose extrapolated by the prediction
	// delta. Acceleration is m/s², AngularVelocity rad/s.
	Orientation(h Handle) [4]float32
	PredictedOrientation(h Handle) [4]float32
	Acceleration(h Handle) [3]float32
	AngularVelocity(h Handle) [3]float32

	// Prediction configuration. The delta is seconds of forward
	// extrapolation; callers validate positivity before reaching this
	// surface.
	PredictionDelta(h Handle) float32
	SetPredictionDelta(h Handle, seconds float32)
	PredictionEnabled(h Handle) bool
	SetPredictionEnabled(h Handle, enabled bool)
}
