// Package testutil provides a call-counting implementation of the native
// module boundary for lifecycle and accessor tests.
package testutil

import (
	"errors"
	"sync"

	"github.com/shaban/rift/native"
)

// Calibration holds the scripted calibration answers of a CountingModule.
// Defaults follow a 7-inch 1280x800 development-kit panel.
type Calibration struct {
	DesktopX, DesktopY     int
	HResolution            int
	VResolution            int
	HScreenSize            float32
	VScreenSize            float32
	ScreenCenterOffset     float32
	LensSeparation         float32
	InterpupillaryDistance float32
	EyeToScreenDistance    float32
	DistortionK            [4]float32
	ChromaAbCorrection     [4]float32
}

// Pose holds the scripted sensor answers of a CountingModule.
type Pose struct {
	Orientation          [4]float32
	PredictedOrientation [4]float32
	Acceleration         [3]float32
	AngularVelocity      [3]float32
}

// CountingModule implements native.Module entirely in memory, counting
// every entry-point call and journaling lifecycle events in order. Safe
// for concurrent use.
type CountingModule struct {
	mu         sync.Mutex
	events     []string
	nextHandle native.Handle
	liveHandle map[native.Handle]bool

	InitCalls     int
	ShutdownCalls int
	CreateCalls   int
	DestroyCalls  int
	QueryCalls    int

	// Destroy calls for handles that were never issued or already
	// destroyed. Should stay zero in every correct sequence.
	BadDestroys int

	// FailCreate makes Create report a null-handle failure.
	FailCreate bool

	Connected  bool
	Delta      float32
	Prediction bool

	Cal  Calibration
	Pose Pose
}

// NewModule returns a counting module with plausible development-kit
// calibration defaults, connected and with a 30ms prediction delta.
func NewModule() *CountingModule {
	return &CountingModule{
		liveHandle: make(map[native.Handle]bool),
		Connected:  true,
		Delta:      0.03,
		Cal: Calibration{
			DesktopX:               1920,
			DesktopY:               0,
			HResolution:            1280,
			VResolution:            800,
			HScreenSize:            0.14976,
			VScreenSize:            0.0936,
			ScreenCenterOffset:     0.0468,
			LensSeparation:         0.0635,
			InterpupillaryDistance: 0.064,
			EyeToScreenDistance:    0.041,
			DistortionK:            [4]float32{1.0, 0.22, 0.24, 0},
			ChromaAbCorrection:     [4]float32{0.996, -0.004, 1.014, 0},
		},
		Pose: Pose{
			Orientation:          [4]float32{0, 0, 0, 1},
			PredictedOrientation: [4]float32{0, 0.0087, 0, 0.9999},
			Acceleration:         [3]float32{0, 9.81, 0},
			AngularVelocity:      [3]float32{0, 0.01, 0},
		},
	}
}

func (m *CountingModule) record(ev string) {
	m.events = append(m.events, ev)
}

func (m *CountingModule) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InitCalls++
	m.record("init")
}

func (m *CountingModule) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ShutdownCalls++
	m.record("shutdown")
}

func (m *CountingModule) Create() (native.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.FailCreate {
		m.record("create-failed")
		return 0, errors.New("no device attached")
	}
	m.nextHandle++
	h := m.nextHandle
	m.liveHandle[h] = true
	m.record("create")
	return h, nil
}

func (m *CountingModule) Destroy(h native.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DestroyCalls++
	if !m.liveHandle[h] {
		m.BadDestroys++
		m.record("destroy-bad")
		return
	}
	delete(m.liveHandle, h)
	m.record("destroy")
}

// Events returns a copy of the lifecycle journal in call order.
func (m *CountingModule) Events() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.events))
	copy(out, m.events)
	return out
}

// LiveHandles returns the number of handles created but not yet destroyed.
func (m *CountingModule) LiveHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.liveHandle)
}

// TotalCalls returns the total number of entry-point invocations,
// including queries.
func (m *CountingModule) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.InitCalls + m.ShutdownCalls + m.CreateCalls + m.DestroyCalls + m.QueryCalls
}

func (m *CountingModule) query() {
	m.mu.Lock()
	m.QueryCalls++
	m.mu.Unlock()
}

func (m *CountingModule) IsConnected(native.Handle) bool {
	m.query()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Connected
}

// SetConnected flips the scripted connection state.
func (m *CountingModule) SetConnected(connected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Connected = connected
}

func (m *CountingModule) DesktopPosition(native.Handle) (int, int) {
	m.query()
	return m.Cal.DesktopX, m.Cal.DesktopY
}

func (m *CountingModule) ScreenResolution(native.Handle) (int, int) {
	m.query()
	return m.Cal.HResolution, m.Cal.VResolution
}

func (m *CountingModule) ScreenSize(native.Handle) (float32, float32) {
	m.query()
	return m.Cal.HScreenSize, m.Cal.VScreenSize
}

func (m *CountingModule) ScreenCenterOffset(native.Handle) float32 {
	m.query()
	return m.Cal.ScreenCenterOffset
}

func (m *CountingModule) LensSeparation(native.Handle) float32 {
	m.query()
	return m.Cal.LensSeparation
}

func (m *CountingModule) InterpupillaryDistance(native.Handle) float32 {
	m.query()
	return m.Cal.InterpupillaryDistance
}

func (m *CountingModule) EyeToScreenDistance(native.Handle) float32 {
	m.query()
	return m.Cal.EyeToScreenDistance
}

func (m *CountingModule) DistortionK(native.Handle) [4]float32 {
	m.query()
	return m.Cal.DistortionK
}

func (m *CountingModule) ChromaAbCorrection(native.Handle) [4]float32 {
	m.query()
	return m.Cal.ChromaAbCorrection
}

func (m *CountingModule) Orientation(native.Handle) [4]float32 {
	m.query()
	return m.Pose.Orientation
}

func (m *CountingModule) PredictedOrientation(native.Handle) [4]float32 {
	m.query()
	return m.Pose.PredictedOrientation
}

func (m *CountingModule) Acceleration(native.Handle) [3]float32 {
	m.query()
	return m.Pose.Acceleration
}

func (m *CountingModule) AngularVelocity(native.Handle) [3]float32 {
	m.query()
	return m.Pose.AngularVelocity
}

func (m *CountingModule) PredictionDelta(native.Handle) float32 {
	m.query()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Delta
}

func (m *CountingModule) SetPredictionDelta(_ native.Handle, seconds float32) {
	m.query()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Delta = seconds
}

func (m *CountingModule) PredictionEnabled(native.Handle) bool {
	m.query()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Prediction
}

func (m *CountingModule) SetPredictionEnabled(_ native.Handle, enabled bool) {
	m.query()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prediction = enabled
}
