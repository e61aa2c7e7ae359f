package rift

import (
	"errors"
	"math"
	"testing"

	"github.com/shaban/rift/internal/testutil"
)

func TestAccessorsPassThrough(t *testing.T) {
	mod := testutil.NewModule()

	h, err := OpenWithOptions(Options{Module: mod})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer h.Dispose()

	connected, err := h.IsConnected()
	if err != nil {
		t.Fatalf("IsConnected failed: %v", err)
	}
	if !connected {
		t.Error("expected connected device")
	}

	hres, vres, err := h.ScreenResolution()
	if err != nil {
		t.Fatalf("ScreenResolution failed: %v", err)
	}
	if hres != 1280 || vres != 800 {
		t.Errorf("expected 1280x800, got %dx%d", hres, vres)
	}

	ipd, err := h.InterpupillaryDistance()
	if err != nil {
		t.Fatalf("InterpupillaryDistance failed: %v", err)
	}
	if ipd != 0.064 {
		t.Errorf("expected IPD 0.064, got %f", ipd)
	}

	k, err := h.DistortionCoefficients()
	if err != nil {
		t.Fatalf("DistortionCoefficients failed: %v", err)
	}
	if k[0] != 1.0 || k[1] != 0.22 {
		t.Errorf("unexpected distortion coefficients %v", k)
	}

	q, err := h.Orientation()
	if err != nil {
		t.Fatalf("Orientation failed: %v", err)
	}
	if q.W != 1 {
		t.Errorf("expected identity orientation, got %+v", q)
	}

	accel, err := h.Acceleration()
	if err != nil {
		t.Fatalf("Acceleration failed: %v", err)
	}
	if accel.Y != 9.81 {
		t.Errorf("expected gravity on Y, got %+v", accel)
	}
}

func TestInfoAggregatesCalibration(t *testing.T) {
	mod := testutil.NewModule()

	h, err := OpenWithOptions(Options{Module: mod})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer h.Dispose()

	info, err := h.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.DesktopX != 1920 || info.DesktopY != 0 {
		t.Errorf("unexpected desktop position %d,%d", info.DesktopX, info.DesktopY)
	}
	if info.HScreenSize != 0.14976 || info.VScreenSize != 0.0936 {
		t.Errorf("unexpected screen size %fx%f", info.HScreenSize, info.VScreenSize)
	}
	if info.EyeToScreenDistance != 0.041 {
		t.Errorf("unexpected eye-to-screen distance %f", info.EyeToScreenDistance)
	}
	if ar := info.AspectRatio(); ar != 0.8 {
		t.Errorf("expected per-eye aspect ratio 0.8, got %f", ar)
	}
}

func TestDisposedAccessorsFailWithoutNativeCalls(t *testing.T) {
	mod := testutil.NewModule()

	h, err := OpenWithOptions(Options{Module: mod})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	h.Dispose()

	baseline := mod.TotalCalls()

	if _, err := h.IsConnected(); !errors.Is(err, ErrDisposed) {
		t.Errorf("IsConnected on disposed session: expected ErrDisposed, got %v", err)
	}
	if _, _, err := h.DesktopPosition(); !errors.Is(err, ErrDisposed) {
		t.Errorf("DesktopPosition on disposed session: expected ErrDisposed, got %v", err)
	}
	if _, err := h.Orientation(); !errors.Is(err, ErrDisposed) {
		t.Errorf("Orientation on disposed session: expected ErrDisposed, got %v", err)
	}
	if _, err := h.Info(); !errors.Is(err, ErrDisposed) {
		t.Errorf("Info on disposed session: expected ErrDisposed, got %v", err)
	}
	if err := h.SetPredictionDelta(0.05); !errors.Is(err, ErrDisposed) {
		t.Errorf("SetPredictionDelta on disposed session: expected ErrDisposed, got %v", err)
	}
	if err := h.SetPredictionEnabled(true); !errors.Is(err, ErrDisposed) {
		t.Errorf("SetPredictionEnabled on disposed session: expected ErrDisposed, got %v", err)
	}

	if got := mod.TotalCalls(); got != baseline {
		t.Errorf("disposed accessors reached the native module: %d calls, baseline %d",
			got, baseline)
	}
}

func TestSetPredictionDeltaDomain(t *testing.T) {
	mod := testutil.NewModule()

	h, err := OpenWithOptions(Options{Module: mod})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer h.Dispose()

	if err := h.SetPredictionDelta(0.05); err != nil {
		t.Fatalf("valid delta rejected: %v", err)
	}

	for _, bad := range []float32{0, -0.03, float32(math.NaN())} {
		err := h.SetPredictionDelta(bad)
		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Errorf("delta %v: expected DomainError, got %v", bad, err)
			continue
		}
		if domainErr.Param != "prediction delta" {
			t.Errorf("delta %v: unexpected param %q", bad, domainErr.Param)
		}
	}

	// Prior configuration untouched by the rejected calls
	delta, err := h.PredictionDelta()
	if err != nil {
		t.Fatalf("PredictionDelta failed: %v", err)
	}
	if delta != 0.05 {
		t.Errorf("rejected setter changed the delta: expected 0.05, got %f", delta)
	}
}

func TestOpenAppliesPredictionOptions(t *testing.T) {
	mod := testutil.NewModule()

	h, err := OpenWithOptions(Options{
		Module:           mod,
		PredictionDelta:  0.05,
		EnablePrediction: true,
	})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer h.Dispose()

	delta, err := h.PredictionDelta()
	if err != nil {
		t.Fatalf("PredictionDelta failed: %v", err)
	}
	if delta != 0.05 {
		t.Errorf("expected configured delta 0.05, got %f", delta)
	}

	enabled, err := h.PredictionEnabled()
	if err != nil {
		t.Fatalf("PredictionEnabled failed: %v", err)
	}
	if !enabled {
		t.Error("expected prediction enabled")
	}
}

func TestOpenRejectsInvalidPredictionDelta(t *testing.T) {
	mod := testutil.NewModule()

	h, err := OpenWithOptions(Options{Module: mod, PredictionDelta: -1})
	if err == nil {
		h.Dispose()
		t.Fatal("expected open to reject a negative prediction delta")
	}
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Errorf("expected DomainError, got %v", err)
	}
	// The half-built session must have been torn down
	if got := LiveSessions(mod); got != 0 {
		t.Errorf("expected 0 live sessions after rejected open, got %d", got)
	}
	if mod.LiveHandles() != 0 {
		t.Errorf("rejected open leaked %d handles", mod.LiveHandles())
	}
}

func TestOpenWithoutDriver(t *testing.T) {
	h, err := OpenWithOptions(Options{})
	if err == nil {
		h.Dispose()
		t.Fatal("expected open to fail with no registered driver")
	}
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("expected ErrDeviceUnavailable, got %v", err)
	}
}

func TestFinalizerWarnsAndReleases(t *testing.T) {
	mod := testutil.NewModule()

	var warnings []error
	handler := NewLoggingErrorHandler(nil, func(err error) {
		warnings = append(warnings, err)
	})

	h, err := OpenWithOptions(Options{Module: mod, ErrorHandler: handler})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	// Drive the finalizer path directly; relying on the collector here
	// would make the test timing-dependent.
	h.finalize()

	if len(warnings) != 1 {
		t.Fatalf("expected exactly 1 leak warning, got %d", len(warnings))
	}
	if !h.Disposed() {
		t.Error("finalizer should have disposed the session")
	}
	if mod.DestroyCalls != 1 || mod.ShutdownCalls != 1 {
		t.Errorf("finalizer should release handle and bracket, got destroy=%d shutdown=%d",
			mod.DestroyCalls, mod.ShutdownCalls)
	}

	// A second finalizer run (or explicit dispose) stays silent
	h.finalize()
	h.Dispose()
	if len(warnings) != 1 {
		t.Errorf("disposed session warned again: %d warnings", len(warnings))
	}
	if mod.DestroyCalls != 1 {
		t.Errorf("expected single destroy, got %d", mod.DestroyCalls)
	}
}

func TestSessionIdentity(t *testing.T) {
	mod := testutil.NewModule()

	a, err := OpenWithOptions(Options{Module: mod})
	if err != nil {
		t.Fatalf("open A failed: %v", err)
	}
	defer a.Dispose()

	b, err := OpenWithOptions(Options{Module: mod})
	if err != nil {
		t.Fatalf("open B failed: %v", err)
	}
	defer b.Dispose()

	if a.ID() == b.ID() {
		t.Error("sessions must have distinct identities")
	}
}
