package rift

import "math"

// Every accessor funnels through guard first, so a disposed session fails
// with ErrDisposed before any native call is made.

// IsConnected reports whether the headset is physically attached and
// streaming sensor data.
func (h *HMD) IsConnected() (bool, error) {
	hd, err := h.guard()
	if err != nil {
		return false, err
	}
	return h.module.IsConnected(hd), nil
}

// DesktopPosition returns the panel's placement in the host's virtual
// desktop, in pixels.
func (h *HMD) DesktopPosition() (x, y int, err error) {
	hd, err := h.guard()
	if err != nil {
		return 0, 0, err
	}
	x, y = h.module.DesktopPosition(hd)
	return x, y, nil
}

// ScreenResolution returns the panel resolution in pixels.
func (h *HMD) ScreenResolution() (hres, vres int, err error) {
	hd, err := h.guard()
	if err != nil {
		return 0, 0, err
	}
	hres, vres = h.module.ScreenResolution(hd)
	return hres, vres, nil
}

// ScreenSize returns the physical panel dimensions in meters.
func (h *HMD) ScreenSize() (hsize, vsize float32, err error) {
	hd, err := h.guard()
	if err != nil {
		return 0, 0, err
	}
	hsize, vsize = h.module.ScreenSize(hd)
	return hsize, vsize, nil
}

// ScreenCenterOffset returns the vertical offset of the optical center
// from the panel center, in meters.
func (h *HMD) ScreenCenterOffset() (float32, error) {
	hd, err := h.guard()
	if err != nil {
		return 0, err
	}
	return h.module.ScreenCenterOffset(hd), nil
}

// LensSeparation returns the distance between the lens centers in meters.
func (h *HMD) LensSeparation() (float32, error) {
	hd, err := h.guard()
	if err != nil {
		return 0, err
	}
	return h.module.LensSeparation(hd), nil
}

// InterpupillaryDistance returns the configured user IPD in meters.
func (h *HMD) InterpupillaryDistance() (float32, error) {
	hd, err := h.guard()
	if err != nil {
		return 0, err
	}
	return h.module.InterpupillaryDistance(hd), nil
}

// EyeToScreenDistance returns the eye-to-panel distance in meters.
func (h *HMD) EyeToScreenDistance() (float32, error) {
	hd, err := h.guard()
	if err != nil {
		return 0, err
	}
	return h.module.EyeToScreenDistance(hd), nil
}

// DistortionCoefficients returns the radial distortion terms k0..k3.
func (h *HMD) DistortionCoefficients() (DistortionCoefficients, error) {
	hd, err := h.guard()
	if err != nil {
		return DistortionCoefficients{}, err
	}
	return DistortionCoefficients(h.module.DistortionK(hd)), nil
}

// ChromaAberration returns the chromatic aberration correction terms.
func (h *HMD) ChromaAberration() (ChromaCoefficients, error) {
	hd, err := h.guard()
	if err != nil {
		return ChromaCoefficients{}, err
	}
	return ChromaCoefficients(h.module.ChromaAbCorrection(hd)), nil
}

// Orientation returns the accumulated sensor-fusion orientation.
func (h *HMD) Orientation() (Quaternion, error) {
	hd, err := h.guard()
	if err != nil {
		return Quaternion{}, err
	}
	return quat(h.module.Orientation(hd)), nil
}

// PredictedOrientation returns the orientation extrapolated forward by the
// configured prediction delta.
func (h *HMD) PredictedOrientation() (Quaternion, error) {
	hd, err := h.guard()
	if err != nil {
		return Quaternion{}, err
	}
	return quat(h.module.PredictedOrientation(hd)), nil
}

// Acceleration returns the latest linear acceleration sample in m/s².
func (h *HMD) Acceleration() (Vector3, error) {
	hd, err := h.guard()
	if err != nil {
		return Vector3{}, err
	}
	return vec3(h.module.Acceleration(hd)), nil
}

// AngularVelocity returns the latest angular velocity sample in rad/s.
func (h *HMD) AngularVelocity() (Vector3, error) {
	hd, err := h.guard()
	if err != nil {
		return Vector3{}, err
	}
	return vec3(h.module.AngularVelocity(hd)), nil
}

// PredictionDelta returns the forward extrapolation interval in seconds.
func (h *HMD) PredictionDelta() (float32, error) {
	hd, err := h.guard()
	if err != nil {
		return 0, err
	}
	return h.module.PredictionDelta(hd), nil
}

// SetPredictionDelta configures the forward extrapolation interval. The
// value must be a positive number of seconds; anything else is rejected
// with a DomainError before the native module is touched, leaving the
// previous delta in effect.
func (h *HMD) SetPredictionDelta(seconds float32) error {
	hd, err := h.guard()
	if err != nil {
		return err
	}
	if seconds <= 0 || math.IsNaN(float64(seconds)) {
		return &DomainError{
			Param:  "prediction delta",
			Value:  seconds,
			Reason: "must be a positive number of seconds",
		}
	}
	h.module.SetPredictionDelta(hd, seconds)
	return nil
}

// PredictionEnabled reports whether orientation prediction is active.
func (h *HMD) PredictionEnabled() (bool, error) {
	hd, err := h.guard()
	if err != nil {
		return false, err
	}
	return h.module.PredictionEnabled(hd), nil
}

// SetPredictionEnabled switches orientation prediction on or off.
func (h *HMD) SetPredictionEnabled(enabled bool) error {
	hd, err := h.guard()
	if err != nil {
		return err
	}
	h.module.SetPredictionEnabled(hd, enabled)
	return nil
}

// Info gathers every calibration query into one snapshot.
func (h *HMD) Info() (HMDInfo, error) {
	hd, err := h.guard()
	if err != nil {
		return HMDInfo{}, err
	}

	var info HMDInfo
	info.DesktopX, info.DesktopY = h.module.DesktopPosition(hd)
	info.HResolution, info.VResolution = h.module.ScreenResolution(hd)
	info.HScreenSize, info.VScreenSize = h.module.ScreenSize(hd)
	info.ScreenCenterOffset = h.module.ScreenCenterOffset(hd)
	info.LensSeparation = h.module.LensSeparation(hd)
	info.InterpupillaryDistance = h.module.InterpupillaryDistance(hd)
	info.EyeToScreenDistance = h.module.EyeToScreenDistance(hd)
	info.DistortionK = DistortionCoefficients(h.module.DistortionK(hd))
	info.ChromaAbCorrection = ChromaCoefficients(h.module.ChromaAbCorrection(hd))
	return info, nil
}
