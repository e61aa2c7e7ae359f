package rift

// Vector3 is a three-component vector. Units depend on the query that
// produced it: m/s² for acceleration, rad/s for angular velocity.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Quaternion is a rotation in x, y, z, w component order, matching the
// native module's wire layout.
type Quaternion struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// DistortionCoefficients are the four radial distortion terms k0..k3 used
// by the lens correction shader.
type DistortionCoefficients [4]float32

// ChromaCoefficients are the four chromatic aberration correction terms.
type ChromaCoefficients [4]float32

// HMDInfo bundles every calibration query into one snapshot. Screen
// dimensions and optical distances are meters, resolutions pixels, desktop
// position the panel's placement in the host's virtual desktop.
type HMDInfo struct {
	DesktopX               int                    `json:"desktopX"`
	DesktopY               int                    `json:"desktopY"`
	HResolution            int                    `json:"hResolution"`
	VResolution            int                    `json:"vResolution"`
	HScreenSize            float32                `json:"hScreenSize"`
	VScreenSize            float32                `json:"vScreenSize"`
	ScreenCenterOffset     float32                `json:"screenCenterOffset"`
	LensSeparation         float32                `json:"lensSeparation"`
	InterpupillaryDistance float32                `json:"interpupillaryDistance"`
	EyeToScreenDistance    float32                `json:"eyeToScreenDistance"`
	DistortionK            DistortionCoefficients `json:"distortionK"`
	ChromaAbCorrection     ChromaCoefficients     `json:"chromaAbCorrection"`
}

// AspectRatio returns the per-eye aspect ratio of the panel.
func (i HMDInfo) AspectRatio() float32 {
	if i.VResolution == 0 {
		return 0
	}
	return float32(i.HResolution) / 2 / float32(i.VResolution)
}

func quat(q [4]float32) Quaternion {
	return Quaternion{X: q[0], Y: q[1], Z: q[2], W: q[3]}
}

func vec3(v [3]float32) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}
