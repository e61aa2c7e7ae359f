//go:build rifthw && cgo

package native

/*
#cgo LDFLAGS: -lovrc
#include "ovrc.h"
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"unsafe"
)

// cgoModule is the hardware driver. It registers itself as the default
// module when the binary is built with the rifthw tag.
type cgoModule struct{}

func init() {
	Register(cgoModule{})
}

func (cgoModule) Init()     { C.ovrc_init() }
func (cgoModule) Shutdown() { C.ovrc_shutdown() }

func (cgoModule) Create() (Handle, error) {
	p := C.ovrc_create()
	if p == nil {
		return 0, errors.New("ovrc_create returned null")
	}
	return Handle(uintptr(p)), nil
}

func (cgoModule) Destroy(h Handle) {
	C.ovrc_destroy(ptr(h))
}

func (cgoModule) IsConnected(h Handle) bool {
	return C.ovrc_is_connected(ptr(h)) != 0
}

func (cgoModule) DesktopPosition(h Handle) (x, y int) {
	var cx, cy C.int
	C.ovrc_desktop_position(ptr(h), &cx, &cy)
	return int(cx), int(cy)
}

func (cgoModule) ScreenResolution(h Handle) (hres, vres int) {
	var ch, cv C.int
	C.ovrc_screen_resolution(ptr(h), &ch, &cv)
	return int(ch), int(cv)
}

func (cgoModule) ScreenSize(h Handle) (hsize, vsize float32) {
	var ch, cv C.float
	C.ovrc_screen_size(ptr(h), &ch, &cv)
	return float32(ch), float32(cv)
}

func (cgoModule) ScreenCenterOffset(h Handle) float32 {
	return float32(C.ovrc_screen_center_offset(ptr(h)))
}

func (cgoModule) LensSeparation(h Handle) float32 {
	return float32(C.ovrc_lens_separation(ptr(h)))
}

func (cgoModule) InterpupillaryDistance(h Handle) float32 {
	return float32(C.ovrc_interpupillary_distance(ptr(h)))
}

func (cgoModule) EyeToScreenDistance(h Handle) float32 {
	return float32(C.ovrc_eye_to_screen_distance(ptr(h)))
}

func (cgoModule) DistortionK(h Handle) [4]float32 {
	var k [4]C.float
	C.ovrc_distortion_k(ptr(h), &k[0])
	return [4]float32{float32(k[0]), float32(k[1]), float32(k[2]), float32(k[3])}
}

func (cgoModule) ChromaAbCorrection(h Handle) [4]float32 {
	var c [4]C.float
	C.ovrc_chroma_ab_correction(ptr(h), &c[0])
	return [4]float32{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])}
}

func (cgoModule) Orientation(h Handle) [4]float32 {
	var q [4]C.float
	C.ovrc_orientation(ptr(h), &q[0])
	return [4]float32{float32(q[0]), float32(q[1]), float32(q[2]), float32(q[3])}
}

func (cgoModule) PredictedOrientation(h Handle) [4]float32 {
	var q [4]C.float
	C.ovrc_predicted_orientation(ptr(h), &q[0])
	return [4]float32{float32(q[0]), float32(q[1]), float32(q[2]), float32(q[3])}
}

func (cgoModule) Acceleration(h Handle) [3]float32 {
	var v [3]C.float
	C.ovrc_acceleration(ptr(h), &v[0])
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func (cgoModule) AngularVelocity(h Handle) [3]float32 {
	var v [3]C.float
	C.ovrc_angular_velocity(ptr(h), &v[0])
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func (cgoModule) PredictionDelta(h Handle) float32 {
	return float32(C.ovrc_prediction_delta(ptr(h)))
}

func (cgoModule) SetPredictionDelta(h Handle, seconds float32) {
	C.ovrc_set_prediction_delta(ptr(h), C.float(seconds))
}

func (cgoModule) PredictionEnabled(h Handle) bool {
	return C.ovrc_prediction_enabled(ptr(h)) != 0
}

func (cgoModule) SetPredictionEnabled(h Handle, enabled bool) {
	var e C.int
	if enabled {
		e = 1
	}
	C.ovrc_set_prediction_enabled(ptr(h), e)
}

func ptr(h Handle) unsafe.Pointer {
	return unsafe.Pointer(uintptr(h))
}
