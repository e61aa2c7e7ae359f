package rift

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/shaban/rift/native"
)

// Options configure a session at Open time.
type Options struct {
	// PredictionDelta, when non-zero, is applied to the fresh session
	// through SetPredictionDelta and therefore subject to the same domain
	// validation. Zero keeps the module's built-in default.
	PredictionDelta float32 `env:"RIFT_PREDICTION_DELTA"`

	// EnablePrediction switches orientation prediction on right after the
	// session is created.
	EnablePrediction bool `env:"RIFT_PREDICTION_ENABLED"`

	// LeakCheck arms a finalizer that warns, then disposes, when a live
	// session is garbage collected without an explicit Dispose.
	LeakCheck bool `env:"RIFT_LEAK_CHECK" envDefault:"true"`

	// Module overrides the registered native driver. Tests use this to
	// substitute stubs; nil means native.Default().
	Module native.Module `env:"-"`

	// ErrorHandler receives leak warnings and monitor diagnostics. Nil
	// means DefaultErrorHandler.
	ErrorHandler ErrorHandler `env:"-"`
}

// DefaultOptions returns the options Open uses: module default prediction
// config, leak checking on.
func DefaultOptions() Options {
	return Options{LeakCheck: true}
}

// OptionsFromEnv builds options from RIFT_* environment variables,
// starting from the defaults.
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions()
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("rift: parse env options: %w", err)
	}
	return opts, nil
}
