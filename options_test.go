package rift

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if !opts.LeakCheck {
		t.Error("leak checking should default to on")
	}
	if opts.PredictionDelta != 0 {
		t.Errorf("default options must not override the module's delta, got %f", opts.PredictionDelta)
	}
	if opts.EnablePrediction {
		t.Error("prediction should default to off")
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("RIFT_PREDICTION_DELTA", "0.05")
	t.Setenv("RIFT_PREDICTION_ENABLED", "true")
	t.Setenv("RIFT_LEAK_CHECK", "false")

	opts, err := OptionsFromEnv()
	if err != nil {
		t.Fatalf("OptionsFromEnv failed: %v", err)
	}
	if opts.PredictionDelta != 0.05 {
		t.Errorf("expected delta 0.05, got %f", opts.PredictionDelta)
	}
	if !opts.EnablePrediction {
		t.Error("expected prediction enabled")
	}
	if opts.LeakCheck {
		t.Error("expected leak check disabled")
	}
}

func TestOptionsFromEnvDefaults(t *testing.T) {
	opts, err := OptionsFromEnv()
	if err != nil {
		t.Fatalf("OptionsFromEnv failed: %v", err)
	}
	if opts != (Options{LeakCheck: true}) {
		t.Errorf("expected bare defaults with empty environment, got %+v", opts)
	}
}

func TestOptionsFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("RIFT_PREDICTION_DELTA", "not-a-number")

	if _, err := OptionsFromEnv(); err == nil {
		t.Error("expected parse error for malformed delta")
	}
}
