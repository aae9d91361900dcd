package telemetry

import (
	"context"
	"testing"
)

func TestInit_NilConfig(t *testing.T) {
	tel, err := Init(context.Background(), nil)
	if err != nil {
		t.Fatalf("Init(nil) error = %v", err)
	}
	if tel == nil || tel.tracer == nil {
		t.Fatal("Init(nil) should return a usable no-op telemetry")
	}

	ctx, span := StartSpan(context.Background(), "test.span")
	if ctx == nil || span == nil {
		t.Fatal("StartSpan should work after disabled Init")
	}
	span.End()

	if err := Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestInit_Disabled(t *testing.T) {
	tel, err := Init(context.Background(), &Config{
		Enabled:     false,
		ServiceName: "eduhub-test",
	})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if tel.provider != nil {
		t.Error("disabled telemetry should not build a provider")
	}
}
