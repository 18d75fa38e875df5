package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected a shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestSetupNoopExporter(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: true, Exporter: "noop"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

func TestSetupStdoutExporter(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{Enabled: true, Exporter: "stdout"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}

	// Restore the noop provider so later tests stay quiet.
	if _, err := Setup(context.Background(), Config{Enabled: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetupUnsupportedExporter(t *testing.T) {
	if _, err := Setup(context.Background(), Config{Enabled: true, Exporter: "jaeger"}); err == nil {
		t.Fatal("expected error for unsupported exporter")
	}
}

func TestSpanHelpers(t *testing.T) {
	if _, err := Setup(context.Background(), Config{Enabled: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, span := StartSpan(context.Background(), "test.operation")
	if ctx == nil || span == nil {
		t.Fatal("expected a context and span")
	}
	RecordError(span, errors.New("boom"))
	SetOK(span)
	span.End()
}

func TestAttrHelpers(t *testing.T) {
	s := StringAttr("service", "connectonion")
	if string(s.Key) != "service" || s.Value.AsString() != "connectonion" {
		t.Errorf("unexpected string attribute: %v", s)
	}

	i := IntAttr("count", 3)
	if string(i.Key) != "count" || i.Value.AsInt64() != 3 {
		t.Errorf("unexpected int attribute: %v", i)
	}
}
