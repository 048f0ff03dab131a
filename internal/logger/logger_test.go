package logger

import "testing"

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := New("debug", format)
		if err != nil {
			t.Fatalf("format %s: unexpected error: %v", format, err)
		}
		if !l.Core().Enabled(-1) {
			t.Errorf("format %s: expected debug level to be enabled", format)
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNamed_NilBase(t *testing.T) {
	if Named(nil, "x") == nil {
		t.Error("expected a no-op logger")
	}
}
