package rate_limiter

import (
	"testing"
	"time"
)

func TestVisitors_Allow(t *testing.T) {
	v := NewVisitors(1, 2)

	if !v.Allow("10.0.0.1") || !v.Allow("10.0.0.1") {
		t.Fatal("expected burst of 2 to be allowed")
	}
	if v.Allow("10.0.0.1") {
		t.Error("expected third immediate request to be limited")
	}
	if !v.Allow("10.0.0.2") {
		t.Error("expected another client to have its own bucket")
	}
}

func TestVisitors_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	v := NewVisitors(1, 1)
	v.now = func() time.Time { return now }

	v.GetVisitor("old")
	now = now.Add(10 * time.Minute)
	v.GetVisitor("fresh")

	if removed := v.Cleanup(5 * time.Minute); removed != 1 {
		t.Errorf("expected 1 visitor removed, got %d", removed)
	}
	if v.Len() != 1 {
		t.Errorf("expected 1 visitor left, got %d", v.Len())
	}
}
