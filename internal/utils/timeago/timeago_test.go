package timeago

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	now := time.Now()

	if got := Format(now.Add(-10*time.Second), now); got != "Just now" {
		t.Fatalf("Expected Just now, got %q", got)
	}
	if got := Format(now.Add(-5*time.Minute), now); got != "5 minutes ago" {
		t.Fatalf("Expected 5 minutes ago, got %q", got)
	}
	if got := Format(now.Add(-3*time.Hour), now); got != "3 hours ago" {
		t.Fatalf("Expected 3 hours ago, got %q", got)
	}
	if got := Format(now.Add(-49*time.Hour), now); got != "2 days ago" {
		t.Fatalf("Expected 2 days ago, got %q", got)
	}
}

func TestFormat_Boundaries(t *testing.T) {
	now := time.Now()

	// Units apply strictly past their boundary.
	if got := Format(now.Add(-time.Minute), now); got != "Just now" {
		t.Fatalf("Expected Just now at exactly one minute, got %q", got)
	}
	if got := Format(now.Add(-time.Hour), now); got != "60 minutes ago" {
		t.Fatalf("Expected 60 minutes ago at exactly one hour, got %q", got)
	}
	if got := Format(now.Add(-24*time.Hour), now); got != "24 hours ago" {
		t.Fatalf("Expected 24 hours ago at exactly one day, got %q", got)
	}
	if got := Format(now.Add(-25*time.Hour), now); got != "1 days ago" {
		t.Fatalf("Expected 1 days ago past one day, got %q", got)
	}
}
