package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorBucketDedupes(t *testing.T) {
	b := newErrorBucket(1) // cap = 1000
	for i := 0; i < 5; i++ {
		b.add("10.0.0.1", errors.New("connection refused"))
	}
	if got := b.Strings(); len(got) != 1 {
		t.Fatalf("expected identical errors to dedupe to 1 entry, got %d: %v", len(got), got)
	}
}

func TestErrorBucketAppendsHostToErrorString(t *testing.T) {
	b := newErrorBucket(1)
	b.add("10.0.0.1", errors.New("connection refused"))
	got := b.Strings()
	if len(got) != 1 || got[0] != "connection refused 10.0.0.1" {
		t.Fatalf("expected %q, got %v", "connection refused 10.0.0.1", got)
	}
}

func TestErrorBucketCapsAtHostCountTimesThousand(t *testing.T) {
	b := newErrorBucket(1) // cap = 1000
	for i := 0; i < 1005; i++ {
		b.add("10.0.0.1", fmt.Errorf("distinct error %d", i))
	}
	if got := len(b.Strings()); got > 1000 {
		t.Fatalf("expected bucket capped at 1000 entries, got %d", got)
	}
}

func TestErrorBucketNilSafe(t *testing.T) {
	var b *errorBucket
	b.add("10.0.0.1", errors.New("boom"))
	if got := b.Strings(); got != nil {
		t.Fatalf("expected nil bucket to yield no entries, got %v", got)
	}
}

func TestScanTargetsPopulatesErrorsOnFailure(t *testing.T) {
	cfg := &Config{Workers: 1, MaxRetries: 0, Timeout: 50 * time.Millisecond}
	scanner := NewScanner(cfg)

	ctx := context.Background()
	go scanner.ScanTargets(ctx, []ScanTarget{{Host: "192.0.2.1", Ports: []uint16{1}}})
	for range scanner.Results() {
	}

	if len(scanner.Errors()) == 0 {
		t.Fatal("expected a bucketed error after a failing scan against an unreachable host")
	}
}
