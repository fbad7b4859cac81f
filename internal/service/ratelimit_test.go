package service_test

import (
	"testing"
	"time"

	"github.com/campusevents/campus-events/internal/service"
)

func TestTokenBucketAllowsBurst(t *testing.T) {
	tb := service.NewTokenBucket(1, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if tb.Allow("10.0.0.1") {
		t.Error("request beyond burst capacity should be denied")
	}
}

func TestTokenBucketRefills(t *testing.T) {
	tb := service.NewTokenBucket(100, 1)

	if !tb.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if tb.Allow("10.0.0.1") {
		t.Fatal("second immediate request should be denied")
	}

	time.Sleep(20 * time.Millisecond)
	if !tb.Allow("10.0.0.1") {
		t.Error("request after refill interval should be allowed")
	}
}

func TestTokenBucketKeysAreIndependent(t *testing.T) {
	tb := service.NewTokenBucket(1, 1)

	if !tb.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if tb.Allow("10.0.0.1") {
		t.Fatal("exhausted key should be denied")
	}
	if !tb.Allow("10.0.0.2") {
		t.Error("a different key starts with a full bucket")
	}
}
