package mw

import (
	"testing"
	"time"
)

func TestLimiterBurstThenDeny(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 3, RefillPerMin: 60})
	now := time.Now()

	for i := 0; i < 3; i++ {
		if ok, _ := l.allow("1.2.3.4", now); !ok {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}
	ok, retry := l.allow("1.2.3.4", now)
	if ok {
		t.Fatal("request allowed after burst exhausted")
	}
	if retry < 1 {
		t.Fatalf("retry-after = %d, want >= 1", retry)
	}
}

func TestLimiterRefills(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerMin: 60})
	now := time.Now()

	if ok, _ := l.allow("1.2.3.4", now); !ok {
		t.Fatal("first request denied")
	}
	if ok, _ := l.allow("1.2.3.4", now); ok {
		t.Fatal("second request allowed with empty bucket")
	}
	// 60/min refills one token per second.
	if ok, _ := l.allow("1.2.3.4", now.Add(time.Second)); !ok {
		t.Fatal("request denied after refill interval")
	}
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerMin: 1})
	now := time.Now()

	if ok, _ := l.allow("1.1.1.1", now); !ok {
		t.Fatal("first client denied")
	}
	if ok, _ := l.allow("2.2.2.2", now); !ok {
		t.Fatal("second client penalized for first client's traffic")
	}
}

func TestLimiterSweepsIdleBuckets(t *testing.T) {
	l := newLimiter(RateLimitConfig{Burst: 1, RefillPerMin: 1, IdleTTL: time.Minute})
	now := time.Now()

	l.allow("1.1.1.1", now)
	l.allow("2.2.2.2", now.Add(2*time.Minute))

	l.mu.Lock()
	l.sweepLocked(now.Add(2 * time.Minute))
	n := len(l.buckets)
	l.mu.Unlock()

	if n != 1 {
		t.Fatalf("buckets after sweep = %d, want 1 (idle entry removed)", n)
	}
}
