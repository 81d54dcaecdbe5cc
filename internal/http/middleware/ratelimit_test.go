package middleware

import "testing"

func TestRateLimiterBurstThenDeny(t *testing.T) {
	rl := NewRateLimiter(60, 2) // 1/sec after an initial burst of 2

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("first request should pass")
	}
	if !rl.Allow("10.0.0.1") {
		t.Fatalf("second request should fit the burst")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("third immediate request should be throttled")
	}
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(60, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("first ip should pass")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("a different ip has its own bucket")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("first ip should now be throttled")
	}
}
