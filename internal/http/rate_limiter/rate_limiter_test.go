package rate_limiter_test

import (
	"testing"

	rl "github.com/rogerio-castellano/blog-platform/internal/http/rate_limiter"
)

func TestVisitorBurst(t *testing.T) {
	limiter := rl.New(1, 3)

	v := limiter.Visitor("10.0.0.1")
	for i := 0; i < 3; i++ {
		if !v.Allow() {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if v.Allow() {
		t.Error("request beyond burst should be rejected")
	}
}

func TestVisitorsAreIndependent(t *testing.T) {
	limiter := rl.New(1, 1)

	if !limiter.Visitor("10.0.0.1").Allow() {
		t.Fatal("first visitor should be allowed")
	}
	if limiter.Visitor("10.0.0.1").Allow() {
		t.Error("first visitor should be exhausted")
	}
	if !limiter.Visitor("10.0.0.2").Allow() {
		t.Error("second visitor should have its own bucket")
	}
}

func TestReset(t *testing.T) {
	limiter := rl.New(1, 1)

	limiter.Visitor("10.0.0.1").Allow()
	limiter.Reset()

	if !limiter.Visitor("10.0.0.1").Allow() {
		t.Error("reset should clear visitor buckets")
	}
}
