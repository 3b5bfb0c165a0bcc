package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/kogoapp/kogo-server/pkg/debounce"
)

func TestTriggerCoalesces(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("got %d calls, want 1 after a burst of triggers", got)
	}
}

func TestTriggerFiresAfterWindow(t *testing.T) {
	d := debounce.New(10 * time.Millisecond)
	defer d.Stop()

	done := make(chan struct{})
	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pending call never fired")
	}
}

func TestStopCancelsPending(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("got %d calls after Stop, want 0", got)
	}

	// Stop with nothing pending is a no-op.
	d.Stop()
}

func TestZeroWindowUsesDefault(t *testing.T) {
	d := debounce.New(0)
	defer d.Stop()

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })

	// Well inside the default window nothing should have fired yet.
	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("fired after %v with default window %v", 50*time.Millisecond, debounce.DefaultWindow)
	}
}

func TestGuard(t *testing.T) {
	var g debounce.Guard

	first := g.Next()
	if !g.Latest(first) {
		t.Error("freshly issued token should be latest")
	}

	second := g.Next()
	if g.Latest(first) {
		t.Error("superseded token still reported latest")
	}
	if !g.Latest(second) {
		t.Error("newest token should be latest")
	}
}
