package game

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerFiresUntilStopped(t *testing.T) {
	var calls atomic.Int32
	tk := startTicker(2*time.Millisecond, func() { calls.Add(1) })

	deadline := time.Now().Add(time.Second)
	for calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("ticker never fired")
		}
		time.Sleep(time.Millisecond)
	}

	tk.Stop()
	// Allow a tick that was already running to finish.
	time.Sleep(10 * time.Millisecond)
	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != stopped {
		t.Fatalf("ticker kept firing after stop: %d -> %d", stopped, calls.Load())
	}
}

func TestTickerStopIsIdempotent(t *testing.T) {
	tk := startTicker(time.Hour, func() {})
	tk.Stop()
	tk.Stop()

	var nilTicker *ticker
	nilTicker.Stop()
}
