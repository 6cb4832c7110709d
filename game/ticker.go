package game

import (
	"sync"
	"time"
)

// ticker calls fn every interval on its own goroutine until stopped.
type ticker struct {
	stop chan struct{}
	once sync.Once
}

func startTicker(interval time.Duration, fn func()) *ticker {
	t := &ticker{stop: make(chan struct{})}

	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()

		for {
			select {
			case <-tk.C:
				fn()
			case <-t.stop:
				return
			}
		}
	}()

	return t
}

// Stop is safe to call more than once and on a nil ticker. It does not wait
// for an in-flight fn to return; callers that hold a lock fn needs would
// deadlock otherwise.
func (t *ticker) Stop() {
	if t == nil {
		return
	}
	t.once.Do(func() { close(t.stop) })
}
