package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time, nil until StartCoarseClock
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. Once started, NewEvent timestamps come from
// the cache instead of a syscall per event. It is safe to call multiple
// times; the goroutine is started exactly once and runs for the
// lifetime of the process, which is intentional because a log sink
// typically spans the entire application lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// Now returns the cached coarse time when StartCoarseClock has been
// called, and time.Now() otherwise.
func Now() time.Time {
	p := atomic.LoadPointer(&coarseNow)
	if p == nil {
		return time.Now()
	}
	return *(*time.Time)(p)
}
