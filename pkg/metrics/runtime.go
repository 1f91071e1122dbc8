package metrics

import (
	"runtime"
	"sync"
	"time"
)

// CollectRuntime samples Go runtime stats into gauges at the given interval.
// The first sample is taken synchronously. The returned function stops the
// collector and is safe to call more than once.
func (r *Registry) CollectRuntime(every time.Duration) func() {
	goroutines := r.Gauge("go_goroutines", "Number of live goroutines")
	heapAlloc := r.Gauge("go_heap_alloc_bytes", "Heap bytes allocated and in use")
	gcCycles := r.Gauge("go_gc_cycles_total", "Completed GC cycles")
	gcPause := r.Gauge("go_gc_pause_total_ns", "Cumulative GC pause time")

	sample := func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		goroutines.Set(int64(runtime.NumGoroutine()))
		heapAlloc.Set(int64(ms.HeapAlloc))
		gcCycles.Set(int64(ms.NumGC))
		gcPause.Set(int64(ms.PauseTotalNs))
	}
	sample()

	stop := make(chan struct{})
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				sample()
			case <-stop:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(stop) }) }
}
