// Package profiler - operation timing for the inpainting pipeline.
//
// A Profiler collects wall-clock durations per named operation (decode,
// inpaint, encode, per-image batch steps) and renders a summary report. It
// is thread-safe so batch workers may share one instance.
package profiler

import (
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// TimeTracker tracks timing statistics for one named operation.
type TimeTracker struct {
	name      string
	totalTime time.Duration
	minTime   time.Duration
	maxTime   time.Duration
	count     int64
}

// Profiler aggregates operation timings.
type Profiler struct {
	mu         sync.Mutex
	startTime  time.Time
	operations map[string]*TimeTracker
}

// New returns an empty Profiler.
func New() *Profiler {
	return &Profiler{
		startTime:  time.Now(),
		operations: make(map[string]*TimeTracker),
	}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (p *Profiler) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.recordOperationTime(name, time.Since(start))
	}
}

// recordOperationTime records the completion time of an operation.
func (p *Profiler) recordOperationTime(name string, duration time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.operations[name]
	if !exists {
		tracker = &TimeTracker{
			name:    name,
			minTime: duration,
			maxTime: duration,
		}
		p.operations[name] = tracker
	}

	tracker.totalTime += duration
	tracker.count++
	if duration < tracker.minTime {
		tracker.minTime = duration
	}
	if duration > tracker.maxTime {
		tracker.maxTime = duration
	}
}

// Count returns how many times the named operation completed.
func (p *Profiler) Count(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.operations[name]; ok {
		return t.count
	}
	return 0
}

// Report renders a human-readable summary of all recorded operations,
// sorted by total time descending, plus a heap snapshot.
func (p *Profiler) Report() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	trackers := make([]*TimeTracker, 0, len(p.operations))
	for _, t := range p.operations {
		trackers = append(trackers, t)
	}
	sort.Slice(trackers, func(i, j int) bool {
		return trackers[i].totalTime > trackers[j].totalTime
	})

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var b strings.Builder
	fmt.Fprintf(&b, "profile (uptime %s, heap %.1f MiB)\n",
		time.Since(p.startTime).Round(time.Millisecond),
		float64(m.HeapAlloc)/(1<<20))
	for _, t := range trackers {
		avg := time.Duration(int64(t.totalTime) / t.count)
		fmt.Fprintf(&b, "  %-16s n=%-5d total=%-12s avg=%-10s min=%-10s max=%s\n",
			t.name, t.count,
			t.totalTime.Round(time.Microsecond),
			avg.Round(time.Microsecond),
			t.minTime.Round(time.Microsecond),
			t.maxTime.Round(time.Microsecond))
	}
	return b.String()
}
