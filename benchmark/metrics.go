// Package benchmark - scenario-driven benchmarking of inpainting backends.
package benchmark

import "time"

// PerformanceMetrics captures the result of running one scenario.
type PerformanceMetrics struct {
	Scenario        Scenario      `json:"scenario"`
	Timestamp       time.Time     `json:"timestamp"`
	Iterations      int           `json:"iterations"`
	TotalDuration   time.Duration `json:"total_duration"`
	MinDuration     time.Duration `json:"min_duration"`
	MaxDuration     time.Duration `json:"max_duration"`
	MeanDuration    time.Duration `json:"mean_duration"`
	ImagesPerSecond float64       `json:"images_per_second"`
	MegapixelsPerS  float64       `json:"megapixels_per_second"`
	MemoryStats     MemoryMetrics `json:"memory_stats"`
	ErrorCount      int           `json:"error_count"`
}

// MemoryMetrics captures memory usage statistics around a scenario run.
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
	HeapAllocBytes  uint64 `json:"heap_alloc_bytes"`
	HeapSysBytes    uint64 `json:"heap_sys_bytes"`
}
