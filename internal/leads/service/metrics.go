package service

import (
	"sync/atomic"
	"time"
)

// Metrics tracks submission workflow counters
type Metrics struct {
	Submissions   int64 `json:"submissions"`
	Rejected      int64 `json:"rejected"`
	Failures      int64 `json:"failures"`
	Uploads       int64 `json:"uploads"`
	UploadedBytes int64 `json:"uploaded_bytes"`
	createLatency int64 // total nanoseconds
	createCalls   int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Metrics {
	return Metrics{
		Submissions:   atomic.LoadInt64(&globalMetrics.Submissions),
		Rejected:      atomic.LoadInt64(&globalMetrics.Rejected),
		Failures:      atomic.LoadInt64(&globalMetrics.Failures),
		Uploads:       atomic.LoadInt64(&globalMetrics.Uploads),
		UploadedBytes: atomic.LoadInt64(&globalMetrics.UploadedBytes),
		createLatency: atomic.LoadInt64(&globalMetrics.createLatency),
		createCalls:   atomic.LoadInt64(&globalMetrics.createCalls),
	}
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.Submissions, 0)
	atomic.StoreInt64(&globalMetrics.Rejected, 0)
	atomic.StoreInt64(&globalMetrics.Failures, 0)
	atomic.StoreInt64(&globalMetrics.Uploads, 0)
	atomic.StoreInt64(&globalMetrics.UploadedBytes, 0)
	atomic.StoreInt64(&globalMetrics.createLatency, 0)
	atomic.StoreInt64(&globalMetrics.createCalls, 0)
}

func recordSubmission() { atomic.AddInt64(&globalMetrics.Submissions, 1) }

func recordRejected() { atomic.AddInt64(&globalMetrics.Rejected, 1) }

func recordFailure() { atomic.AddInt64(&globalMetrics.Failures, 1) }

func recordUpload(size int64) {
	atomic.AddInt64(&globalMetrics.Uploads, 1)
	atomic.AddInt64(&globalMetrics.UploadedBytes, size)
}

func recordCreate(d time.Duration) {
	atomic.AddInt64(&globalMetrics.createCalls, 1)
	atomic.AddInt64(&globalMetrics.createLatency, d.Nanoseconds())
}

// AverageCreateLatency returns the average record creation latency in milliseconds
func (m Metrics) AverageCreateLatency() float64 {
	if m.createCalls == 0 {
		return 0
	}
	return float64(m.createLatency) / float64(m.createCalls) / 1e6
}
