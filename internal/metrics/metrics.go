package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	fallbacks       int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// fallback synthesis, cache traffic, and the opponent stitch. It mirrors
// every observation to OpenTelemetry when instruments are configured.
type Recorder struct {
	mu              sync.Mutex
	stats           map[string]*providerStats
	cacheHits       int
	cacheMisses     int
	stitchAttempts  int
	stitchResolved  int
	otel            *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordFallback tracks that a provider served synthesized fallback data.
func (r *Recorder) RecordFallback(provider string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureStats(provider).fallbacks++
	r.mu.Unlock()

	r.otel.recordFallback(provider)
}

// RecordCache tracks a transport cache lookup outcome.
func (r *Recorder) RecordCache(hit bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	if hit {
		r.cacheHits++
	} else {
		r.cacheMisses++
	}
	r.mu.Unlock()

	r.otel.recordCache(hit)
}

// RecordStitch tracks an opponent-stitch pass and whether it resolved the
// placeholder.
func (r *Recorder) RecordStitch(resolved bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stitchAttempts++
	if resolved {
		r.stitchResolved++
	}
	r.mu.Unlock()

	r.otel.recordStitch(resolved)
}

// RecordHTTPRequest tracks an API request outcome.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(provider).errors
}

// ProviderFallbacks returns the fallback payloads served for a provider.
func (r *Recorder) ProviderFallbacks(provider string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(provider).fallbacks
}

// CacheCounts returns hits and misses recorded so far.
func (r *Recorder) CacheCounts() (hits, misses int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheHits, r.cacheMisses
}

// StitchCounts returns stitch attempts and resolutions recorded so far.
func (r *Recorder) StitchCounts() (attempts, resolved int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stitchAttempts, r.stitchResolved
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
