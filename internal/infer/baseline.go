package infer

import (
	"math"
	"sync"
)

// Metrics tracked against a user's baseline.
const (
	MetricWordCount              = "word_count"
	MetricHedgeDensity           = "hedge_density"
	MetricNegativeEmotionDensity = "negative_emotion_density"
	MetricExclamationRatio       = "exclamation_ratio"
)

// minBaselineSamples is how many observations a metric needs before its
// z-scores are trusted.
const minBaselineSamples = 5

// runningStat accumulates mean and variance incrementally (Welford).
type runningStat struct {
	count int
	mean  float64
	m2    float64
}

func (s *runningStat) observe(x float64) {
	s.count++
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
}

func (s *runningStat) stddev() float64 {
	if s.count < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.count-1))
}

// zScore returns how many standard deviations x sits from the running
// mean. ok is false until the metric has enough samples and non-zero
// spread.
func (s *runningStat) zScore(x float64) (z float64, ok bool) {
	if s.count < minBaselineSamples {
		return 0, false
	}
	sd := s.stddev()
	if sd == 0 {
		return 0, false
	}
	return (x - s.mean) / sd, true
}

// Baseline tracks one user's typical message metrics so deviations can be
// scored relative to that user rather than to the population.
type Baseline struct {
	mu    sync.Mutex
	stats map[string]*runningStat
}

// NewBaseline returns an empty baseline.
func NewBaseline() *Baseline {
	return &Baseline{stats: make(map[string]*runningStat)}
}

// Observe records one message's metric values.
func (b *Baseline) Observe(metrics map[string]float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for name, v := range metrics {
		s, ok := b.stats[name]
		if !ok {
			s = &runningStat{}
			b.stats[name] = s
		}
		s.observe(v)
	}
}

// ZScore returns the deviation of value from the user's baseline for the
// named metric.
func (b *Baseline) ZScore(metric string, value float64) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.stats[metric]
	if !ok {
		return 0, false
	}
	return s.zScore(value)
}

// Samples returns how many observations the named metric has.
func (b *Baseline) Samples(metric string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.stats[metric]; ok {
		return s.count
	}
	return 0
}

// Baselines is a concurrency-safe per-user baseline registry.
type Baselines struct {
	mu sync.Mutex
	m  map[string]*Baseline
}

// NewBaselines returns an empty registry.
func NewBaselines() *Baselines {
	return &Baselines{m: make(map[string]*Baseline)}
}

// Get returns the baseline for userID, creating it on first use.
func (b *Baselines) Get(userID string) *Baseline {
	b.mu.Lock()
	defer b.mu.Unlock()
	bl, ok := b.m[userID]
	if !ok {
		bl = NewBaseline()
		b.m[userID] = bl
	}
	return bl
}

// Delete drops the baseline for userID.
func (b *Baselines) Delete(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.m, userID)
}
