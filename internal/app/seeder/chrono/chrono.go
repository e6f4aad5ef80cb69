// Package chrono centralizes the three sampling shapes that give the
// generated dataset its organically aged feel: skewed-recent interval
// sampling, triangular business-day due dates, and due-anchored completion
// timestamps. Every date-sensitive stage composes these primitives instead
// of inventing its own distribution.
package chrono

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws all values from a single shared random source so that a
// run is reproducible from one top-level seed.
type Sampler struct {
	rng  *rand.Rand
	src  rand.Source
	beta distuv.Beta
}

// NewSampler creates a Sampler on the given source. The source is shared
// with the gonum distributions; no second stream is created.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{
		rng:  rand.New(src),
		src:  src,
		beta: distuv.Beta{Alpha: 2, Beta: 5, Src: src},
	}
}

// Between samples a timestamp in [start, end] skewed toward end.
//
// A Beta(2,5) draw concentrates probability near 0, which is mapped to
// offsets close to end, so recent events are more likely. If start >= end the
// interval is degenerate and start is returned exactly.
func (s *Sampler) Between(start, end time.Time) time.Time {
	if !start.Before(end) {
		return start
	}
	total := end.Sub(start)
	frac := s.beta.Rand()
	offset := time.Duration((1 - frac) * float64(total))
	return start.Add(offset)
}

// BusinessDueDate generates a due date after createdAt, preferring 1–4 week
// horizons: a triangular offset whose mode sits at 35% of the span, snapped
// to a weekday. If maxDays <= 0 the creation date itself is snapped.
func (s *Sampler) BusinessDueDate(createdAt time.Time, minDays, maxDays int) time.Time {
	if maxDays <= 0 {
		return s.toBusinessDay(DateOf(createdAt))
	}
	mode := float64(minDays) + float64(maxDays-minDays)*0.35
	offset := s.TriangularInt(minDays, maxDays, mode)
	return s.toBusinessDay(DateOf(createdAt).AddDate(0, 0, offset))
}

// toBusinessDay snaps a date to the closest weekday: Saturday moves to the
// preceding Friday with probability 0.6 and to Monday otherwise; Sunday
// always moves to Monday.
func (s *Sampler) toBusinessDay(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		if s.rng.Float64() < 0.6 {
			return d.AddDate(0, 0, -1)
		}
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// CompletionAfter generates a completion timestamp after
// createdAt + minHours, loosely anchored to the due date when one exists:
// the window's lower bound becomes min(createdAt+minHours, due-7d) and the
// upper bound min(createdAt+maxDays, due+14d). The lower bound is never
// pulled before createdAt itself, so completion cannot precede creation.
// A degenerate window returns its lower bound exactly.
func (s *Sampler) CompletionAfter(createdAt time.Time, due *time.Time, minHours, maxDays int) time.Time {
	earliest := createdAt.Add(time.Duration(minHours) * time.Hour)
	latest := createdAt.AddDate(0, 0, maxDays)

	if due != nil {
		d := DateOf(*due)
		if e := d.AddDate(0, 0, -7); e.Before(earliest) {
			earliest = e
		}
		if l := d.AddDate(0, 0, 14); l.Before(latest) {
			latest = l
		}
	}
	if earliest.Before(createdAt) {
		earliest = createdAt
	}

	if !earliest.Before(latest) {
		return earliest
	}
	return s.Between(earliest, latest)
}

// IsOverdue reports whether an item is overdue: due date set, in the past
// relative to now's date, and not completed.
func IsOverdue(due, completedAt *time.Time, now time.Time) bool {
	if due == nil || completedAt != nil {
		return false
	}
	return DateOf(*due).Before(DateOf(now))
}

// TriangularInt draws an integer from a triangular distribution over
// [lo, hi] with the given mode, rounded and clamped back into range. The
// mode is clamped into [lo, hi] first; a degenerate range returns lo.
func (s *Sampler) TriangularInt(lo, hi int, mode float64) int {
	if lo >= hi {
		return lo
	}
	mode = math.Max(float64(lo), math.Min(float64(hi), mode))
	tri := distuv.NewTriangle(float64(lo), float64(hi), mode, s.src)
	n := int(math.Round(tri.Rand()))
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return n
}

// IntBetween draws a uniform integer in [lo, hi], both ends inclusive.
func (s *Sampler) IntBetween(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Uniform draws a uniform float in [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Float64 draws a uniform float in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// WeightedIndex draws an index with probability proportional to weights.
// Panics on an empty or non-positive weight vector; catalogs are fixed at
// compile time, so this is a programming error, not input.
func (s *Sampler) WeightedIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("chrono: WeightedIndex requires positive total weight")
	}
	target := s.rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Sample returns k items drawn without replacement. If k >= len(items) a
// shuffled copy of the whole slice is returned.
func Sample[T any](s *Sampler, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	perm := s.rng.Perm(len(items))
	out := make([]T, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, items[idx])
	}
	return out
}

// Pick returns a uniformly random element.
func Pick[T any](s *Sampler, items []T) T {
	return items[s.rng.IntN(len(items))]
}

// DateOf truncates a timestamp to its UTC date (midnight UTC).
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
