package chrono

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampler(t *testing.T) *Sampler {
	t.Helper()
	return NewSampler(rand.NewPCG(42, 42))
}

func TestBetween_StaysInsideInterval(t *testing.T) {
	s := newTestSampler(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		got := s.Between(start, end)
		require.False(t, got.Before(start), "sample before interval start: %s", got)
		require.False(t, got.After(end), "sample after interval end: %s", got)
	}
}

func TestBetween_SkewsTowardEnd(t *testing.T) {
	s := newTestSampler(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(1000 * time.Hour)
	mid := start.Add(500 * time.Hour)

	late := 0
	const n = 2000
	for i := 0; i < n; i++ {
		if s.Between(start, end).After(mid) {
			late++
		}
	}
	// Beta(2,5) mapped to 1-frac puts ~89% of mass past the midpoint.
	assert.Greater(t, late, n*3/4, "expected most samples in the later half, got %d/%d", late, n)
}

func TestBetween_DegenerateInterval(t *testing.T) {
	s := newTestSampler(t)
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, s.Between(at, at).Equal(at))
	assert.True(t, s.Between(at, at.Add(-time.Hour)).Equal(at))
}

func TestBusinessDueDate_NeverFallsOnWeekend(t *testing.T) {
	s := newTestSampler(t)
	created := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		due := s.BusinessDueDate(created, 3, 75)
		wd := due.Weekday()
		require.NotEqual(t, time.Saturday, wd, "due date on Saturday: %s", due)
		require.NotEqual(t, time.Sunday, wd, "due date on Sunday: %s", due)
	}
}

func TestBusinessDueDate_WithinOffsetRange(t *testing.T) {
	s := newTestSampler(t)
	created := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		due := s.BusinessDueDate(created, 5, 45)
		days := int(due.Sub(DateOf(created)).Hours() / 24)
		// Weekend snapping can move the date up to two days either way.
		require.GreaterOrEqual(t, days, 4, "due date too early: %s", due)
		require.LessOrEqual(t, days, 47, "due date too late: %s", due)
	}
}

func TestBusinessDueDate_DegenerateRange(t *testing.T) {
	s := newTestSampler(t)
	created := time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC) // Wednesday

	due := s.BusinessDueDate(created, 0, 0)
	assert.True(t, due.Equal(DateOf(created)))
}

func TestCompletionAfter_RespectsMinimumDelay(t *testing.T) {
	s := newTestSampler(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		done := s.CompletionAfter(created, nil, 1, 60)
		require.False(t, done.Before(created.Add(time.Hour)), "completion before minimum delay: %s", done)
		require.False(t, done.After(created.AddDate(0, 0, 60)), "completion after window: %s", done)
	}
}

func TestCompletionAfter_AnchorsToDueDate(t *testing.T) {
	s := newTestSampler(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	due := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	// The upper bound shrinks from created+60d to due+14d.
	for i := 0; i < 500; i++ {
		done := s.CompletionAfter(created, &due, 1, 60)
		require.False(t, done.Before(created.Add(time.Hour)), "completion before window: %s", done)
		require.False(t, done.After(due.AddDate(0, 0, 14)), "completion past the due-anchored bound: %s", done)
	}
}

func TestCompletionAfter_DegenerateWindow(t *testing.T) {
	s := newTestSampler(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	// Due date far in the past forces latest < earliest; the clamped lower
	// bound is the creation time itself.
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	done := s.CompletionAfter(created, &due, 1, 60)
	assert.True(t, done.Equal(created), "expected the clamped window lower bound, got %s", done)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	future := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	done := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		due       *time.Time
		completed *time.Time
		want      bool
	}{
		{name: "no due date", due: nil, completed: nil, want: false},
		{name: "due in past, open", due: &past, completed: nil, want: true},
		{name: "due in past, completed", due: &past, completed: &done, want: false},
		{name: "due today", due: &today, completed: nil, want: false},
		{name: "due in future", due: &future, completed: nil, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsOverdue(tc.due, tc.completed, now))
		})
	}
}

func TestTriangularInt_BoundsAndDegenerateRange(t *testing.T) {
	s := newTestSampler(t)

	assert.Equal(t, 7, s.TriangularInt(7, 7, 9))
	assert.Equal(t, 7, s.TriangularInt(7, 3, 5))

	for i := 0; i < 500; i++ {
		n := s.TriangularInt(8, 15, 13.5)
		require.GreaterOrEqual(t, n, 8)
		require.LessOrEqual(t, n, 15)
	}

	// Mode beyond the upper bound is clamped rather than rejected.
	for i := 0; i < 200; i++ {
		n := s.TriangularInt(3, 5, 100)
		require.GreaterOrEqual(t, n, 3)
		require.LessOrEqual(t, n, 5)
	}
}

func TestWeightedIndex_RoughlyProportional(t *testing.T) {
	s := newTestSampler(t)
	weights := []float64{0.7, 0.2, 0.1}

	counts := make([]int, len(weights))
	const n = 10000
	for i := 0; i < n; i++ {
		idx := s.WeightedIndex(weights)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(weights))
		counts[idx]++
	}

	assert.InDelta(t, 0.7, float64(counts[0])/n, 0.05)
	assert.InDelta(t, 0.2, float64(counts[1])/n, 0.05)
	assert.InDelta(t, 0.1, float64(counts[2])/n, 0.05)
}

func TestSample_WithoutReplacement(t *testing.T) {
	s := newTestSampler(t)
	items := []int{1, 2, 3, 4, 5}

	got := Sample(s, items, 3)
	require.Len(t, got, 3)
	seen := map[int]bool{}
	for _, v := range got {
		require.False(t, seen[v], "duplicate element %d", v)
		seen[v] = true
	}

	all := Sample(s, items, 10)
	assert.Len(t, all, len(items))
}

func TestSampler_Reproducible(t *testing.T) {
	a := NewSampler(rand.NewPCG(7, 7))
	b := NewSampler(rand.NewPCG(7, 7))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	for i := 0; i < 100; i++ {
		require.True(t, a.Between(start, end).Equal(b.Between(start, end)))
	}
}
