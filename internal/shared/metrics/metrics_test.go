package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesUpdateCounters(t *testing.T) {
	IncFileUpdateSucceeded()
	IncFileUpdateConflicted()
	IncFileUpdateNotFound()

	out := Render()
	for _, name := range []string{
		"file_update_succeeded_total",
		"file_update_conflicted_total",
		"file_update_not_found_total",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{1, 10, 100})
	h.Observe(0.5)
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 4 {
		t.Fatalf("expected count 4, got %d", snap.count)
	}

	var cumulative uint64
	expected := []uint64{1, 2, 3}
	for i := range snap.buckets {
		cumulative += snap.counts[i]
		if cumulative != expected[i] {
			t.Fatalf("bucket %d: expected cumulative %d, got %d", i, expected[i], cumulative)
		}
	}
}
