package suite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLatencyStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, LatencyStats{}, ComputeLatencyStats(nil))
	})

	t.Run("single sample", func(t *testing.T) {
		s := ComputeLatencyStats([]time.Duration{3 * time.Millisecond})
		assert.Equal(t, 3*time.Millisecond, s.Min)
		assert.Equal(t, 3*time.Millisecond, s.P99)
		assert.Zero(t, s.Stddev)
		assert.Equal(t, 1, s.Count)
	})

	t.Run("unsorted samples", func(t *testing.T) {
		in := []time.Duration{40, 10, 30, 20, 50}
		s := ComputeLatencyStats(in)
		assert.Equal(t, time.Duration(10), s.Min)
		assert.Equal(t, time.Duration(50), s.Max)
		assert.Equal(t, time.Duration(30), s.Mean)
		assert.Equal(t, time.Duration(30), s.Median)
		assert.InDelta(t, 48, float64(s.P95), 1)
		assert.Equal(t, []time.Duration{40, 10, 30, 20, 50}, in, "input must not be reordered")
	})
}
