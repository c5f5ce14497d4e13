package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		vals   []float64
		want   float64
		wantOK bool
	}{
		{
			name:   "empty input",
			vals:   nil,
			want:   0,
			wantOK: false,
		},
		{
			name:   "single value",
			vals:   []float64{4.2},
			want:   4.2,
			wantOK: true,
		},
		{
			name:   "odd count",
			vals:   []float64{3, 1, 2},
			want:   2,
			wantOK: true,
		},
		{
			name:   "even count averages the two middles",
			vals:   []float64{4, 1, 3, 2},
			want:   2.5,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := median(tt.vals)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	_, ok := median(vals)
	assert.True(t, ok)
	assert.Equal(t, []float64{3, 1, 2}, vals)
}

func TestMean(t *testing.T) {
	got, ok := mean([]float64{1, 2, 6})
	assert.True(t, ok)
	assert.InDelta(t, 3.0, got, 1e-9)

	_, ok = mean(nil)
	assert.False(t, ok)
}

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		vals   []string
		want   string
		wantOK bool
	}{
		{
			name:   "empty input",
			vals:   nil,
			wantOK: false,
		},
		{
			name:   "clear winner",
			vals:   []string{"High", "Low", "High"},
			want:   "High",
			wantOK: true,
		},
		{
			name:   "tie breaks to the smallest value",
			vals:   []string{"Medium", "High", "Medium", "High"},
			want:   "High",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mode(tt.vals)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinearSlope(t *testing.T) {
	tests := []struct {
		name   string
		ys     []float64
		want   float64
		wantOK bool
	}{
		{
			name:   "fewer than two points",
			ys:     []float64{5},
			wantOK: false,
		},
		{
			name:   "two points",
			ys:     []float64{5, 7},
			want:   2,
			wantOK: true,
		},
		{
			name:   "perfect positive trend",
			ys:     []float64{1, 2, 3, 4},
			want:   1,
			wantOK: true,
		},
		{
			name:   "flat series has zero slope",
			ys:     []float64{3, 3, 3},
			want:   0,
			wantOK: true,
		},
		{
			name:   "declining trend",
			ys:     []float64{10, 8, 6},
			want:   -2,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := linearSlope(tt.ys)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 23.3, round1(23.30246913580247))
	assert.Equal(t, 2.5, round1(2.45))
	assert.Equal(t, -1.2, round1(-1.24))
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.0, clipFloat(-3, 0, 10))
	assert.Equal(t, 10.0, clipFloat(12, 0, 10))
	assert.Equal(t, 7.5, clipFloat(7.5, 0, 10))

	assert.Equal(t, int64(0), clipInt(-5, 0, 100))
	assert.Equal(t, int64(100), clipInt(130, 0, 100))
	assert.Equal(t, int64(42), clipInt(42, 0, 100))
}
