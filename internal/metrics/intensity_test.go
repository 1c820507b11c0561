package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"image-enhancement-tool/internal/histogram"
)

func TestFromHistogram(t *testing.T) {
	var h histogram.Histogram
	h[10] = 1
	h[20] = 2
	h[30] = 1

	in := FromHistogram(h)

	assert.Equal(t, 4.0, in.Pixels)
	assert.InDelta(t, 20.0, in.Mean, 1e-9)
	// population variance: (100 + 0 + 0 + 100) / 4
	assert.InDelta(t, 7.0710678, in.StdDev, 1e-6)
	assert.Equal(t, 10, in.Min)
	assert.Equal(t, 30, in.Max)
	assert.Equal(t, 20, in.Median)
}

func TestFromHistogramSingleLevel(t *testing.T) {
	var h histogram.Histogram
	h[255] = 64

	in := FromHistogram(h)

	assert.Equal(t, 255.0, in.Mean)
	assert.Equal(t, 0.0, in.StdDev)
	assert.Equal(t, 255, in.Min)
	assert.Equal(t, 255, in.Max)
	assert.Equal(t, 255, in.Median)
}

func TestFromHistogramEmpty(t *testing.T) {
	in := FromHistogram(histogram.Histogram{})

	assert.Equal(t, Intensity{}, in)
	assert.Equal(t, "no pixels", in.String())
}

func TestIntensityString(t *testing.T) {
	in := Intensity{Pixels: 4, Mean: 20, StdDev: 7.07, Min: 10, Max: 30, Median: 20}
	assert.Equal(t, "mean 20.0  σ 7.1  median 20  range 10–30", in.String())
}
