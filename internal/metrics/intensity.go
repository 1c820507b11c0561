// Intensity statistics derived from a grayscale histogram
package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"image-enhancement-tool/internal/histogram"
)

// Intensity summarises the gray-level distribution of an image.
type Intensity struct {
	Pixels float64
	Mean   float64
	StdDev float64
	Min    int
	Max    int
	Median int
}

var levels = func() []float64 {
	l := make([]float64, histogram.Bins)
	for i := range l {
		l[i] = float64(i)
	}
	return l
}()

// FromHistogram computes population statistics over the histogram bins,
// each gray level weighted by its pixel count.
func FromHistogram(h histogram.Histogram) Intensity {
	weights := h[:]
	total := h.Total()
	if total == 0 {
		return Intensity{}
	}

	mean, variance := stat.PopMeanVariance(levels, weights)

	cumulative := make([]float64, len(weights))
	floats.CumSum(cumulative, weights)

	out := Intensity{
		Pixels: total,
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    -1,
	}
	for i, w := range weights {
		if w == 0 {
			continue
		}
		if out.Min < 0 {
			out.Min = i
		}
		out.Max = i
	}
	for i, c := range cumulative {
		if c >= total/2 {
			out.Median = i
			break
		}
	}
	return out
}

func (in Intensity) String() string {
	if in.Pixels == 0 {
		return "no pixels"
	}
	return fmt.Sprintf("mean %.1f  σ %.1f  median %d  range %d–%d",
		in.Mean, in.StdDev, in.Median, in.Min, in.Max)
}
