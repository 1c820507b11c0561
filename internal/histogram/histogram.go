// Grayscale intensity histogram: counting and plot rendering
package histogram

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"image-enhancement-tool/internal/algorithms"
)

// Bins is the number of intensity levels counted.
const Bins = 256

// Histogram holds the pixel count of each gray level.
type Histogram [Bins]float64

// Max returns the largest bin count.
func (h Histogram) Max() float64 {
	m := 0.0
	for _, v := range h {
		if v > m {
			m = v
		}
	}
	return m
}

// Total returns the number of pixels counted.
func (h Histogram) Total() float64 {
	sum := 0.0
	for _, v := range h {
		sum += v
	}
	return sum
}

// Compute converts img to grayscale and counts every level in [0, 256).
func Compute(img gocv.Mat) (Histogram, error) {
	var h Histogram

	gray, err := algorithms.ToGray(img)
	if err != nil {
		return h, fmt.Errorf("histogram input: %w", err)
	}
	defer gray.Close()

	counts := gocv.NewMat()
	defer counts.Close()
	mask := gocv.NewMat()
	defer mask.Close()

	if err := gocv.CalcHist([]gocv.Mat{gray}, []int{0}, mask, &counts, []int{Bins}, []float64{0, Bins}, false); err != nil {
		return h, fmt.Errorf("calc hist: %w", err)
	}

	for i := 0; i < Bins; i++ {
		h[i] = float64(counts.GetFloatAt(i, 0))
	}
	return h, nil
}

// RenderOptions controls the look of the rendered plot.
type RenderOptions struct {
	Width  vg.Length
	Height vg.Length

	Title  string
	XLabel string
	YLabel string

	Fill color.Color
}

// DefaultRenderOptions returns a 400x300 gray filled plot.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:  400,
		Height: 300,
		Title:  "Grayscale Histogram",
		XLabel: "Pixel Intensity",
		YLabel: "Frequency",
		Fill:   color.NRGBA{R: 128, G: 128, B: 128, A: 191},
	}
}

// Render draws h as a filled area plot with a fixed [0, 256] x axis and a
// y axis running to 110% of the tallest bin. Each call draws a fresh plot.
func Render(h Histogram, opts RenderOptions) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid plot size %vx%v", opts.Width, opts.Height)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Horizontal.Color = color.Gray{Y: 200}
	p.Add(grid)

	xys := make(plotter.XYs, Bins)
	for i, v := range h {
		xys[i].X = float64(i)
		xys[i].Y = v
	}

	area, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("histogram line: %w", err)
	}
	area.FillColor = opts.Fill
	area.LineStyle.Color = opts.Fill
	area.LineStyle.Width = vg.Points(1)
	p.Add(area)

	// Axis limits go after Add, which widens them to the data range.
	p.X.Min, p.X.Max = 0, Bins
	p.Y.Min, p.Y.Max = 0, yLimit(h)

	c := vgimg.New(opts.Width, opts.Height)
	p.Draw(draw.New(c))
	return c.Image(), nil
}

func yLimit(h Histogram) float64 {
	m := h.Max()
	if m == 0 {
		return 1
	}
	return m * 1.1
}
