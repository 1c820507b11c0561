// UI controller: parameter ownership, recompute and redisplay
package gui

import (
	"fmt"
	"image"
	stdio "io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"image-enhancement-tool/internal/core"
	"image-enhancement-tool/internal/histogram"
	"image-enhancement-tool/internal/io"
	"image-enhancement-tool/internal/metrics"
)

// FrameView displays the current frame.
type FrameView interface {
	ShowFrame(frame image.Image)
}

// HistogramView displays a rendered histogram plot and its statistics.
type HistogramView interface {
	ShowHistogram(plot image.Image, stats metrics.Intensity)
}

// ControllerOptions are the fixed settings a Controller needs.
type ControllerOptions struct {
	OutputPath string
	Histogram  histogram.RenderOptions

	// Out receives the save confirmation line. Defaults to os.Stdout.
	Out stdio.Writer
}

// Controller owns the parameter set. Every event runs to completion on the
// caller's goroutine: update params, rerun the pipeline, push the frame and
// histogram to the views.
type Controller struct {
	image    *core.ImageData
	pipeline *core.Pipeline
	loader   *io.ImageLoader
	logger   *logrus.Logger
	opts     ControllerOptions

	frameView     FrameView
	histogramView HistogramView

	params core.Params
}

func NewController(img *core.ImageData, pipeline *core.Pipeline, loader *io.ImageLoader, logger *logrus.Logger, opts ControllerOptions) *Controller {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Histogram.Width <= 0 || opts.Histogram.Height <= 0 {
		opts.Histogram = histogram.DefaultRenderOptions()
	}
	return &Controller{
		image:    img,
		pipeline: pipeline,
		loader:   loader,
		logger:   logger,
		opts:     opts,
		params:   core.Neutral(),
	}
}

// SetViews attaches the displays refreshed on every recompute.
func (c *Controller) SetViews(frame FrameView, hist HistogramView) {
	c.frameView = frame
	c.histogramView = hist
}

// Params returns the current parameter set.
func (c *Controller) Params() core.Params {
	return c.params
}

// Dispatch applies ev and redraws.
func (c *Controller) Dispatch(ev core.Event) error {
	c.params = core.Update(c.params, ev)

	fields := logrus.Fields{"event": ev.Kind.String()}
	if ev.Kind.IsToggle() {
		fields["on"] = ev.On
	} else if ev.Kind != core.EventReset {
		fields["value"] = ev.Value
	}
	c.logger.WithFields(fields).Debug("Parameter updated")

	return c.Refresh()
}

// Reset returns every parameter to neutral with a single recompute.
func (c *Controller) Reset() error {
	return c.Dispatch(core.ResetEvent())
}

// Refresh recomputes the adjusted image and updates both views.
func (c *Controller) Refresh() error {
	start := time.Now()

	adjusted, err := c.pipeline.Run(c.image, c.params)
	if err != nil {
		return fmt.Errorf("adjust image: %w", err)
	}
	defer adjusted.Close()

	display := adjusted
	histSource := adjusted
	if c.params.SideBySide {
		original := c.image.GetOriginal()
		defer original.Close()

		frame, right, err := core.SideBySide(original, adjusted)
		if err != nil {
			return err
		}
		defer frame.Close()
		defer right.Close()

		display = frame
		histSource = right
	}

	if err := c.showFrame(display); err != nil {
		return err
	}
	if err := c.showHistogram(histSource); err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"stages":       c.pipeline.ActiveStages(c.params),
		"side_by_side": c.params.SideBySide,
		"neutral":      c.params.IsNeutral(),
		"duration":     time.Since(start),
	}).Debug("Display refreshed")

	return nil
}

func (c *Controller) showFrame(frame gocv.Mat) error {
	if c.frameView == nil {
		return nil
	}
	img, err := frame.ToImage()
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	c.frameView.ShowFrame(img)
	return nil
}

func (c *Controller) showHistogram(src gocv.Mat) error {
	if c.histogramView == nil {
		return nil
	}
	h, err := histogram.Compute(src)
	if err != nil {
		return err
	}
	plot, err := histogram.Render(h, c.opts.Histogram)
	if err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}
	c.histogramView.ShowHistogram(plot, metrics.FromHistogram(h))
	return nil
}

// Save recomputes the adjusted image from the current parameters and
// writes it to the output path, replacing any existing file.
func (c *Controller) Save() error {
	adjusted, err := c.pipeline.Run(c.image, c.params)
	if err != nil {
		return fmt.Errorf("adjust image: %w", err)
	}
	defer adjusted.Close()

	if err := c.loader.SaveImage(adjusted, c.opts.OutputPath); err != nil {
		return err
	}

	fmt.Fprintf(c.opts.Out, "Image saved as '%s'.\n", c.opts.OutputPath)
	return nil
}
