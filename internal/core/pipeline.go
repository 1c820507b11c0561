// Fixed-order adjustment pipeline
package core

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"image-enhancement-tool/internal/algorithms"
)

// Constants are the filter settings that have no UI control.
type Constants struct {
	BilateralSigmaColor float64
	BilateralSigmaSpace float64
	CannyLow            float32
	CannyHigh           float32
}

// DefaultConstants returns sigma 75/75 for the bilateral filter and 100/200 Canny thresholds.
func DefaultConstants() Constants {
	return Constants{
		BilateralSigmaColor: 75,
		BilateralSigmaSpace: 75,
		CannyLow:            100,
		CannyHigh:           200,
	}
}

// stage is one step of the pipeline. A stage whose enabled func returns
// false is skipped and the image passes through unchanged.
type stage struct {
	name    string
	enabled func(Params) bool
	apply   func(gocv.Mat, Params) (gocv.Mat, error)
}

// Pipeline maps (original, Params) to an adjusted image. The stage order is
// fixed at construction and never changes.
type Pipeline struct {
	constants Constants
	logger    *logrus.Logger
	stages    []stage
}

func NewPipeline(constants Constants, logger *logrus.Logger) *Pipeline {
	pl := &Pipeline{
		constants: constants,
		logger:    logger,
	}
	pl.stages = []stage{
		{
			name:    "brightness_contrast",
			enabled: func(p Params) bool { return p.Brightness != 0 || p.Contrast != 0 },
			apply: func(m gocv.Mat, p Params) (gocv.Mat, error) {
				return algorithms.LinearTransform(m, p.Alpha(), float64(p.Brightness))
			},
		},
		{
			name:    "gaussian_blur",
			enabled: func(p Params) bool { return p.GaussianRadius > 0 },
			apply: func(m gocv.Mat, p Params) (gocv.Mat, error) {
				return algorithms.GaussianBlur(m, p.GaussianRadius)
			},
		},
		{
			name:    "median_blur",
			enabled: func(p Params) bool { return p.MedianRadius > 0 },
			apply: func(m gocv.Mat, p Params) (gocv.Mat, error) {
				return algorithms.MedianBlur(m, p.MedianRadius)
			},
		},
		{
			name:    "bilateral_filter",
			enabled: func(p Params) bool { return p.BilateralDiameter > 0 },
			apply: func(m gocv.Mat, p Params) (gocv.Mat, error) {
				return algorithms.BilateralFilter(m, p.BilateralDiameter,
					pl.constants.BilateralSigmaColor, pl.constants.BilateralSigmaSpace)
			},
		},
		{
			name:    "sharpen",
			enabled: func(p Params) bool { return p.Sharpen },
			apply: func(m gocv.Mat, _ Params) (gocv.Mat, error) {
				return algorithms.Sharpen(m)
			},
		},
		{
			name:    "histogram_equalization",
			enabled: func(p Params) bool { return p.Equalize },
			apply: func(m gocv.Mat, _ Params) (gocv.Mat, error) {
				return algorithms.EqualizeLuma(m)
			},
		},
		{
			name:    "edge_detection",
			enabled: func(p Params) bool { return p.Edges },
			apply: func(m gocv.Mat, _ Params) (gocv.Mat, error) {
				return algorithms.DetectEdges(m, pl.constants.CannyLow, pl.constants.CannyHigh)
			},
		},
		{
			name:    "color_balance",
			enabled: func(p Params) bool { return p.Balance() != [3]int{} },
			apply: func(m gocv.Mat, p Params) (gocv.Mat, error) {
				return algorithms.BalanceChannels(m, p.Balance())
			},
		},
	}
	return pl
}

// StageNames lists every stage in execution order.
func (pl *Pipeline) StageNames() []string {
	names := make([]string, len(pl.stages))
	for i, s := range pl.stages {
		names[i] = s.name
	}
	return names
}

// ActiveStages lists the stages p would run, in execution order.
func (pl *Pipeline) ActiveStages(p Params) []string {
	p = p.Clamped()
	var names []string
	for _, s := range pl.stages {
		if s.enabled(p) {
			names = append(names, s.name)
		}
	}
	return names
}

// Adjust runs every enabled stage over original and returns a new image.
// original is read, never written. The caller closes the result.
func (pl *Pipeline) Adjust(original gocv.Mat, p Params) (gocv.Mat, error) {
	if err := ValidateImage(original); err != nil {
		return gocv.NewMat(), fmt.Errorf("pipeline input: %w", err)
	}

	start := time.Now()
	p = p.Clamped()

	current := original
	owned := false
	var ran []string

	for _, s := range pl.stages {
		if !s.enabled(p) {
			continue
		}

		next, err := s.apply(current, p)
		if owned {
			current.Close()
		}
		if err != nil {
			next.Close()
			return gocv.NewMat(), fmt.Errorf("stage %s: %w", s.name, err)
		}

		current = next
		owned = true
		ran = append(ran, s.name)
	}

	if !owned {
		current = original.Clone()
	}

	pl.logger.WithFields(logrus.Fields{
		"stages":   ran,
		"duration": time.Since(start),
		"width":    current.Cols(),
		"height":   current.Rows(),
	}).Debug("Pipeline run complete")

	return current, nil
}

// Run adjusts the original held by img.
func (pl *Pipeline) Run(img *ImageData, p Params) (gocv.Mat, error) {
	return pl.Adjust(img.original, p)
}
