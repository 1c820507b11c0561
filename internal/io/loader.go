// Image loading and saving
package io

import (
	"fmt"
	"image"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

var supportedFormats = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}

// ImageLoader handles image file operations
type ImageLoader struct {
	logger    *logrus.Logger
	maxHeight int
}

// NewImageLoader returns a loader that downscales images taller than
// maxHeight. A maxHeight of zero or less disables downscaling.
func NewImageLoader(logger *logrus.Logger, maxHeight int) *ImageLoader {
	return &ImageLoader{
		logger:    logger,
		maxHeight: maxHeight,
	}
}

// LoadImage reads path as a 3-channel BGR image, shrinking it to the
// loader's maximum height if needed. The caller closes the result.
func (il *ImageLoader) LoadImage(path string) (gocv.Mat, error) {
	il.logger.WithField("filepath", path).Debug("Loading image")

	if !isSupportedImageFormat(path) {
		return gocv.NewMat(), fmt.Errorf("unsupported image format: %s", path)
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), fmt.Errorf("failed to load image: %s", path)
	}

	originalHeight := mat.Rows()
	fitted, err := FitHeight(mat, il.maxHeight)
	mat.Close()
	if err != nil {
		return gocv.NewMat(), err
	}

	il.logger.WithFields(logrus.Fields{
		"filepath":        path,
		"width":           fitted.Cols(),
		"height":          fitted.Rows(),
		"original_height": originalHeight,
		"channels":        fitted.Channels(),
	}).Info("Image loaded successfully")

	return fitted, nil
}

// FitHeight returns src scaled by maxHeight/height on both axes when it is
// taller than maxHeight, using area interpolation. Otherwise src is cloned.
func FitHeight(src gocv.Mat, maxHeight int) (gocv.Mat, error) {
	if maxHeight <= 0 || src.Rows() <= maxHeight {
		return src.Clone(), nil
	}

	scale := float64(maxHeight) / float64(src.Rows())
	output := gocv.NewMat()
	if err := gocv.Resize(src, &output, image.Pt(0, 0), scale, scale, gocv.InterpolationArea); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("downscale to height %d: %w", maxHeight, err)
	}
	return output, nil
}

// SaveImage writes mat to path, replacing any existing file. The encoder is
// picked from the file extension.
func (il *ImageLoader) SaveImage(mat gocv.Mat, path string) error {
	il.logger.WithField("filepath", path).Debug("Saving image")

	if mat.Empty() {
		return fmt.Errorf("cannot save empty image")
	}

	if !isSupportedImageFormat(path) {
		return fmt.Errorf("unsupported image format: %s", path)
	}

	if !gocv.IMWrite(path, mat) {
		return fmt.Errorf("failed to save image: %s", path)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Image saved successfully")

	return nil
}

func isSupportedImageFormat(path string) bool {
	return slices.Contains(supportedFormats, strings.ToLower(filepath.Ext(path)))
}
