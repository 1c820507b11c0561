// Display composition: side-by-side comparison
package core

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// FitTo returns src resized to width x height. Same-sized input is cloned.
func FitTo(src gocv.Mat, width, height int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("cannot resize empty image")
	}
	if src.Cols() == width && src.Rows() == height {
		return src.Clone(), nil
	}

	output := gocv.NewMat()
	if err := gocv.Resize(src, &output, image.Pt(width, height), 0, 0, gocv.InterpolationLinear); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("resize to %dx%d: %w", width, height, err)
	}
	return output, nil
}

// SideBySide places original on the left and adjusted, resized to the
// original's size, on the right. The resized adjusted image is returned too
// so callers can reuse it without resizing twice.
func SideBySide(original, adjusted gocv.Mat) (frame gocv.Mat, right gocv.Mat, err error) {
	right, err = FitTo(adjusted, original.Cols(), original.Rows())
	if err != nil {
		return gocv.NewMat(), gocv.NewMat(), err
	}

	frame = gocv.NewMat()
	if err := gocv.Hconcat(original, right, &frame); err != nil {
		frame.Close()
		right.Close()
		return gocv.NewMat(), gocv.NewMat(), fmt.Errorf("side-by-side concat: %w", err)
	}
	return frame, right, nil
}
