// Filter algorithms for noise reduction and enhancement
package algorithms

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// KernelSize returns the odd kernel size used for a blur radius.
func KernelSize(radius int) int {
	return 2*radius + 1
}

// LinearTransform computes clamp(src*alpha + beta, 0, 255) per channel.
// Unlike convertScaleAbs the result is saturated, not mirrored, so negative
// intermediate values become 0.
func LinearTransform(src gocv.Mat, alpha, beta float64) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	output := gocv.NewMat()
	if err := src.ConvertToWithParams(&output, src.Type(), float32(alpha), float32(beta)); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("linear transform: %w", err)
	}

	return output, nil
}

// GaussianBlur blurs with a (2r+1)x(2r+1) kernel; sigma is derived from the kernel size.
func GaussianBlur(src gocv.Mat, radius int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if radius < 1 {
		return gocv.NewMat(), fmt.Errorf("gaussian radius must be positive, got %d", radius)
	}

	ksize := KernelSize(radius)
	output := gocv.NewMat()
	if err := gocv.GaussianBlur(src, &output, image.Pt(ksize, ksize), 0, 0, gocv.BorderDefault); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("gaussian blur: %w", err)
	}

	return output, nil
}

// MedianBlur applies a median filter with kernel size 2r+1.
func MedianBlur(src gocv.Mat, radius int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if radius < 1 {
		return gocv.NewMat(), fmt.Errorf("median radius must be positive, got %d", radius)
	}

	output := gocv.NewMat()
	if err := gocv.MedianBlur(src, &output, KernelSize(radius)); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("median blur: %w", err)
	}

	return output, nil
}

// BilateralFilter applies edge-preserving smoothing over a neighbourhood of diameter d.
func BilateralFilter(src gocv.Mat, diameter int, sigmaColor, sigmaSpace float64) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if diameter < 1 {
		return gocv.NewMat(), fmt.Errorf("bilateral diameter must be positive, got %d", diameter)
	}

	output := gocv.NewMat()
	if err := gocv.BilateralFilter(src, &output, diameter, sigmaColor, sigmaSpace); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("bilateral filter: %w", err)
	}

	return output, nil
}

// sharpenKernel is the 4-neighbour unsharp kernel.
var sharpenKernel = [3][3]float32{
	{0, -1, 0},
	{-1, 5, -1},
	{0, -1, 0},
}

// Sharpen convolves the image with the fixed 3x3 sharpening kernel.
func Sharpen(src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer kernel.Close()
	for y, row := range sharpenKernel {
		for x, v := range row {
			kernel.SetFloatAt(y, x, v)
		}
	}

	output := gocv.NewMat()
	if err := gocv.Filter2D(src, &output, -1, kernel, image.Pt(-1, -1), 0, gocv.BorderDefault); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("sharpen: %w", err)
	}

	return output, nil
}
