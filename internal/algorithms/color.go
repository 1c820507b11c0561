// Colour space operations: equalization, edges, channel balance
package algorithms

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ToGray returns a single-channel copy of src. Single-channel input is cloned.
func ToGray(src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	switch src.Channels() {
	case 1:
		return src.Clone(), nil
	case 3:
		return convert(src, gocv.ColorBGRToGray)
	case 4:
		return convert(src, gocv.ColorBGRAToGray)
	default:
		return gocv.NewMat(), fmt.Errorf("unsupported channel count: %d", src.Channels())
	}
}

// EqualizeLuma equalizes the Y channel of the YCrCb representation and
// converts back, leaving chroma untouched.
func EqualizeLuma(src gocv.Mat) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}

	ycrcb, err := convert(src, gocv.ColorBGRToYCrCb)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer ycrcb.Close()

	planes := gocv.Split(ycrcb)
	defer closeAll(planes)

	equalized := gocv.NewMat()
	if err := gocv.EqualizeHist(planes[0], &equalized); err != nil {
		equalized.Close()
		return gocv.NewMat(), fmt.Errorf("equalize luma: %w", err)
	}
	planes[0].Close()
	planes[0] = equalized

	merged := gocv.NewMat()
	defer merged.Close()
	if err := gocv.Merge(planes, &merged); err != nil {
		return gocv.NewMat(), fmt.Errorf("merge ycrcb planes: %w", err)
	}

	return convert(merged, gocv.ColorYCrCbToBGR)
}

// DetectEdges runs Canny on the grayscale image and expands the edge map
// back to three identical BGR planes.
func DetectEdges(src gocv.Mat, low, high float32) (gocv.Mat, error) {
	gray, err := ToGray(src)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer gray.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	if err := gocv.Canny(gray, &edges, low, high); err != nil {
		return gocv.NewMat(), fmt.Errorf("canny: %w", err)
	}

	return convert(edges, gocv.ColorGrayToBGR)
}

// BalanceChannels adds a saturating offset to each of the B, G and R planes.
func BalanceChannels(src gocv.Mat, offsets [3]int) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("input image is empty")
	}
	if src.Channels() != 3 {
		return gocv.NewMat(), fmt.Errorf("channel balance needs 3 channels, got %d", src.Channels())
	}

	planes := gocv.Split(src)
	defer closeAll(planes)

	for i, offset := range offsets {
		if offset == 0 {
			continue
		}
		shifted := gocv.NewMat()
		if err := planes[i].ConvertToWithParams(&shifted, gocv.MatTypeCV8U, 1, float32(offset)); err != nil {
			shifted.Close()
			return gocv.NewMat(), fmt.Errorf("balance channel %d: %w", i, err)
		}
		planes[i].Close()
		planes[i] = shifted
	}

	output := gocv.NewMat()
	if err := gocv.Merge(planes, &output); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("merge balanced planes: %w", err)
	}

	return output, nil
}

func convert(src gocv.Mat, code gocv.ColorConversionCode) (gocv.Mat, error) {
	output := gocv.NewMat()
	if err := gocv.CvtColor(src, &output, code); err != nil {
		output.Close()
		return gocv.NewMat(), fmt.Errorf("color conversion %d: %w", code, err)
	}
	return output, nil
}

func closeAll(mats []gocv.Mat) {
	for i := range mats {
		mats[i].Close()
	}
}
