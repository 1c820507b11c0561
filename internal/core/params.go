// Adjustment parameters and their slider ranges
package core

// Slider ranges. Offset sliders are centred on OffsetNeutral.
const (
	OffsetSliderMin = 0
	OffsetSliderMax = 200
	OffsetNeutral   = 100

	RadiusMin = 0
	RadiusMax = 10

	OffsetMin = OffsetSliderMin - OffsetNeutral
	OffsetMax = OffsetSliderMax - OffsetNeutral
)

// Params is the full adjustment state. The zero value is neutral: running
// the pipeline with it reproduces the original image.
type Params struct {
	Brightness int
	Contrast   int

	GaussianRadius    int
	MedianRadius      int
	BilateralDiameter int

	Sharpen  bool
	Equalize bool
	Edges    bool

	BalanceB int
	BalanceG int
	BalanceR int

	// SideBySide affects display only; the pipeline ignores it.
	SideBySide bool
}

// Neutral returns the parameter set that leaves the image unchanged.
func Neutral() Params {
	return Params{}
}

// IsNeutral reports whether every adjustment is at its neutral value.
func (p Params) IsNeutral() bool {
	q := p
	q.SideBySide = false
	return q == Params{}
}

// Clamped returns p with every numeric field forced into its slider range.
func (p Params) Clamped() Params {
	p.Brightness = clamp(p.Brightness, OffsetMin, OffsetMax)
	p.Contrast = clamp(p.Contrast, OffsetMin, OffsetMax)
	p.GaussianRadius = clamp(p.GaussianRadius, RadiusMin, RadiusMax)
	p.MedianRadius = clamp(p.MedianRadius, RadiusMin, RadiusMax)
	p.BilateralDiameter = clamp(p.BilateralDiameter, RadiusMin, RadiusMax)
	p.BalanceB = clamp(p.BalanceB, OffsetMin, OffsetMax)
	p.BalanceG = clamp(p.BalanceG, OffsetMin, OffsetMax)
	p.BalanceR = clamp(p.BalanceR, OffsetMin, OffsetMax)
	return p
}

// Alpha is the contrast gain, 1 + contrast/100.
func (p Params) Alpha() float64 {
	return 1 + float64(p.Contrast)/100.0
}

// Balance returns the B, G, R offsets in channel order.
func (p Params) Balance() [3]int {
	return [3]int{p.BalanceB, p.BalanceG, p.BalanceR}
}

// OffsetFromSlider maps a 0..200 slider position to a -100..100 offset.
func OffsetFromSlider(v int) int {
	return clamp(v, OffsetSliderMin, OffsetSliderMax) - OffsetNeutral
}

// SliderFromOffset is the inverse of OffsetFromSlider.
func SliderFromOffset(offset int) int {
	return clamp(offset, OffsetMin, OffsetMax) + OffsetNeutral
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
