// Live image window and histogram panel
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"image-enhancement-tool/internal/metrics"
)

// ImageView shows frames at their native pixel size.
type ImageView struct {
	image     *canvas.Image
	container *fyne.Container
}

func NewImageView() *ImageView {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	img.FillMode = canvas.ImageFillOriginal
	img.ScaleMode = canvas.ImageScalePixels

	return &ImageView{
		image:     img,
		container: container.NewCenter(img),
	}
}

// ShowFrame replaces the displayed image.
func (iv *ImageView) ShowFrame(frame image.Image) {
	iv.image.Image = frame
	iv.image.Refresh()
	iv.container.Refresh()
}

// Current returns the image on display.
func (iv *ImageView) Current() image.Image {
	return iv.image.Image
}

func (iv *ImageView) GetContainer() fyne.CanvasObject {
	return iv.container
}

// HistogramPanel shows the rendered histogram plot with a statistics line.
type HistogramPanel struct {
	plot       *canvas.Image
	statsLabel *widget.Label
	card       *widget.Card
}

func NewHistogramPanel(width, height float32) *HistogramPanel {
	plot := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	plot.FillMode = canvas.ImageFillContain
	plot.SetMinSize(fyne.NewSize(width, height))

	stats := widget.NewLabel("")
	stats.Alignment = fyne.TextAlignCenter

	return &HistogramPanel{
		plot:       plot,
		statsLabel: stats,
		card:       widget.NewCard("Histogram", "", container.NewBorder(nil, stats, nil, nil, plot)),
	}
}

// ShowHistogram discards the previous plot and shows the new one.
func (hp *HistogramPanel) ShowHistogram(plot image.Image, stats metrics.Intensity) {
	hp.plot.Image = plot
	hp.plot.Refresh()
	hp.statsLabel.SetText(stats.String())
}

// StatsText returns the statistics line on display.
func (hp *HistogramPanel) StatsText() string {
	return hp.statsLabel.Text
}

func (hp *HistogramPanel) GetContainer() fyne.CanvasObject {
	return hp.card
}
