// Sliders, checkboxes and action buttons for the adjustment parameters
package gui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-enhancement-tool/internal/core"
)

// sliderDef describes one slider control.
type sliderDef struct {
	kind    core.EventKind
	label   string
	min     float64
	max     float64
	neutral float64
}

var sliderDefs = []sliderDef{
	{core.EventBrightness, "Brightness", core.OffsetSliderMin, core.OffsetSliderMax, core.OffsetNeutral},
	{core.EventContrast, "Contrast", core.OffsetSliderMin, core.OffsetSliderMax, core.OffsetNeutral},
	{core.EventGaussian, "Gaussian Blur", core.RadiusMin, core.RadiusMax, 0},
	{core.EventMedian, "Median Blur", core.RadiusMin, core.RadiusMax, 0},
	{core.EventBilateral, "Bilateral Filter (d)", core.RadiusMin, core.RadiusMax, 0},
	{core.EventBalanceB, "Blue Balance", core.OffsetSliderMin, core.OffsetSliderMax, core.OffsetNeutral},
	{core.EventBalanceG, "Green Balance", core.OffsetSliderMin, core.OffsetSliderMax, core.OffsetNeutral},
	{core.EventBalanceR, "Red Balance", core.OffsetSliderMin, core.OffsetSliderMax, core.OffsetNeutral},
}

type checkDef struct {
	kind  core.EventKind
	label string
}

var checkDefs = []checkDef{
	{core.EventSharpen, "Sharpen"},
	{core.EventEqualize, "Histogram Equalization"},
	{core.EventEdges, "Edge Detection"},
	{core.EventSideBySide, "Side-by-Side Comparison"},
}

// ControlPanel turns widget changes into controller events.
type ControlPanel struct {
	controller *Controller
	logger     *logrus.Logger

	container *fyne.Container

	sliders     map[core.EventKind]*widget.Slider
	valueLabels map[core.EventKind]*widget.Label
	checks      map[core.EventKind]*widget.Check

	saveButton  *widget.Button
	resetButton *widget.Button
	exitButton  *widget.Button

	// resetting suppresses widget callbacks while Reset rewinds the widgets.
	resetting bool

	onError func(error)
	onSave  func()
	onExit  func()
}

func NewControlPanel(controller *Controller, logger *logrus.Logger) *ControlPanel {
	panel := &ControlPanel{
		controller:  controller,
		logger:      logger,
		sliders:     make(map[core.EventKind]*widget.Slider),
		valueLabels: make(map[core.EventKind]*widget.Label),
		checks:      make(map[core.EventKind]*widget.Check),
	}

	panel.initializeUI()
	return panel
}

func (cp *ControlPanel) initializeUI() {
	sliderBox := container.NewVBox()
	for _, def := range sliderDefs {
		sliderBox.Add(cp.createSlider(def))
	}

	checkBox := container.NewVBox()
	for _, def := range checkDefs {
		checkBox.Add(cp.createCheck(def))
	}

	cp.saveButton = widget.NewButton("Save Image", func() {
		if cp.onSave != nil {
			cp.onSave()
		}
	})
	cp.resetButton = widget.NewButton("Reset", cp.Reset)
	cp.exitButton = widget.NewButton("Exit", func() {
		if cp.onExit != nil {
			cp.onExit()
		}
	})

	buttons := container.NewGridWithColumns(3, cp.saveButton, cp.resetButton, cp.exitButton)

	cp.container = container.NewVBox(
		widget.NewCard("Adjustments", "", sliderBox),
		widget.NewCard("Filters", "", checkBox),
		buttons,
	)
}

func (cp *ControlPanel) createSlider(def sliderDef) fyne.CanvasObject {
	slider := widget.NewSlider(def.min, def.max)
	slider.Step = 1
	slider.SetValue(def.neutral)

	valueLabel := widget.NewLabel(fmt.Sprintf("%.0f", def.neutral))

	kind := def.kind
	slider.OnChanged = func(value float64) {
		valueLabel.SetText(fmt.Sprintf("%.0f", value))
		if cp.resetting {
			return
		}
		cp.dispatch(core.SliderEvent(kind, int(math.Round(value))))
	}

	cp.sliders[kind] = slider
	cp.valueLabels[kind] = valueLabel

	return container.NewBorder(nil, nil, nil, valueLabel,
		container.NewVBox(widget.NewLabel(def.label), slider))
}

func (cp *ControlPanel) createCheck(def checkDef) fyne.CanvasObject {
	kind := def.kind
	check := widget.NewCheck(def.label, func(checked bool) {
		if cp.resetting {
			return
		}
		cp.dispatch(core.ToggleEvent(kind, checked))
	})

	cp.checks[kind] = check
	return check
}

func (cp *ControlPanel) dispatch(ev core.Event) {
	if err := cp.controller.Dispatch(ev); err != nil {
		cp.reportError(err)
	}
}

// Reset rewinds every widget to neutral and recomputes once.
func (cp *ControlPanel) Reset() {
	cp.show(core.Neutral())

	cp.logger.Info("Settings reset to defaults")

	if err := cp.controller.Reset(); err != nil {
		cp.reportError(err)
	}
}

// show moves every widget to the state of p without dispatching events.
func (cp *ControlPanel) show(p core.Params) {
	cp.resetting = true
	defer func() { cp.resetting = false }()

	for _, def := range sliderDefs {
		cp.sliders[def.kind].SetValue(float64(p.Position(def.kind)))
	}
	for _, def := range checkDefs {
		cp.checks[def.kind].SetChecked(p.Checked(def.kind))
	}
}

func (cp *ControlPanel) reportError(err error) {
	cp.logger.WithError(err).Error("Update failed")
	if cp.onError != nil {
		cp.onError(err)
	}
}

// SetCallbacks wires the buttons that act outside the parameter set.
func (cp *ControlPanel) SetCallbacks(onSave, onExit func(), onError func(error)) {
	cp.onSave = onSave
	cp.onExit = onExit
	cp.onError = onError
}

func (cp *ControlPanel) GetContainer() fyne.CanvasObject {
	return cp.container
}
