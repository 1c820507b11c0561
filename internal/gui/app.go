// Main application: control window, image window and their wiring
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"image-enhancement-tool/internal/config"
	"image-enhancement-tool/internal/core"
	"image-enhancement-tool/internal/histogram"
	"image-enhancement-tool/internal/io"
)

// Application owns both windows and the objects behind them.
type Application struct {
	app    fyne.App
	cfg    config.Config
	logger *logrus.Logger

	controlWindow fyne.Window
	imageWindow   fyne.Window

	// Core components
	imageData  *core.ImageData
	pipeline   *core.Pipeline
	loader     *io.ImageLoader
	controller *Controller

	// GUI components
	controls       *ControlPanel
	imageView      *ImageView
	histogramPanel *HistogramPanel
	menuHandler    *MenuHandler

	closed bool
}

// NewApplication builds the UI around an already loaded image. It takes
// ownership of imageData and closes it on exit.
func NewApplication(app fyne.App, cfg config.Config, logger *logrus.Logger, imageData *core.ImageData, loader *io.ImageLoader) *Application {
	a := &Application{
		app:       app,
		cfg:       cfg,
		logger:    logger,
		imageData: imageData,
		loader:    loader,
	}

	a.controlWindow = app.NewWindow(config.AppName)
	a.controlWindow.Resize(fyne.NewSize(cfg.ControlWindowWidth, cfg.ControlWindowHeight))

	a.imageWindow = app.NewWindow("Image Enhancement")

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	return a
}

func (a *Application) initializeCore() {
	a.pipeline = core.NewPipeline(core.Constants{
		BilateralSigmaColor: a.cfg.BilateralSigmaColor,
		BilateralSigmaSpace: a.cfg.BilateralSigmaSpace,
		CannyLow:            a.cfg.CannyLow,
		CannyHigh:           a.cfg.CannyHigh,
	}, a.logger)

	histOpts := histogram.DefaultRenderOptions()
	histOpts.Width = vg.Length(a.cfg.HistogramWidth)
	histOpts.Height = vg.Length(a.cfg.HistogramHeight)

	a.controller = NewController(a.imageData, a.pipeline, a.loader, a.logger, ControllerOptions{
		OutputPath: a.cfg.OutputPath,
		Histogram:  histOpts,
	})
}

func (a *Application) initializeGUI() {
	a.imageView = NewImageView()
	a.histogramPanel = NewHistogramPanel(a.cfg.HistogramWidth, a.cfg.HistogramHeight)
	a.controls = NewControlPanel(a.controller, a.logger)
	a.menuHandler = NewMenuHandler(a.controlWindow, a.logger)

	a.controller.SetViews(a.imageView, a.histogramPanel)
}

func (a *Application) setupLayout() {
	split := container.NewHSplit(
		container.NewVScroll(a.controls.GetContainer()),
		a.histogramPanel.GetContainer(),
	)
	split.SetOffset(0.45)

	a.controlWindow.SetMainMenu(a.menuHandler.GetMainMenu())
	a.controlWindow.SetContent(split)

	a.imageWindow.SetContent(a.imageView.GetContainer())
}

func (a *Application) setupCallbacks() {
	a.controls.SetCallbacks(a.save, a.Close, func(err error) {
		a.showError("Processing Error", err)
	})
	a.menuHandler.SetCallbacks(a.save, a.controls.Reset, a.Close)

	a.controlWindow.SetCloseIntercept(a.Close)
	a.imageWindow.SetCloseIntercept(a.Close)
}

func (a *Application) save() {
	if err := a.controller.Save(); err != nil {
		a.showError("Save Failed", err)
	}
}

// ShowAndRun draws the first frame and runs the event loop until exit.
func (a *Application) ShowAndRun() {
	meta := a.imageData.GetMetadata()
	a.logger.WithFields(logrus.Fields{
		"width":  meta.Width,
		"height": meta.Height,
		"stages": a.pipeline.StageNames(),
	}).Info("Showing main application window")

	if err := a.controller.Refresh(); err != nil {
		a.showError("Processing Error", err)
	}

	a.imageWindow.Show()
	a.controlWindow.ShowAndRun()
}

// Close tears down both windows and stops the event loop.
func (a *Application) Close() {
	if a.closed {
		return
	}
	a.closed = true

	a.logger.Info("Cleaning up application resources")

	a.imageWindow.Close()
	a.controlWindow.Close()
	a.app.Quit()

	if err := a.imageData.Close(); err != nil {
		a.logger.WithError(err).Warn("Failed to release image")
	}
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.controlWindow)
}
