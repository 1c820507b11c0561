// Image Enhancement Tool
// Interactive brightness, contrast, filtering and colour balance for a single image.

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"image-enhancement-tool/internal/config"
	"image-enhancement-tool/internal/core"
	"image-enhancement-tool/internal/gui"
	"image-enhancement-tool/internal/io"
	"image-enhancement-tool/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	logger.WithFields(logrus.Fields{
		"input":      cfg.InputPath,
		"output":     cfg.OutputPath,
		"max_height": cfg.MaxHeight,
	}).Info("Starting Image Enhancement Tool")

	loader := io.NewImageLoader(logger, cfg.MaxHeight)
	imageData, err := loadOriginal(loader, cfg.InputPath)
	if err != nil {
		fmt.Println("Error: Image not found or unable to load.")
		logger.WithError(err).Fatal("Startup failed")
	}

	myApp := app.NewWithID(config.AppID)
	myApp.SetIcon(theme.ColorPaletteIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	mainApp := gui.NewApplication(myApp, cfg, logger, imageData, loader)
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
	os.Exit(0)
}

func loadOriginal(loader *io.ImageLoader, path string) (*core.ImageData, error) {
	mat, err := loader.LoadImage(path)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return core.NewImageData(mat, path)
}
