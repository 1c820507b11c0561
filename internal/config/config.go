// Application configuration with fixed defaults
package config

import (
	"os"
	"strings"
)

const (
	AppName = "Image Enhancement Tool"
	AppID   = "com.imageenhancement.imtool"
)

// Config holds every tunable the application reads at startup.
// Values are fixed; only the log level can be overridden from the environment.
type Config struct {
	InputPath  string
	OutputPath string

	// MaxHeight is the tallest image kept at native size; taller images are
	// downscaled at load time with the aspect ratio preserved.
	MaxHeight int

	BilateralSigmaColor float64
	BilateralSigmaSpace float64
	CannyLow            float32
	CannyHigh           float32

	HistogramWidth  float32
	HistogramHeight float32

	ControlWindowWidth  float32
	ControlWindowHeight float32

	LogLevel string
}

// Default returns the configuration the tool ships with.
func Default() Config {
	return Config{
		InputPath:           "s1.jpg",
		OutputPath:          "enhanced_image.jpg",
		MaxHeight:           400,
		BilateralSigmaColor: 75,
		BilateralSigmaSpace: 75,
		CannyLow:            100,
		CannyHigh:           200,
		HistogramWidth:      400,
		HistogramHeight:     300,
		ControlWindowWidth:  900,
		ControlWindowHeight: 640,
		LogLevel:            "info",
	}
}

// Load returns Default with the log level taken from LOG_LEVEL or DEBUG.
func Load() Config {
	cfg := Default()
	cfg.LogLevel = determineLogLevel(os.Getenv("LOG_LEVEL"), os.Getenv("DEBUG"))
	return cfg
}

func determineLogLevel(level, debug string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return "debug"
	case "info":
		return "info"
	case "warn", "warning":
		return "warn"
	case "error":
		return "error"
	default:
		if debug == "1" {
			return "debug"
		}
		return "info"
	}
}
