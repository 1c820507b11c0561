package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("info", &buf)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.WithField("path", "s1.jpg").Info("Image loaded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Image loaded", entry["msg"])
	assert.Equal(t, "s1.jpg", entry["path"])
}

func TestNewWithOutputDebugUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("debug", &buf)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Contains(t, buf.String(), "Debug logging enabled")
}

func TestNewWithOutputFallsBackToInfo(t *testing.T) {
	logger := NewWithOutput("loud", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
