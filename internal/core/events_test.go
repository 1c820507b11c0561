package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateSliders(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  Params
	}{
		{"brightness up", SliderEvent(EventBrightness, 150), Params{Brightness: 50}},
		{"brightness down", SliderEvent(EventBrightness, 0), Params{Brightness: -100}},
		{"contrast", SliderEvent(EventContrast, 130), Params{Contrast: 30}},
		{"gaussian", SliderEvent(EventGaussian, 4), Params{GaussianRadius: 4}},
		{"gaussian clamped", SliderEvent(EventGaussian, -1), Params{}},
		{"median", SliderEvent(EventMedian, 10), Params{MedianRadius: 10}},
		{"bilateral", SliderEvent(EventBilateral, 25), Params{BilateralDiameter: 10}},
		{"blue", SliderEvent(EventBalanceB, 80), Params{BalanceB: -20}},
		{"green", SliderEvent(EventBalanceG, 120), Params{BalanceG: 20}},
		{"red", SliderEvent(EventBalanceR, 200), Params{BalanceR: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Update(Neutral(), tt.event))
		})
	}
}

func TestUpdateToggles(t *testing.T) {
	p := Update(Neutral(), ToggleEvent(EventSharpen, true))
	p = Update(p, ToggleEvent(EventEqualize, true))
	p = Update(p, ToggleEvent(EventEdges, true))
	p = Update(p, ToggleEvent(EventSideBySide, true))

	assert.Equal(t, Params{Sharpen: true, Equalize: true, Edges: true, SideBySide: true}, p)

	p = Update(p, ToggleEvent(EventEqualize, false))
	assert.False(t, p.Equalize)
	assert.True(t, p.Sharpen)
}

func TestUpdateTouchesOnlyOwnField(t *testing.T) {
	start := Params{Brightness: 10, Contrast: -5, MedianRadius: 2, Edges: true, BalanceR: 3}

	got := Update(start, SliderEvent(EventGaussian, 3))

	want := start
	want.GaussianRadius = 3
	assert.Equal(t, want, got)
}

func TestUpdateReset(t *testing.T) {
	start := Params{Brightness: 10, GaussianRadius: 2, Sharpen: true, BalanceG: -40, SideBySide: true}

	assert.Equal(t, Neutral(), Update(start, ResetEvent()))
}

func TestPositionMirrorsUpdate(t *testing.T) {
	p := Params{
		Brightness: -30, Contrast: 45, GaussianRadius: 3, MedianRadius: 1,
		BilateralDiameter: 9, BalanceB: 100, BalanceG: -100, BalanceR: 7,
		Equalize: true, SideBySide: true,
	}

	rebuilt := Neutral()
	for kind := EventBrightness; kind < EventReset; kind++ {
		if kind.IsToggle() {
			rebuilt = Update(rebuilt, ToggleEvent(kind, p.Checked(kind)))
			continue
		}
		rebuilt = Update(rebuilt, SliderEvent(kind, p.Position(kind)))
	}
	assert.Equal(t, p, rebuilt)

	assert.Equal(t, 70, p.Position(EventBrightness))
	assert.Equal(t, 3, p.Position(EventGaussian))
	assert.Equal(t, 0, p.Position(EventSharpen))
	assert.False(t, p.Checked(EventContrast))
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "brightness", EventBrightness.String())
	assert.Equal(t, "reset", EventReset.String())
	assert.Equal(t, "event(99)", EventKind(99).String())

	assert.True(t, EventEdges.IsToggle())
	assert.False(t, EventMedian.IsToggle())
}
