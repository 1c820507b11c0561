package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestAdjustNeutralIsIdentity(t *testing.T) {
	src := testImage(t, 20, 30)

	assert.Equal(t, src.ToBytes(), adjust(t, testPipeline(), src, Neutral()))
	assert.Equal(t, src.ToBytes(), adjust(t, testPipeline(), src, Params{SideBySide: true}))
}

func TestAdjustBrightnessOnly(t *testing.T) {
	src := testImage(t, 10, 10)
	in := src.ToBytes()
	pl := testPipeline()

	for _, b := range []int{-100, -37, 1, 50, 100} {
		got := adjust(t, pl, src, Params{Brightness: b})
		for i := range in {
			require.Equal(t, saturate(int(in[i])+b), got[i], "brightness %d, byte %d", b, i)
		}
	}
}

func TestAdjustContrastOnly(t *testing.T) {
	src := testImage(t, 10, 10)
	in := src.ToBytes()
	pl := testPipeline()

	doubled := adjust(t, pl, src, Params{Contrast: 100})
	for i := range in {
		require.Equal(t, saturate(int(in[i])*2), doubled[i])
	}

	flattened := adjust(t, pl, src, Params{Contrast: -100})
	for i := range flattened {
		require.Equal(t, byte(0), flattened[i])
	}
}

func TestAdjustBrightnessAndContrast(t *testing.T) {
	src := testImage(t, 16, 16)
	in := src.ToBytes()
	pl := testPipeline()

	tests := []struct {
		name       string
		brightness int
		contrast   int
	}{
		{"darker, more contrast", -20, 37},
		{"brighter, less contrast", 30, -45},
		{"quarter gain", 0, 25},
		{"quarter gain with offset", -7, 25},
		{"gain below one with offset", 11, -75},
		{"saturating", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjust(t, pl, src, Params{Brightness: tt.brightness, Contrast: tt.contrast})

			for i := range in {
				lo, hi := brightnessContrast(in[i], tt.brightness, tt.contrast)
				if got[i] != lo && got[i] != hi {
					t.Fatalf("byte %d: input %d, got %d, want %d", i, in[i], got[i], lo)
				}
			}
		})
	}
}

func TestAdjustScalesBeforeOffset(t *testing.T) {
	src := testImage(t, 4, 4)
	src.SetUCharAt3(0, 0, 0, 101)

	got := adjust(t, testPipeline(), src, Params{Brightness: 20, Contrast: 25})

	// round(101*1.25)+20 = 146; (101+20)*1.25 would give 151.
	assert.Equal(t, byte(146), got[0])
}

func TestBrightnessSliderScenario(t *testing.T) {
	src := testImage(t, 12, 8)
	in := src.ToBytes()

	p := Update(Neutral(), SliderEvent(EventBrightness, 150))
	got := adjust(t, testPipeline(), src, p)

	for i := range in {
		want := int(in[i]) + 50
		if want > 255 {
			want = 255
		}
		require.Equal(t, byte(want), got[i])
	}
}

func TestAdjustToggleRoundTrip(t *testing.T) {
	src := testImage(t, 24, 24)
	pl := testPipeline()

	base := Params{Brightness: 20, Contrast: 10, GaussianRadius: 2, BalanceR: 15}
	before := adjust(t, pl, src, base)

	for _, kind := range []EventKind{EventSharpen, EventEqualize, EventEdges} {
		on := Update(base, ToggleEvent(kind, true))
		changed := adjust(t, pl, src, on)
		assert.NotEqual(t, before, changed, "%s should change the output", kind)

		off := Update(on, ToggleEvent(kind, false))
		assert.Equal(t, before, adjust(t, pl, src, off), "%s off must restore the output", kind)
	}
}

func TestAdjustEdgesDropColor(t *testing.T) {
	src := testImage(t, 32, 32)

	out, err := testPipeline().Adjust(src, Params{Edges: true, Brightness: 30, Sharpen: true})
	require.NoError(t, err)
	defer out.Close()

	planes := gocv.Split(out)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()

	require.Len(t, planes, 3)
	assert.Equal(t, planes[0].ToBytes(), planes[1].ToBytes())
	assert.Equal(t, planes[0].ToBytes(), planes[2].ToBytes())
}

func TestAdjustBalanceRunsAfterEdges(t *testing.T) {
	src := testImage(t, 16, 16)

	out, err := testPipeline().Adjust(src, Params{Edges: true, BalanceB: 40})
	require.NoError(t, err)
	defer out.Close()

	for y := 0; y < out.Rows(); y++ {
		for x := 0; x < out.Cols(); x++ {
			g := out.GetUCharAt3(y, x, 1)
			b := out.GetUCharAt3(y, x, 0)
			require.True(t, g == 0 || g == 255)
			require.Equal(t, saturate(int(g)+40), b)
		}
	}
}

func TestAdjustLeavesOriginalUntouched(t *testing.T) {
	src := testImage(t, 20, 20)
	before := src.ToBytes()

	p := Params{
		Brightness: 80, Contrast: 60, GaussianRadius: 3, MedianRadius: 2,
		BilateralDiameter: 5, Sharpen: true, Equalize: true, Edges: true,
		BalanceB: -30, BalanceG: 30, BalanceR: 90,
	}
	adjust(t, testPipeline(), src, p)

	assert.Equal(t, before, src.ToBytes())
}

func TestAdjustIsHistoryIndependent(t *testing.T) {
	src := testImage(t, 20, 20)
	pl := testPipeline()
	target := Params{Brightness: -15, MedianRadius: 1, Equalize: true}

	direct := adjust(t, pl, src, target)

	adjust(t, pl, src, Params{Contrast: 90, GaussianRadius: 5, Edges: true})
	assert.Equal(t, direct, adjust(t, pl, src, target))
}

func TestAdjustClampsOutOfRangeParams(t *testing.T) {
	src := testImage(t, 8, 8)

	assert.Equal(t, src.ToBytes(), adjust(t, testPipeline(), src, Params{GaussianRadius: -4, MedianRadius: -1}))
}

func TestAdjustRejectsEmpty(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	_, err := testPipeline().Adjust(empty, Neutral())
	assert.Error(t, err)
}

func TestStageOrder(t *testing.T) {
	pl := testPipeline()

	want := []string{
		"brightness_contrast",
		"gaussian_blur",
		"median_blur",
		"bilateral_filter",
		"sharpen",
		"histogram_equalization",
		"edge_detection",
		"color_balance",
	}
	assert.Equal(t, want, pl.StageNames())

	all := Params{
		Brightness: 1, GaussianRadius: 1, MedianRadius: 1, BilateralDiameter: 1,
		Sharpen: true, Equalize: true, Edges: true, BalanceG: 1,
	}
	assert.Equal(t, want, pl.ActiveStages(all))
	assert.Empty(t, pl.ActiveStages(Neutral()))
	assert.Equal(t, []string{"median_blur", "sharpen"}, pl.ActiveStages(Params{MedianRadius: 2, Sharpen: true}))
}

func TestRunUsesStoredOriginal(t *testing.T) {
	src := testImage(t, 6, 9)
	img, err := NewImageData(src, "s1.jpg")
	require.NoError(t, err)
	defer img.Close()

	out, err := testPipeline().Run(img, Params{Brightness: 5})
	require.NoError(t, err)
	defer out.Close()

	want := src.ToBytes()
	for i := range want {
		want[i] = saturate(int(want[i]) + 5)
	}
	assert.Equal(t, want, out.ToBytes())
}
