package core

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"image-enhancement-tool/internal/logging"
)

func testImage(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()

	data := make([]byte, rows*cols*3)
	for i := range data {
		data[i] = byte((i*13 + i/7) % 256)
	}
	mat, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC3, data)
	require.NoError(t, err)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func testPipeline() *Pipeline {
	return NewPipeline(DefaultConstants(), logging.Discard())
}

func adjust(t *testing.T, pl *Pipeline, src gocv.Mat, p Params) []byte {
	t.Helper()

	out, err := pl.Adjust(src, p)
	require.NoError(t, err)
	defer out.Close()

	require.Equal(t, src.Rows(), out.Rows())
	require.Equal(t, src.Cols(), out.Cols())
	require.Equal(t, 3, out.Channels())
	return out.ToBytes()
}

// brightnessContrast returns the expected stage-one output for input x,
// computed exactly as saturate(round(x*(100+contrast)/100) + brightness).
// On an exact .5 tie lo and hi differ, and either is accepted.
func brightnessContrast(x byte, brightness, contrast int) (lo, hi byte) {
	num := int(x) * (100 + contrast)
	q, r := num/100, num%100
	switch {
	case r < 50:
		return saturate(q + brightness), saturate(q + brightness)
	case r > 50:
		return saturate(q + 1 + brightness), saturate(q + 1 + brightness)
	}
	return saturate(q + brightness), saturate(q + 1 + brightness)
}

func saturate(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
