package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in       int
		wantW    int
		wantH    int
		describe string
	}{
		{100, 800, 288, "below min width clamps to 800"},
		{1100, 1100, 396, "default width"},
		{2000, 2000, 520, "height clamps to 520"},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		assert.Equal(t, c.wantW, w, c.describe)
		assert.Equal(t, c.wantH, h, c.describe)
	}
}

func TestNiceMax(t *testing.T) {
	assert.Equal(t, 1.0, NiceMax(0))
	assert.Equal(t, 2.0, NiceMax(2))
	assert.Equal(t, 500.0, NiceMax(482))
	assert.Equal(t, 1000.0, NiceMax(766))
	assert.Equal(t, 250.0, NiceMax(201))
}

func TestBuildNumericTicks(t *testing.T) {
	ticks := BuildNumericTicks(0, 500, 6)
	assert.Equal(t, []float64{0, 100, 200, 300, 400, 500}, ticks)

	ticks = BuildNumericTicks(0, 161, 8)
	assert.Equal(t, 0.0, ticks[0])
	assert.GreaterOrEqual(t, ticks[len(ticks)-1], 161.0)
	for i := 1; i < len(ticks); i++ {
		assert.Greater(t, ticks[i], ticks[i-1])
	}

	assert.Nil(t, BuildNumericTicks(0, 1, 1))
}

func TestIntegerTicks(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, IntegerTicks(4, 9))
	assert.Equal(t, []float64{0, 1}, IntegerTicks(0.5, 9))
	ticks := IntegerTicks(161, 9)
	for _, v := range ticks {
		assert.Equal(t, v, float64(int(v)), "tick %v must be whole", v)
	}
	assert.GreaterOrEqual(t, ticks[len(ticks)-1], 161.0)
}

func TestDecadeBounds(t *testing.T) {
	lo, hi, ok := DecadeBounds([]float64{0, 3, 766}, []float64{12})
	assert.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)

	lo, hi, ok = DecadeBounds([]float64{20, 50})
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 2, hi)

	lo, hi, ok = DecadeBounds([]float64{100})
	assert.True(t, ok)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 3, hi, "a single value still spans one decade")

	_, _, ok = DecadeBounds([]float64{0, 0}, nil)
	assert.False(t, ok)
}

func TestFormatNumericTick(t *testing.T) {
	assert.Equal(t, "0", FormatNumericTick(0))
	assert.Equal(t, "1", FormatNumericTick(1))
	assert.Equal(t, "2.5", FormatNumericTick(2.5))
	assert.Equal(t, "10", FormatNumericTick(10))
	assert.Equal(t, "1000", FormatNumericTick(1000))
}

func TestParseScale(t *testing.T) {
	s, err := ParseScale("Log")
	assert.NoError(t, err)
	assert.Equal(t, Log, s)
	assert.Equal(t, "log", s.String())

	_, err = ParseScale("quadratic")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "quadratic")
}

func TestNoData(t *testing.T) {
	img := NoData(800, 288, "In-Degree Distribution")
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 288, img.Bounds().Dy())
	// caption pixels are darker than the white background somewhere near the center row
	found := false
	for x := 0; x < 800 && !found; x++ {
		for y := 130; y < 160; y++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0xffff {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "caption text should be drawn")
}
