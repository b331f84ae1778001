package mathutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	require.Equal(t, 10.0, Lerp(0, 10, 20))
	require.Equal(t, 20.0, Lerp(1, 10, 20))
	require.Equal(t, 15.0, Lerp(0.5, 10, 20))
	require.Equal(t, 25.0, Lerp(1.5, 10, 20), "extrapolates past the end")
}

func TestRemap(t *testing.T) {
	require.Equal(t, 50.0, Remap(0.5, 0.0, 1.0, 0.0, 100.0))
	require.Equal(t, 0, Remap(0, 0, 1023, 0, 255))
	require.Equal(t, 255, Remap(1023, 0, 1023, 0, 255))
	require.Equal(t, -5.0, Remap(0.25, 0.0, 1.0, -10.0, 10.0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 5, Clamp(5, 0, 10))
	require.Equal(t, 0, Clamp(-3, 0, 10))
	require.Equal(t, 10, Clamp(42, 0, 10))
	require.Equal(t, 1.5, Clamp(2.0, 0.0, 1.5))
}

func TestGammaRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.5, 0.9, 1} {
		require.InDelta(t, v, GammaUncorrect(GammaCorrect(v, 2.8), 2.8), 1e-9)
	}
	require.Equal(t, 0.42, GammaCorrect(0.42, 0), "zero gamma passes through")
	require.Equal(t, 0.0, GammaCorrect(-1, 2.8), "negative input clamps to zero")
}

func TestRGBToHSV(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b float64
		hue     int
		sat     float64
		val     float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 1, 1, 1, 0, 0, 1},
		{"red", 1, 0, 0, 0, 1, 1},
		{"green", 0, 1, 0, 120, 1, 1},
		{"blue", 0, 0, 1, 240, 1, 1},
		{"yellow", 1, 1, 0, 60, 1, 1},
	}
	for _, c := range cases {
		h, s, v := RGBToHSV(c.r, c.g, c.b)
		require.Equal(t, c.hue, h, c.name)
		require.InDelta(t, c.sat, s, 1e-9, c.name)
		require.InDelta(t, c.val, v, 1e-9, c.name)
	}
}

func TestHSVToRGBRoundTrip(t *testing.T) {
	for hue := 0; hue < 360; hue += 30 {
		for _, sat := range []float64{0.25, 0.5, 1} {
			r, g, b := HSVToRGB(hue, sat, 0.8)
			h2, s2, v2 := RGBToHSV(r, g, b)
			require.Equal(t, hue, h2, "hue %d sat %v", hue, sat)
			require.InDelta(t, sat, s2, 1e-9)
			require.InDelta(t, 0.8, v2, 1e-9)
		}
	}
}
