package mathutil

import "math"

// RGBToHSV converts red/green/blue in [0,1] to hue in degrees [0,360) and
// saturation/value in [0,1].
func RGBToHSV(r, g, b float64) (hue int, saturation, value float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	value = max
	if max > 0 {
		saturation = delta / max
	}
	if delta == 0 {
		return 0, saturation, value
	}

	var h float64
	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	hue = int(math.Round(h * 60))
	if hue < 0 {
		hue += 360
	}
	return hue, saturation, value
}

// HSVToRGB converts hue in degrees and saturation/value in [0,1] back to
// red/green/blue in [0,1].
func HSVToRGB(hue int, saturation, value float64) (r, g, b float64) {
	h := math.Mod(float64(hue), 360)
	if h < 0 {
		h += 360
	}
	c := value * saturation
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := value - c

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
