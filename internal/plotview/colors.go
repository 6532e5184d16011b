// Package plotview renders expanded point sets: a PNG scatter via
// gonum/plot and an interactive HTML scene via go-echarts. It consumes the
// engine's category and role tags; the core never sees a colour.
package plotview

import "image/color"

// Fixed colours for the default category names. Unknown names fall back to
// a generated palette so extra categories remain distinguishable.
var namedColors = map[string]color.Color{
	"BLUE": color.RGBA{R: 31, G: 119, B: 180, A: 255},
	"RED":  color.RGBA{R: 214, G: 39, B: 40, A: 255},
}

// derivedColor is the uniform colour for displaced points.
var derivedColor = color.Color(color.RGBA{R: 128, G: 128, B: 128, A: 255})

// categoryColor returns the marker colour for the i-th category.
func categoryColor(name string, i, n int) color.Color {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return generateColors(n)[i]
}

// generateColors creates a palette of distinct colours spaced around the
// hue circle.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
