// seehuhn.de/go/ochre - colour representation and conversion
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package colorsys

import (
	"math"

	"golang.org/x/image/math/f64"
)

// rgbToXYZ maps linear sRGB values to CIE XYZ (D65), row major.
var rgbToXYZ = f64.Mat3{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
}

// xyzToRGB is computed from rgbToXYZ, so that both directions agree to
// full float64 precision.
var xyzToRGB = invert(rgbToXYZ)

// WhitePointD65 is the CIE XYZ value of sRGB white.
var WhitePointD65 = mulVec(&rgbToXYZ, f64.Vec3{1, 1, 1})

// gamutSlack is the tolerance for deciding whether a linear RGB value lies
// inside the unit cube.
const gamutSlack = 1e-7

// SRGBToLinear removes the sRGB gamma encoding from a channel value.
func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB gamma encoding to a linear channel value.
func LinearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// RGBToXYZ converts sRGB values to CIE XYZ (D65).
// The channel values are not checked.
func RGBToXYZ(r, g, b float64) (x, y, z float64) {
	lin := f64.Vec3{SRGBToLinear(r), SRGBToLinear(g), SRGBToLinear(b)}
	xyz := mulVec(&rgbToXYZ, lin)
	return xyz[0], xyz[1], xyz[2]
}

// XYZToRGB converts CIE XYZ (D65) values to sRGB.
// Colours outside the sRGB gamut are clipped in linear light.
func XYZToRGB(x, y, z float64) (r, g, b float64) {
	r, g, b, _ = xyzToRGBGamut(x, y, z)
	return r, g, b
}

// xyzToRGBGamut is like XYZToRGB, but also reports whether the colour was
// inside the gamut before clipping.
func xyzToRGBGamut(x, y, z float64) (r, g, b float64, inGamut bool) {
	lin := mulVec(&xyzToRGB, f64.Vec3{x, y, z})
	inGamut = true
	for i, v := range lin {
		if !(v >= -gamutSlack && v <= 1+gamutSlack) {
			inGamut = false
		}
		lin[i] = clamp01(v)
	}
	r = LinearToSRGB(lin[0])
	g = LinearToSRGB(lin[1])
	b = LinearToSRGB(lin[2])
	return clamp01(r), clamp01(g), clamp01(b), inGamut
}

func mulVec(m *f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// invert returns the inverse of a non-singular 3x3 matrix.
func invert(m f64.Mat3) f64.Mat3 {
	c00 := m[4]*m[8] - m[5]*m[7]
	c01 := m[5]*m[6] - m[3]*m[8]
	c02 := m[3]*m[7] - m[4]*m[6]
	det := m[0]*c00 + m[1]*c01 + m[2]*c02
	if det == 0 {
		panic("colorsys: singular matrix")
	}
	s := 1 / det
	return f64.Mat3{
		c00 * s, (m[2]*m[7] - m[1]*m[8]) * s, (m[1]*m[5] - m[2]*m[4]) * s,
		c01 * s, (m[0]*m[8] - m[2]*m[6]) * s, (m[2]*m[3] - m[0]*m[5]) * s,
		c02 * s, (m[1]*m[6] - m[0]*m[7]) * s, (m[0]*m[4] - m[1]*m[3]) * s,
	}
}

// clamp01 restricts v to [0, 1].  NaN is mapped to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
