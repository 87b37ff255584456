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

import "math"

// AchromaticChroma is the chroma below which a colour is treated as grey.
// The hue of such colours is reported as 0.
const AchromaticChroma = 1e-9

// NormalizeHue maps an angle (in radians) into the range [0, 2π).
// NaN and infinite values result in NaN.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	if h >= 2*math.Pi {
		// h was a tiny negative number
		h = 0
	}
	return h
}

// LuvToHCL converts scaled CIELUV coordinates to polar form.
func LuvToHCL(l, u, v float64) (h, c, lum float64) {
	c = math.Hypot(u, v)
	if c >= AchromaticChroma {
		h = NormalizeHue(math.Atan2(v, u))
	}
	return h, c, l
}

// HCLToLuv converts HCL coordinates to scaled CIELUV.
// The arguments are used as given, without normalisation, except that
// for l <= 0 the result is black: CIELUV has u = v = 0 at zero lightness,
// whatever the chroma.
func HCLToLuv(h, c, l float64) (lum, u, v float64) {
	if !(l > 0) {
		return 0, 0, 0
	}
	sin, cos := math.Sincos(h)
	return l, c * cos, c * sin
}

// RGBToHCL converts sRGB values to HCL.
// A [*RangeError] is returned if a channel is outside [0, 1].
func RGBToHCL(r, g, b float64) (h, c, l float64, err error) {
	if err := CheckRGB(r, g, b); err != nil {
		return 0, 0, 0, err
	}
	h, c, l = LuvToHCL(RGBToLuv(r, g, b))
	return h, c, l, nil
}

// HCLToRGB converts HCL values to sRGB.
//
// The hue is normalised, negative chroma is treated as 0 and the luminance
// is clamped to [0, 1].  Colours outside the sRGB gamut are clipped in
// linear light.
func HCLToRGB(h, c, l float64) (r, g, b float64) {
	r, g, b, _ = HCLToRGBGamut(h, c, l)
	return r, g, b
}

// HCLToRGBGamut is like [HCLToRGB], but also reports whether the colour
// lies inside the sRGB gamut.  If inGamut is false, the returned values
// have been clipped.
func HCLToRGBGamut(h, c, l float64) (r, g, b float64, inGamut bool) {
	h = NormalizeHue(h)
	if !(c > 0) {
		c = 0
	}
	l = clamp01(l)
	return xyzToRGBGamut(LuvToXYZ(HCLToLuv(h, c, l)))
}
