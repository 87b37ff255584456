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

// CIE constants, see CIE 15:2004.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// minVPrime keeps LuvToXYZ finite for (u, v) pairs which do not correspond
// to any physical colour.
const minVPrime = 1e-12

var whiteU, whiteV = chromaticity(WhitePointD65[0], WhitePointD65[1], WhitePointD65[2])

// XYZToLuv converts CIE XYZ (D65) values to CIELUV.
// The result is scaled by 1/100, so that l lies in [0, 1] for colours
// not brighter than the white point.
func XYZToLuv(x, y, z float64) (l, u, v float64) {
	yr := y / WhitePointD65[1]
	if yr > cieEpsilon {
		l = 1.16*math.Cbrt(yr) - 0.16
	} else {
		l = cieKappa * yr / 100
	}
	if l <= 0 {
		return 0, 0, 0
	}
	up, vp := chromaticity(x, y, z)
	u = 13 * l * (up - whiteU)
	v = 13 * l * (vp - whiteV)
	return l, u, v
}

// LuvToXYZ converts scaled CIELUV values to CIE XYZ (D65).
func LuvToXYZ(l, u, v float64) (x, y, z float64) {
	if l <= 0 {
		return 0, 0, 0
	}
	if L := 100 * l; L > cieKappa*cieEpsilon {
		t := (L + 16) / 116
		y = t * t * t
	} else {
		y = L / cieKappa
	}
	y *= WhitePointD65[1]

	up := u/(13*l) + whiteU
	vp := v/(13*l) + whiteV
	if vp < minVPrime {
		vp = minVPrime
	}
	x = y * 9 * up / (4 * vp)
	z = y * (12 - 3*up - 20*vp) / (4 * vp)
	return x, y, z
}

// RGBToLuv converts sRGB values to scaled CIELUV.
// The channel values are not checked.
func RGBToLuv(r, g, b float64) (l, u, v float64) {
	return XYZToLuv(RGBToXYZ(r, g, b))
}

// LuvToRGB converts scaled CIELUV values to sRGB, clipping to the gamut.
func LuvToRGB(l, u, v float64) (r, g, b float64) {
	return XYZToRGB(LuvToXYZ(l, u, v))
}

// chromaticity returns the CIE 1976 u' and v' coordinates.
func chromaticity(x, y, z float64) (up, vp float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}
