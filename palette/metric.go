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

package palette

import (
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/ochre/colorsys"
)

// Point is a query colour for [Palette.Closest].
//
// A point carries both an sRGB and a CIELUV representation.  Points
// created from CIELUV coordinates keep these coordinates exactly, even if
// the colour lies outside the sRGB gamut; the RGB fields then hold the
// clipped colour.
type Point struct {
	R, G, B float64
	L, U, V float64
}

// PointFromRGB returns the point for an sRGB colour.
// The channel values must be in the range [0, 1].
func PointFromRGB(r, g, b float64) Point {
	l, u, v := colorsys.RGBToLuv(r, g, b)
	return Point{R: r, G: g, B: b, L: l, U: u, V: v}
}

// PointFromLuv returns the point for a (scaled) CIELUV colour.
func PointFromLuv(l, u, v float64) Point {
	r, g, b := colorsys.LuvToRGB(l, u, v)
	return Point{R: r, G: g, B: b, L: l, U: u, V: v}
}

// Metric selects how distances between colours are measured.
type Metric int

// These are the supported metrics.
const (
	// MetricLuv is the Euclidean distance in scaled CIELUV.
	MetricLuv Metric = iota

	// MetricRGB is the Euclidean distance between the gamma-encoded sRGB
	// values.
	MetricRGB

	// MetricCIE76 is the Euclidean distance in CIELAB.
	MetricCIE76

	// MetricCIEDE2000 is the CIEDE2000 colour difference.
	MetricCIEDE2000

	numMetrics
)

func (m Metric) String() string {
	switch m {
	case MetricLuv:
		return "Luv"
	case MetricRGB:
		return "RGB"
	case MetricCIE76:
		return "CIE76"
	case MetricCIEDE2000:
		return "CIEDE2000"
	default:
		return "Metric(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m Metric) valid() bool {
	return m >= 0 && m < numMetrics
}

// Distance returns the distance between a and b.
// Distance panics if m is not one of the metrics defined in this package.
func (m Metric) Distance(a, b Point) float64 {
	switch m {
	case MetricLuv:
		return hypot3(a.L-b.L, a.U-b.U, a.V-b.V)
	case MetricRGB:
		return hypot3(a.R-b.R, a.G-b.G, a.B-b.B)
	case MetricCIE76:
		return toColorful(a).DistanceCIE76(toColorful(b))
	case MetricCIEDE2000:
		return toColorful(a).DistanceCIEDE2000(toColorful(b))
	default:
		panic("palette: invalid metric " + m.String())
	}
}

func toColorful(p Point) colorful.Color {
	return colorful.Color{R: p.R, G: p.G, B: p.B}
}

func hypot3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}
