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

package ochre

import (
	stdcolor "image/color"
	"math"
	"strconv"

	"seehuhn.de/go/ochre/ansi256"
	"seehuhn.de/go/ochre/colorsys"
	"seehuhn.de/go/ochre/internal/float"
	"seehuhn.de/go/ochre/palette"
	"seehuhn.de/go/ochre/web"
)

// Space identifies the representation a [Color] is stored in.
type Space uint8

// These are the supported colour spaces.
const (
	SpaceRGB Space = iota
	SpaceHCL
)

func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceHCL:
		return "HCL"
	default:
		return "Space(" + strconv.Itoa(int(s)) + ")"
	}
}

// EqualityThreshold is the largest Euclidean distance between the sRGB
// values of two colours which [Color.Equal] considers equal.
const EqualityThreshold = 7e-3

// Color is an immutable colour value.
//
// A Color stores either sRGB channel values or HCL coordinates, as reported
// by [Color.Space].  The stored values are returned unchanged by the
// accessor for that space; the other representation is computed on each
// call.  The zero value is black, stored as RGB.
//
// Colors are comparable.  The == operator compares the stored
// representation; use [Color.Equal] to compare the appearance.
type Color struct {
	space   Space
	x, y, z float64
}

// RGB returns a colour from sRGB channel values.
// A [*colorsys.RangeError] is returned if a value is outside [0, 1].
func RGB(r, g, b float64) (Color, error) {
	if err := colorsys.CheckRGB(r, g, b); err != nil {
		return Color{}, err
	}
	return Color{space: SpaceRGB, x: r, y: g, z: b}, nil
}

// HCL returns a colour from hue (in radians), chroma and luminance.
//
// The hue is normalised into [0, 2π), negative chroma is replaced by 0, and
// the luminance is clamped to [0, 1].  A [*colorsys.RangeError] is returned
// if one of the values is NaN or infinite.
func HCL(h, c, l float64) (Color, error) {
	for _, v := range []struct {
		name string
		val  float64
	}{{"hue", h}, {"chroma", c}, {"luminance", l}} {
		if !isFinite(v.val) {
			return Color{}, &colorsys.RangeError{
				Name:  v.name,
				Value: v.val,
				Min:   math.Inf(-1),
				Max:   math.Inf(+1),
			}
		}
	}
	return newHCL(h, c, l), nil
}

// newHCL normalises the given (finite) values.
func newHCL(h, c, l float64) Color {
	h = colorsys.NormalizeHue(h)
	c = max(c, 0)
	l = min(max(l, 0), 1)
	return Color{space: SpaceHCL, x: h, y: c, z: l}
}

// ParseHex returns the colour given by a hexadecimal string like "#cc7722".
// See [colorsys.HexToRGB] for the accepted formats.
func ParseHex(s string) (Color, error) {
	r, g, b, err := colorsys.HexToRGB(s)
	if err != nil {
		return Color{}, err
	}
	return Color{space: SpaceRGB, x: r, y: g, z: b}, nil
}

// MustParseHex is like [ParseHex] but panics if the string cannot be parsed.
// This simplifies the initialisation of package-level variables.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromUint32 returns the colour given by an integer of the form 0xRRGGBB.
func FromUint32(x uint32) (Color, error) {
	r, g, b, err := colorsys.Uint32ToRGB(x)
	if err != nil {
		return Color{}, err
	}
	return Color{space: SpaceRGB, x: r, y: g, z: b}, nil
}

// Web returns the named web colour.
// Names are matched as described in [palette.NormalizeName].  If the name
// is unknown, a [*web.UnknownNameError] is returned.
func Web(name string) (Color, error) {
	r, g, b, ok := web.Lookup(name)
	if !ok {
		return Color{}, &web.UnknownNameError{Name: name}
	}
	return Color{space: SpaceRGB, x: r, y: g, z: b}, nil
}

// Ansi256 returns the colour with the given code in the xterm 256-colour
// palette.
func Ansi256(code int) (Color, error) {
	r, g, b, err := ansi256.RGB(code)
	if err != nil {
		return Color{}, err
	}
	return Color{space: SpaceRGB, x: r, y: g, z: b}, nil
}

// FromStdColor converts a colour from the image/color package.
// The alpha channel is removed by un-premultiplying; a fully transparent
// colour becomes black.
func FromStdColor(c stdcolor.Color) Color {
	r32, g32, b32, a32 := c.RGBA()
	if a32 == 0 {
		return Color{}
	}
	a := float64(a32)
	return Color{
		space: SpaceRGB,
		x:     min(float64(r32)/a, 1),
		y:     min(float64(g32)/a, 1),
		z:     min(float64(b32)/a, 1),
	}
}

// Space returns the representation the colour is stored in.
func (c Color) Space() Space {
	return c.space
}

// RGB returns the sRGB channel values of the colour.
// HCL colours outside the sRGB gamut are clipped, see [colorsys.HCLToRGB].
func (c Color) RGB() (r, g, b float64) {
	if c.space == SpaceRGB {
		return c.x, c.y, c.z
	}
	r, g, b, inGamut := colorsys.HCLToRGBGamut(c.x, c.y, c.z)
	if !inGamut {
		Logger().Debug("HCL color clipped to sRGB gamut",
			"hue", c.x, "chroma", c.y, "luminance", c.z)
	}
	return r, g, b
}

// HCL returns hue (in radians, in [0, 2π)), chroma and luminance.
func (c Color) HCL() (h, ch, l float64) {
	if c.space == SpaceHCL {
		return c.x, c.y, c.z
	}
	return colorsys.LuvToHCL(colorsys.RGBToLuv(c.x, c.y, c.z))
}

// Luv returns the scaled CIELUV coordinates of the colour.
// For HCL colours these are computed without gamut clipping.
func (c Color) Luv() (l, u, v float64) {
	if c.space == SpaceHCL {
		return colorsys.HCLToLuv(c.x, c.y, c.z)
	}
	return colorsys.RGBToLuv(c.x, c.y, c.z)
}

// InGamut reports whether the colour can be represented in sRGB without
// clipping.  This is always true for colours stored as RGB.
func (c Color) InGamut() bool {
	if c.space == SpaceRGB {
		return true
	}
	_, _, _, inGamut := colorsys.HCLToRGBGamut(c.x, c.y, c.z)
	return inGamut
}

// Hex returns the colour in the form "#rrggbb", using lowercase digits.
func (c Color) Hex() string {
	s, err := colorsys.RGBToHex(c.RGB())
	if err != nil {
		panic(err) // unreachable, channels are always in range
	}
	return s
}

// Uint32 returns the colour as an integer of the form 0xRRGGBB.
func (c Color) Uint32() uint32 {
	x, err := colorsys.RGBToUint32(c.RGB())
	if err != nil {
		panic(err) // unreachable, channels are always in range
	}
	return x
}

// RGBA implements the [image/color.Color] interface.
// The colour is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	rf, gf, bf := c.RGB()
	return toUint16(rf), toUint16(gf), toUint16(bf), 0xffff
}

// WebColor returns the name of the closest web colour, see [web.Palette].
//
// Colours stored as HCL are compared using their exact CIELUV coordinates,
// so that the result does not depend on gamut clipping.
func (c Color) WebColor() string {
	return c.Closest(web.Palette).Name
}

// Ansi256 returns the code of the closest colour in the xterm 256-colour
// palette.
func (c Color) Ansi256() int {
	return ansi256.Palette.ClosestIndex(c.point())
}

// Closest returns the entry of p which is closest to c.
func (c Color) Closest(p *palette.Palette) palette.Entry {
	return p.Closest(c.point())
}

func (c Color) point() palette.Point {
	if c.space == SpaceHCL {
		return palette.PointFromLuv(c.Luv())
	}
	return palette.PointFromRGB(c.x, c.y, c.z)
}

// Distance returns the Euclidean distance between two colours in scaled
// CIELUV coordinates.
func (c Color) Distance(other Color) float64 {
	l1, u1, v1 := c.Luv()
	l2, u2, v2 := other.Luv()
	return math.Sqrt((l1-l2)*(l1-l2) + (u1-u2)*(u1-u2) + (v1-v2)*(v1-v2))
}

// Equal reports whether two colours look the same, i.e. whether the
// distance between their sRGB values is less than [EqualityThreshold].
func (c Color) Equal(other Color) bool {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := other.RGB()
	d := math.Sqrt((r1-r2)*(r1-r2) + (g1-g2)*(g1-g2) + (b1-b2)*(b1-b2))
	return d < EqualityThreshold
}

// String returns a representation like "RGB(.8, .4667, .1333)" or
// "HCL(.6374, .866, .5818)".
func (c Color) String() string {
	return c.space.String() + "(" +
		float.Format(c.x, 4) + ", " +
		float.Format(c.y, 4) + ", " +
		float.Format(c.z, 4) + ")"
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// toUint16 converts a float64 in [0,1] to uint32 in [0,0xffff].
func toUint16(v float64) uint32 {
	return uint32(min(max(v, 0), 1)*0xffff + 0.5)
}
