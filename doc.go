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

// Package ochre represents colours in sRGB and HCL and converts between
// them.
//
// HCL is the polar form of the CIELUV colour space: hue is an angle in
// radians, chroma measures colourfulness and luminance measures perceived
// lightness.  Changing the hue of a colour in HCL keeps its lightness,
// which makes HCL convenient for deriving related colours:
//
//	c := ochre.MustParseHex("#cc7722")
//	d := c.RotateHue(math.Pi / 6)
//	fmt.Println(d.WebColor()) // goldenrod
//
// Values of type [Color] are immutable; methods like [Color.RotateHue] or
// [Color.Darken] return new colours.  Each colour remembers whether it was
// created from sRGB or HCL values, and the other representation is
// computed on demand.
//
// The conversion formulas are in the sub-package
// [seehuhn.de/go/ochre/colorsys].  Named colours are provided by
// [seehuhn.de/go/ochre/web] (the CSS colour names) and
// [seehuhn.de/go/ochre/ansi256] (the xterm palette).  Nearest-colour lookup
// against arbitrary tables is implemented in [seehuhn.de/go/ochre/palette].
package ochre
