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

// Package ansi256 provides the 256-colour palette of xterm-compatible
// terminals.
//
// Codes 0 to 15 are the system colours, which this package maps to the 16
// basic HTML colours.  Codes 16 to 231 form a 6×6×6 colour cube and codes
// 232 to 255 are a ramp of greys.
package ansi256

import (
	"strconv"

	"seehuhn.de/go/ochre/colorsys"
	"seehuhn.de/go/ochre/palette"
)

// NumColors is the number of palette entries.
const NumColors = 256

var system = [16]uint32{
	0x000000, 0x800000, 0x008000, 0x808000,
	0x000080, 0x800080, 0x008080, 0xc0c0c0,
	0x808080, 0xff0000, 0x00ff00, 0xffff00,
	0x0000ff, 0xff00ff, 0x00ffff, 0xffffff,
}

var cubeLevels = [6]uint32{0, 95, 135, 175, 215, 255}

// Palette contains the 256 colours, in order of their codes.  The name of
// each entry is the decimal code.  Several codes denote the same colour;
// [palette.Palette.Closest] returns the lowest of these.
var Palette = mustBuild()

// Value returns the colour for the given code as an integer 0xRRGGBB.
func Value(code int) (uint32, error) {
	if err := checkCode(code); err != nil {
		return 0, err
	}
	return value(code), nil
}

func value(code int) uint32 {
	switch {
	case code < 16:
		return system[code]
	case code < 232:
		i := code - 16
		r, g, b := cubeLevels[i/36], cubeLevels[i/6%6], cubeLevels[i%6]
		return r<<16 | g<<8 | b
	default:
		v := uint32(8 + 10*(code-232))
		return v<<16 | v<<8 | v
	}
}

// RGB returns the sRGB value for the given code.
func RGB(code int) (r, g, b float64, err error) {
	x, err := Value(code)
	if err != nil {
		return 0, 0, 0, err
	}
	return colorsys.Uint32ToRGB(x)
}

// Hex returns the colour for the given code in the form "#rrggbb".
func Hex(code int) (string, error) {
	if err := checkCode(code); err != nil {
		return "", err
	}
	return Palette.Entry(code).Hex(), nil
}

// Nearest returns the code of the palette colour closest to the given sRGB
// colour.
func Nearest(r, g, b float64) (int, error) {
	if err := colorsys.CheckRGB(r, g, b); err != nil {
		return 0, err
	}
	return Palette.ClosestIndex(palette.PointFromRGB(r, g, b)), nil
}

func checkCode(code int) error {
	if code < 0 || code >= NumColors {
		return &colorsys.RangeError{
			Name:  "ANSI color code",
			Value: float64(code),
			Min:   0,
			Max:   NumColors - 1,
		}
	}
	return nil
}

func mustBuild() *palette.Palette {
	entries := make([]palette.Entry, NumColors)
	for code := range entries {
		r, g, b, err := colorsys.Uint32ToRGB(value(code))
		if err != nil {
			panic(err)
		}
		entries[code] = palette.Entry{Name: strconv.Itoa(code), R: r, G: g, B: b}
	}
	p, err := palette.New(entries, nil)
	if err != nil {
		panic(err)
	}
	return p
}
