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
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxUint32 is the largest value accepted by [Uint32ToRGB].
const MaxUint32 = 0xFFFFFF

// RGBToHex returns the colour in the form "#rrggbb", using lowercase hex
// digits.  Each channel is rounded to the nearest of 256 levels.
func RGBToHex(r, g, b float64) (string, error) {
	if err := CheckRGB(r, g, b); err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(r), to8(g), to8(b)), nil
}

// HexToRGB parses a hexadecimal colour.
//
// The accepted forms are "#rgb", "rgb", "#rrggbb" and "rrggbb", where the
// digits are case-insensitive.  In the three-digit form each digit is
// repeated, so that "#c72" is the same as "#cc7722".
func HexToRGB(s string) (r, g, b float64, err error) {
	body := s
	offs := 0
	if body != "" && body[0] == '#' {
		body = body[1:]
		offs = 1
	}
	if len(body) != 3 && len(body) != 6 {
		return 0, 0, 0, &ParseError{Input: s, Pos: -1, Err: errLength}
	}
	for i := range len(body) {
		if !isHexDigit(body[i]) {
			return 0, 0, 0, &ParseError{Input: s, Pos: offs + i, Err: errDigit}
		}
	}

	col, err := colorful.Hex("#" + body)
	if err != nil {
		return 0, 0, 0, &ParseError{Input: s, Pos: -1, Err: err}
	}
	// go-colorful scales by multiplication, which can be off by one ulp.
	// Going through the 8-bit values keeps the result exactly v/255.
	r8, g8, b8 := col.RGB255()
	return float64(r8) / 255, float64(g8) / 255, float64(b8) / 255, nil
}

// RGBToUint32 returns the colour as an integer of the form 0xRRGGBB.
func RGBToUint32(r, g, b float64) (uint32, error) {
	if err := CheckRGB(r, g, b); err != nil {
		return 0, err
	}
	return uint32(to8(r))<<16 | uint32(to8(g))<<8 | uint32(to8(b)), nil
}

// Uint32ToRGB converts an integer of the form 0xRRGGBB to RGB values.
func Uint32ToRGB(x uint32) (r, g, b float64, err error) {
	if x > MaxUint32 {
		return 0, 0, 0, &RangeError{Name: "hex", Value: float64(x), Min: 0, Max: MaxUint32}
	}
	r = float64(x>>16&0xFF) / 255
	g = float64(x>>8&0xFF) / 255
	b = float64(x&0xFF) / 255
	return r, g, b, nil
}

// to8 quantises a channel value in [0, 1] to 8 bits.
func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
