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

import "seehuhn.de/go/ochre/colorsys"

// Pair combines a foreground and a background colour, for example for
// text shown in a terminal.  A nil field stands for the default colour of
// the output device.
type Pair struct {
	Foreground *Color
	Background *Color
}

// PairKey identifies the appearance of a [Pair].
// Each field holds the hex form of the colour, or "" for nil.
// PairKeys are comparable and can be used as map keys.
type PairKey struct {
	Foreground, Background string
}

// Key returns a map key for the pair.  Two pairs have the same key if
// their colours agree after quantisation to 8 bits per channel.
func (p Pair) Key() PairKey {
	var key PairKey
	if p.Foreground != nil {
		key.Foreground = p.Foreground.Hex()
	}
	if p.Background != nil {
		key.Background = p.Background.Hex()
	}
	return key
}

// Swap returns the pair with foreground and background exchanged.
func (p Pair) Swap() Pair {
	return Pair{Foreground: p.Background, Background: p.Foreground}
}

// Contrast returns the WCAG 2 contrast ratio between foreground and
// background, a value between 1 and 21.  The second return value is false
// if one of the colours is nil.
func (p Pair) Contrast() (float64, bool) {
	if p.Foreground == nil || p.Background == nil {
		return 0, false
	}
	y1 := p.Foreground.RelativeLuminance()
	y2 := p.Background.RelativeLuminance()
	if y1 < y2 {
		y1, y2 = y2, y1
	}
	return (y1 + 0.05) / (y2 + 0.05), true
}

// RelativeLuminance returns the CIE Y value of the colour, normalised so
// that white has luminance 1.
func (c Color) RelativeLuminance() float64 {
	_, y, _ := colorsys.RGBToXYZ(c.RGB())
	return min(y/colorsys.WhitePointD65[1], 1)
}
