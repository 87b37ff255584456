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

// AdjustStep is the change in luminance (for [Color.Darken] and
// [Color.Lighten]) or chroma (for [Color.Saturate] and [Color.Desaturate])
// caused by an amount of 1.
const AdjustStep = 0.18

// The following methods return new colours, stored as HCL.  If an argument
// is NaN or infinite, the receiver is returned unchanged.

// RotateHue returns the colour with the hue increased by delta radians.
func (c Color) RotateHue(delta float64) Color {
	if !isFinite(delta) {
		return c
	}
	h, ch, l := c.HCL()
	return newHCL(h+delta, ch, l)
}

// WithHue returns the colour with the hue (in radians) replaced.
func (c Color) WithHue(h float64) Color {
	if !isFinite(h) {
		return c
	}
	_, ch, l := c.HCL()
	return newHCL(h, ch, l)
}

// WithChroma returns the colour with the chroma replaced.
func (c Color) WithChroma(ch float64) Color {
	if !isFinite(ch) {
		return c
	}
	h, _, l := c.HCL()
	return newHCL(h, ch, l)
}

// WithLuminance returns the colour with the luminance replaced.
func (c Color) WithLuminance(l float64) Color {
	if !isFinite(l) {
		return c
	}
	h, ch, _ := c.HCL()
	return newHCL(h, ch, l)
}

// Darken reduces the luminance by amount·[AdjustStep].
func (c Color) Darken(amount float64) Color {
	if !isFinite(amount) {
		return c
	}
	_, _, l := c.HCL()
	return c.WithLuminance(l - amount*AdjustStep)
}

// Lighten increases the luminance by amount·[AdjustStep].
func (c Color) Lighten(amount float64) Color {
	return c.Darken(-amount)
}

// Saturate increases the chroma by amount·[AdjustStep].
func (c Color) Saturate(amount float64) Color {
	if !isFinite(amount) {
		return c
	}
	_, ch, _ := c.HCL()
	return c.WithChroma(ch + amount*AdjustStep)
}

// Desaturate reduces the chroma by amount·[AdjustStep].
func (c Color) Desaturate(amount float64) Color {
	return c.Saturate(-amount)
}
