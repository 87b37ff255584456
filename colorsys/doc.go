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

// Package colorsys implements conversions between sRGB, CIE XYZ, CIELUV,
// HCL and hexadecimal colour notation.
//
// All RGB values are gamma-encoded sRGB channel values in the range [0, 1].
// Functions which accept RGB values from the caller and can fail ([RGBToHCL],
// [RGBToHex], [RGBToUint32]) reject values outside this range with a
// [*RangeError].  The lower-level steps [RGBToXYZ] and [RGBToLuv] do not
// check their arguments.  Conversions which produce RGB values never fail:
// colours outside the sRGB gamut are clipped in linear light, before the
// inverse gamma step.
//
// CIELUV coordinates are scaled by 1/100, so that the lightness L lies in
// the range [0, 1].  HCL is the polar form of these coordinates:
//   - hue is atan2(v, u), in radians, normalised into [0, 2π),
//   - chroma is the length of (u, v),
//   - luminance is L.
//
// When the chroma of a colour is below [AchromaticChroma], the hue is not
// defined and is reported as 0.
package colorsys
