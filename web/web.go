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

// Package web provides the named colours of HTML and CSS.
//
// The table contains all 148 names from CSS Color Module Level 4,
// including the alternative spellings with "grey" and the aliases "cyan"
// (for "aqua") and "magenta" (for "fuchsia").  [Palette] lists the colours
// in alphabetical order, so that where several names denote the same
// colour, [Nearest] returns the alphabetically first one.
package web

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/ochre/colorsys"
	"seehuhn.de/go/ochre/palette"
)

// Palette contains the web colours, sorted by name.
// Distances are measured in CIELUV ([palette.MetricLuv]).
var Palette = mustBuild()

func mustBuild() *palette.Palette {
	names := maps.Keys(colors)
	slices.Sort(names)

	entries := make([]palette.Entry, len(names))
	for i, name := range names {
		r, g, b, err := colorsys.Uint32ToRGB(colors[name])
		if err != nil {
			panic(err)
		}
		entries[i] = palette.Entry{Name: name, R: r, G: g, B: b}
	}

	p, err := palette.New(entries, &palette.Options{Metric: palette.MetricLuv})
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns the names of all web colours, in alphabetical order.
func Names() []string {
	names := make([]string, Palette.Len())
	for i := range names {
		names[i] = Palette.Entry(i).Name
	}
	return names
}

// Lookup returns the sRGB value of a named colour.
// Names are matched as described in [palette.NormalizeName].
func Lookup(name string) (r, g, b float64, ok bool) {
	e, ok := Palette.Lookup(name)
	if !ok {
		return 0, 0, 0, false
	}
	return e.R, e.G, e.B, true
}

// Hex returns the colour with the given name in the form "#rrggbb".
func Hex(name string) (string, error) {
	e, ok := Palette.Lookup(name)
	if !ok {
		return "", &UnknownNameError{Name: name}
	}
	return e.Hex(), nil
}

// UnknownNameError is returned if a name is not in the table of web
// colours.
type UnknownNameError struct {
	Name string
}

func (err *UnknownNameError) Error() string {
	return "unknown web color " + strconv.Quote(err.Name)
}

// Nearest returns the name of the web colour closest to the given sRGB
// colour.  A [*colorsys.RangeError] is returned if a channel is outside
// [0, 1].
func Nearest(r, g, b float64) (string, error) {
	if err := colorsys.CheckRGB(r, g, b); err != nil {
		return "", err
	}
	return Palette.Closest(palette.PointFromRGB(r, g, b)).Name, nil
}
