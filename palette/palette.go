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

// Package palette implements fixed tables of named colours and
// nearest-colour lookup.
//
// A [Palette] is an ordered, immutable list of entries.  [Palette.Closest]
// performs a linear scan and, when several entries are at the same
// distance from the query, returns the one which comes first.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"seehuhn.de/go/ochre/colorsys"
)

// Entry is a named colour.
// The channel values are sRGB values in the range [0, 1].
type Entry struct {
	Name    string
	R, G, B float64
}

// Hex returns the colour of the entry in the form "#rrggbb".
func (e Entry) Hex() string {
	s, err := colorsys.RGBToHex(e.R, e.G, e.B)
	if err != nil {
		// entries are validated by New
		panic(err)
	}
	return s
}

// Options can be used to configure a [Palette].
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Metric is used to compare colours in [Palette.Closest].
	Metric Metric
}

// Palette is an ordered list of named colours.
// Palettes are immutable and safe for concurrent use.
type Palette struct {
	entries []Entry
	points  []Point
	byName  map[string]int
	metric  Metric
}

// New creates a palette from the given entries.
//
// The order of the entries is kept; it decides ties in [Palette.Closest].
// Names are compared using [NormalizeName] and must be unique.
func New(entries []Entry, opt *Options) (*Palette, error) {
	if opt == nil {
		opt = &Options{}
	}
	if !opt.Metric.valid() {
		return nil, fmt.Errorf("palette: unknown metric %d", int(opt.Metric))
	}
	if len(entries) == 0 {
		return nil, errors.New("palette: no entries")
	}

	p := &Palette{
		entries: slices.Clone(entries),
		points:  make([]Point, len(entries)),
		byName:  make(map[string]int, len(entries)),
		metric:  opt.Metric,
	}
	for i, e := range p.entries {
		if err := colorsys.CheckRGB(e.R, e.G, e.B); err != nil {
			return nil, fmt.Errorf("palette: entry %q: %w", e.Name, err)
		}
		key := NormalizeName(e.Name)
		if key == "" {
			return nil, fmt.Errorf("palette: entry %d has no name", i)
		}
		if _, dup := p.byName[key]; dup {
			return nil, fmt.Errorf("palette: duplicate name %q", e.Name)
		}
		p.byName[key] = i
		p.points[i] = PointFromRGB(e.R, e.G, e.B)
	}
	return p, nil
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the i-th entry of the palette.
func (p *Palette) Entry(i int) Entry {
	return p.entries[i]
}

// Entries returns a copy of all palette entries, in palette order.
func (p *Palette) Entries() []Entry {
	return slices.Clone(p.entries)
}

// Metric returns the metric used by [Palette.Closest].
func (p *Palette) Metric() Metric {
	return p.metric
}

// Lookup finds an entry by name.
func (p *Palette) Lookup(name string) (Entry, bool) {
	i, ok := p.byName[NormalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Closest returns the entry nearest to q.
func (p *Palette) Closest(q Point) Entry {
	return p.entries[p.ClosestIndex(q)]
}

// ClosestIndex returns the index of the entry nearest to q.
// If several entries are at the same distance, the smallest index is
// returned.
func (p *Palette) ClosestIndex(q Point) int {
	best := 0
	bestDist := p.metric.Distance(q, p.points[0])
	for i := 1; i < len(p.points); i++ {
		d := p.metric.Distance(q, p.points[i])
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// NormalizeName returns the key used to compare colour names.
// Case is folded and spaces, hyphens and underscores are removed, so that
// "Cornflower Blue", "cornflower-blue" and "CornflowerBlue" are the same.
func NormalizeName(name string) string {
	name = cases.Fold().String(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, name)
}
