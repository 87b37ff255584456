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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDarken(t *testing.T) {
	c := MustParseHex("#D4F880")
	d := c.Darken(1)

	_, _, l0 := c.HCL()
	h, ch, l := d.HCL()
	if math.Abs(l0-l-AdjustStep) > 1e-9 {
		t.Errorf("luminance changed by %g", l0-l)
	}
	h0, ch0, _ := c.HCL()
	if h != h0 || ch != ch0 {
		t.Error("hue or chroma changed")
	}

	ref := MustParseHex("#a1c550")
	if dist := d.Distance(ref); dist >= 0.056 {
		t.Errorf("%s is too far from %s: %g", d.Hex(), ref.Hex(), dist)
	}
	if hex := d.Hex(); hex != "#a2c541" {
		t.Errorf("got %s", hex)
	}
}

// TestSaturateReference compares with a reference result for pink.  The
// hue of pink is close to 0, so the bound is for the distance in CIELUV,
// which does not wrap around.
func TestSaturateReference(t *testing.T) {
	c := MustParseHex("#ffc0cb")
	s := c.Saturate(1)

	ref := MustParseHex("#ffb1c7")
	if dist := s.Distance(ref); dist >= 0.115 {
		t.Errorf("%s is too far from %s: %g", s.Hex(), ref.Hex(), dist)
	}
	if s.InGamut() {
		t.Error("saturated pink should be out of gamut")
	}
	if hex := s.Hex(); hex != "#ffb8c8" {
		t.Errorf("got %s", hex)
	}
}

func TestLightenIsInverse(t *testing.T) {
	c := MustParseHex("#336699")
	for _, amount := range []float64{-1, 0, 0.5, 2} {
		a := c.Lighten(amount)
		b := c.Darken(-amount)
		if a != b {
			t.Errorf("Lighten(%g) = %s, Darken(%g) = %s", amount, a, -amount, b)
		}
	}

	white := MustParseHex("#ffffff")
	if _, _, l := white.Lighten(1).HCL(); l != 1 {
		t.Errorf("luminance %g", l)
	}
	black := MustParseHex("#000000")
	if _, _, l := black.Darken(1).HCL(); l != 0 {
		t.Errorf("luminance %g", l)
	}
}

func TestSaturate(t *testing.T) {
	c := MustParseHex("#cc7722")
	_, ch0, _ := c.HCL()

	_, ch, _ := c.Saturate(1).HCL()
	if math.Abs(ch-ch0-AdjustStep) > 1e-9 {
		t.Errorf("chroma changed by %g", ch-ch0)
	}

	grey := c.Desaturate(10)
	if _, ch, _ := grey.HCL(); ch != 0 {
		t.Errorf("chroma %g", ch)
	}
	if hex := grey.Hex(); hex != "#8c8c8c" {
		t.Errorf("got %s", hex)
	}
}

func TestWithComponents(t *testing.T) {
	c := MustParseHex("#cc7722")
	h, ch, l := c.WithHue(1).WithChroma(0.3).WithLuminance(0.7).HCL()
	got := []float64{h, ch, l}
	want := []float64{1, 0.3, 0.7}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("HCL values (-want +got):\n%s", d)
	}

	if h, _, _ := c.WithHue(-math.Pi / 2).HCL(); math.Abs(h-3*math.Pi/2) > 1e-12 {
		t.Errorf("hue %g", h)
	}
}

func TestRotateHueFullCircle(t *testing.T) {
	c := MustParseHex("#cc7722")
	h0, _, _ := c.HCL()
	h, _, _ := c.RotateHue(2 * math.Pi).HCL()
	if math.Abs(h-h0) > 1e-12 {
		t.Errorf("hue changed from %g to %g", h0, h)
	}
	h, _, _ = c.RotateHue(-4 * math.Pi).HCL()
	if math.Abs(h-h0) > 1e-12 {
		t.Errorf("hue changed from %g to %g", h0, h)
	}
}

func TestOpsIgnoreNonFinite(t *testing.T) {
	c := MustParseHex("#cc7722")
	ops := map[string]func(float64) Color{
		"RotateHue":     c.RotateHue,
		"WithHue":       c.WithHue,
		"WithChroma":    c.WithChroma,
		"WithLuminance": c.WithLuminance,
		"Darken":        c.Darken,
		"Lighten":       c.Lighten,
		"Saturate":      c.Saturate,
		"Desaturate":    c.Desaturate,
	}
	for name, op := range ops {
		for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			if got := op(x); got != c {
				t.Errorf("%s(%g) = %s", name, x, got)
			}
		}
	}
}
