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
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

func TestMatrixInverse(t *testing.T) {
	for i := range 3 {
		var e [3]float64
		e[i] = 1
		xyz := mulVec(&rgbToXYZ, e)
		back := mulVec(&xyzToRGB, xyz)
		if d := cmp.Diff(e[:], back[:], cmpopts.EquateApprox(0, 1e-14)); d != "" {
			t.Errorf("column %d (-want +got):\n%s", i, d)
		}
	}
}

func TestWhitePoint(t *testing.T) {
	want := []float64{0.95047, 1, 1.08883}
	got := WhitePointD65[:]
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-5)); d != "" {
		t.Errorf("white point (-want +got):\n%s", d)
	}
}

func TestGamma(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := float64(i) / 100
		w := LinearToSRGB(SRGBToLinear(v))
		if math.Abs(v-w) > 1e-12 {
			t.Errorf("gamma round trip %g -> %g", v, w)
		}
	}
}

func TestHCLKnownValues(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b float64
		h, c, l float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 1, 1, 1, 0, 0, 1},
		{"gray", 0.5, 0.5, 0.5, 0, 0, 0.533889647411143},
		{"ochre", 0xCC / 255.0, 0x77 / 255.0, 0x22 / 255.0, 0.6373615, 0.8659909, 0.5817915},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, c, l, err := RGBToHCL(tc.r, tc.g, tc.b)
			if err != nil {
				t.Fatal(err)
			}
			want := []float64{tc.h, tc.c, tc.l}
			got := []float64{h, c, l}
			if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
				t.Errorf("RGBToHCL (-want +got):\n%s", d)
			}
		})
	}
}

func TestGrayHasZeroHue(t *testing.T) {
	for i := 0; i <= 255; i++ {
		v := float64(i) / 255
		h, c, _, err := RGBToHCL(v, v, v)
		if err != nil {
			t.Fatal(err)
		}
		if h != 0 || c >= AchromaticChroma {
			t.Errorf("gray %d: hue=%g chroma=%g", i, h, c)
		}
	}
}

func TestHCLRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	check := func(r, g, b float64) {
		t.Helper()
		h, c, l, err := RGBToHCL(r, g, b)
		if err != nil {
			t.Fatal(err)
		}
		r2, g2, b2, inGamut := HCLToRGBGamut(h, c, l)
		if !inGamut {
			t.Errorf("RGB(%g, %g, %g) reported out of gamut", r, g, b)
		}
		if math.Abs(r-r2) > 1e-6 || math.Abs(g-g2) > 1e-6 || math.Abs(b-b2) > 1e-6 {
			t.Errorf("RGB(%g, %g, %g) -> HCL(%g, %g, %g) -> RGB(%g, %g, %g)",
				r, g, b, h, c, l, r2, g2, b2)
		}
	}

	corners := []float64{0, 1}
	for _, r := range corners {
		for _, g := range corners {
			for _, b := range corners {
				check(r, g, b)
			}
		}
	}
	for range 10000 {
		check(rng.Float64(), rng.Float64(), rng.Float64())
	}
}

func TestHCLOutOfGamut(t *testing.T) {
	cases := []struct {
		h, c, l float64
	}{
		{1.1698979538899317, 0.8638193887593605, 0.5836299450432034},
		{0, 5, 0.5},
		{4, 3, 0.01},
		{2, 1, 0.99},
		{0.3, 100, 1},
	}
	for _, tc := range cases {
		r, g, b, inGamut := HCLToRGBGamut(tc.h, tc.c, tc.l)
		if inGamut {
			t.Errorf("HCL(%g, %g, %g) reported in gamut", tc.h, tc.c, tc.l)
		}
		if CheckRGB(r, g, b) != nil {
			t.Errorf("HCL(%g, %g, %g) -> RGB(%g, %g, %g) outside [0,1]",
				tc.h, tc.c, tc.l, r, g, b)
		}
		r2, g2, b2 := HCLToRGB(tc.h, tc.c, tc.l)
		if r != r2 || g != g2 || b != b2 {
			t.Errorf("clipping is not deterministic")
		}
	}

	// A saturated yellow-orange outside the gamut.
	r, g, b := HCLToRGB(1.1698979538899317, 0.8638193887593605, 0.5836299450432034)
	want := []float64{0.68, 0.54, 0}
	if d := cmp.Diff(want, []float64{r, g, b}, cmpopts.EquateApprox(0, 7e-3)); d != "" {
		t.Errorf("clipped colour (-want +got):\n%s", d)
	}
}

func TestHCLClampsComponents(t *testing.T) {
	cases := []struct {
		name    string
		h, c, l float64
		want    []float64
	}{
		{"negative chroma", 1, -0.5, 0.5, []float64{0.466327, 0.466327, 0.466327}},
		{"luminance above 1", 2, 0, 7, []float64{1, 1, 1}},
		{"luminance below 0", 2, 0.3, -1, []float64{0, 0, 0}},
		{"NaN chroma", 1, math.NaN(), 0, []float64{0, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := HCLToRGB(tc.h, tc.c, tc.l)
			got := []float64{r, g, b}
			if d := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-5)); d != "" {
				t.Errorf("HCLToRGB(%g, %g, %g) (-want +got):\n%s", tc.h, tc.c, tc.l, d)
			}
		})
	}
}

func TestNormalizeHue(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{1, 1},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{7 * math.Pi, math.Pi},
		{-1e-300, 0},
		{-100, -100 + 16*2*math.Pi},
	}
	for _, tc := range cases {
		got := NormalizeHue(tc.in)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizeHue(%g) = %g, want %g", tc.in, got, tc.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeHue(%g) = %g outside [0, 2π)", tc.in, got)
		}
	}
	if h := NormalizeHue(math.Inf(1)); !math.IsNaN(h) {
		t.Errorf("NormalizeHue(+Inf) = %g, want NaN", h)
	}
}

func TestRGBToHCLRange(t *testing.T) {
	cases := [][3]float64{
		{-0.1, 0, 0},
		{0, 1.5, 0},
		{0, 0, math.NaN()},
	}
	for _, tc := range cases {
		_, _, _, err := RGBToHCL(tc[0], tc[1], tc[2])
		if !errors.Is(err, ErrRange) {
			t.Errorf("RGBToHCL(%v): got %v, want range error", tc, err)
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("RGBToHCL(%v): error is %T, want *RangeError", tc, err)
		}
	}
}

// TestLuvReference compares the CIELUV conversion with go-colorful, which
// uses slightly different matrix coefficients.
func TestLuvReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		r, g, b := rng.Float64(), rng.Float64(), rng.Float64()
		l, u, v := RGBToLuv(r, g, b)
		l2, u2, v2 := colorful.Color{R: r, G: g, B: b}.Luv()
		want := []float64{l2, u2, v2}
		got := []float64{l, u, v}
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 2e-3)); d != "" {
			t.Fatalf("RGB(%g, %g, %g) (-colorful +ours):\n%s", r, g, b, d)
		}
	}
}

func TestHCLZeroLuminance(t *testing.T) {
	for _, tc := range [][3]float64{
		{0.2125, 1.79, 0},
		{1, 0.5, 0},
		{4, 3, -1},
		{1, 0.5, math.NaN()},
	} {
		l, u, v := HCLToLuv(tc[0], tc[1], tc[2])
		if l != 0 || u != 0 || v != 0 {
			t.Errorf("HCLToLuv(%g, %g, %g) = (%g, %g, %g), want black",
				tc[0], tc[1], tc[2], l, u, v)
		}
		r, g, b, inGamut := HCLToRGBGamut(tc[0], tc[1], tc[2])
		if r != 0 || g != 0 || b != 0 || !inGamut {
			t.Errorf("HCLToRGBGamut(%g, %g, %g) = (%g, %g, %g, %t)",
				tc[0], tc[1], tc[2], r, g, b, inGamut)
		}
	}
}

func TestLuvRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 1000 {
		x, y, z := RGBToXYZ(rng.Float64(), rng.Float64(), rng.Float64())
		x2, y2, z2 := LuvToXYZ(XYZToLuv(x, y, z))
		if d := cmp.Diff([]float64{x, y, z}, []float64{x2, y2, z2}, cmpopts.EquateApprox(1e-9, 1e-12)); d != "" {
			t.Fatalf("XYZ round trip (-want +got):\n%s", d)
		}
	}
}

func FuzzHCLRoundTrip(f *testing.F) {
	f.Add(0.0, 0.0, 0.0)
	f.Add(1.0, 1.0, 1.0)
	f.Add(0.8, 0.466667, 0.133333)
	f.Fuzz(func(t *testing.T, r, g, b float64) {
		if CheckRGB(r, g, b) != nil {
			t.Skip("invalid RGB")
		}
		h, c, l, err := RGBToHCL(r, g, b)
		if err != nil {
			t.Fatal(err)
		}
		if h < 0 || h >= 2*math.Pi {
			t.Errorf("hue %g outside [0, 2π)", h)
		}
		r2, g2, b2 := HCLToRGB(h, c, l)
		if math.Abs(r-r2) > 1e-6 || math.Abs(g-g2) > 1e-6 || math.Abs(b-b2) > 1e-6 {
			t.Errorf("RGB(%g, %g, %g) -> RGB(%g, %g, %g)", r, g, b, r2, g2, b2)
		}
	})
}
