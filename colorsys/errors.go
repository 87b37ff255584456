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
	"fmt"
	"strconv"
)

var (
	// ErrSyntax is reported (via [errors.Is]) for all malformed colour
	// strings.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is reported (via [errors.Is]) for all component values
	// outside their valid range.
	ErrRange = errors.New("value out of range")

	errLength = errors.New("wrong number of hex digits")
	errDigit  = errors.New("invalid hex digit")
)

// ParseError is returned when a hexadecimal colour string cannot be parsed.
type ParseError struct {
	// Input is the string passed to the parser.
	Input string

	// Pos is the byte offset of the first offending character,
	// or -1 if the string as a whole is malformed.
	Pos int

	Err error
}

func (err *ParseError) Error() string {
	tail := ""
	if err.Pos >= 0 {
		tail = " (at byte " + strconv.Itoa(err.Pos) + ")"
	}
	return "invalid hex color " + strconv.Quote(err.Input) + ": " + err.Err.Error() + tail
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Is reports whether target is [ErrSyntax].
func (err *ParseError) Is(target error) bool {
	return target == ErrSyntax
}

// RangeError is returned when a colour component lies outside its valid
// range.
type RangeError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("invalid %s value %g∉[%g,%g]",
		err.Name, err.Value, err.Min, err.Max)
}

func (err *RangeError) Unwrap() error {
	return ErrRange
}

// CheckRGB returns a [*RangeError] if one of the channel values is outside
// the range [0, 1] or is NaN.
func CheckRGB(r, g, b float64) error {
	if err := checkUnit("red", r); err != nil {
		return err
	}
	if err := checkUnit("green", g); err != nil {
		return err
	}
	return checkUnit("blue", b)
}

func checkUnit(name string, x float64) error {
	if !(x >= 0 && x <= 1) {
		return &RangeError{Name: name, Value: x, Min: 0, Max: 1}
	}
	return nil
}
