// github.com/oxpdf/pdf - a library for reading PDF files
// Copyright (C) 2025  The oxpdf authors
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

package function

import (
	"errors"
	"math"

	"github.com/oxpdf/pdf"
)

// Type2 is an exponential interpolation function: for an input x the
// output is C0 + x^N * (C1 - C0).
type Type2 struct {
	// Domain gives the interval of allowed inputs.
	Domain []float64

	// Range optionally clips the outputs.
	Range []float64

	// C0 is the function result for x = 0.
	C0 []float64

	// C1 is the function result for x = 1.
	C1 []float64

	// N is the interpolation exponent.
	N float64
}

// FunctionType implements the [Func] interface.
func (f *Type2) FunctionType() int { return 2 }

// Shape implements the [Func] interface.
func (f *Type2) Shape() (int, int) {
	return 1, len(f.C0)
}

func readType2(r pdf.Getter, dict pdf.Dict) (*Type2, error) {
	f := &Type2{
		Domain: floatArray(r, dict["Domain"]),
		Range:  floatArray(r, dict["Range"]),
		C0:     floatArray(r, dict["C0"]),
		C1:     floatArray(r, dict["C1"]),
	}
	n, ok := pdf.GetNumber(r, dict["N"])
	if !ok {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing /N entry"),
		}
	}
	f.N = n

	if f.C0 == nil {
		f.C0 = []float64{0}
	}
	if f.C1 == nil {
		f.C1 = []float64{1}
	}
	if len(f.C0) != len(f.C1) {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("inconsistent length of /C0 and /C1 arrays"),
		}
	}
	if len(f.Domain) < 2 {
		f.Domain = []float64{0, 1}
	}
	return f, nil
}

// Eval implements the [Func] interface.
func (f *Type2) Eval(x []float64) ([]float64, error) {
	x, err := clipDomain(x, f.Domain[:2])
	if err != nil {
		return nil, err
	}
	t := math.Pow(x[0], f.N)
	res := make([]float64, len(f.C0))
	for i := range res {
		res[i] = f.C0[i] + t*(f.C1[i]-f.C0[i])
	}
	return clipRange(res, f.Range), nil
}
