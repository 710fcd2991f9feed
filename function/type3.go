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

	"github.com/oxpdf/pdf"
)

// Type3 is a stitching function: the domain is partitioned into
// subdomains, each handled by one of k child functions.
type Type3 struct {
	// Domain gives the interval of allowed inputs.
	Domain []float64

	// Range optionally clips the outputs.
	Range []float64

	// Functions holds the k child functions.
	Functions []Func

	// Bounds holds the k-1 interior subdomain boundaries.
	Bounds []float64

	// Encode maps each subdomain to the domain of its child function.
	Encode []float64
}

// FunctionType implements the [Func] interface.
func (f *Type3) FunctionType() int { return 3 }

// Shape implements the [Func] interface.
func (f *Type3) Shape() (int, int) {
	n := 0
	if len(f.Functions) > 0 {
		_, n = f.Functions[0].Shape()
	}
	if len(f.Range) >= 2 {
		n = len(f.Range) / 2
	}
	return 1, n
}

func readType3(r pdf.Getter, dict pdf.Dict, cc *pdf.CycleChecker) (*Type3, error) {
	f := &Type3{
		Domain: floatArray(r, dict["Domain"]),
		Range:  floatArray(r, dict["Range"]),
		Bounds: floatArray(r, dict["Bounds"]),
		Encode: floatArray(r, dict["Encode"]),
	}
	if len(f.Domain) < 2 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing /Domain entry"),
		}
	}

	funcs, ok := pdf.GetArray(r, dict["Functions"])
	if !ok || len(funcs) == 0 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing /Functions entry"),
		}
	}
	for _, obj := range funcs {
		sub, err := read(r, obj, cc)
		if err != nil {
			return nil, err
		}
		f.Functions = append(f.Functions, sub)
	}

	if len(f.Bounds) != len(f.Functions)-1 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("inconsistent /Bounds length"),
		}
	}
	if len(f.Encode) != 2*len(f.Functions) {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("inconsistent /Encode length"),
		}
	}
	return f, nil
}

// Eval implements the [Func] interface.
func (f *Type3) Eval(x []float64) ([]float64, error) {
	x, err := clipDomain(x, f.Domain[:2])
	if err != nil {
		return nil, err
	}
	t := x[0]

	// locate the subdomain containing t
	k := 0
	for k < len(f.Bounds) && t >= f.Bounds[k] {
		k++
	}

	lo := f.Domain[0]
	hi := f.Domain[1]
	if k > 0 {
		lo = f.Bounds[k-1]
	}
	if k < len(f.Bounds) {
		hi = f.Bounds[k]
	}

	t = interpolate(t, lo, hi, f.Encode[2*k], f.Encode[2*k+1])
	res, err := f.Functions[k].Eval([]float64{t})
	if err != nil {
		return nil, err
	}
	return clipRange(res, f.Range), nil
}
