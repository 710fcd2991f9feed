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

// Package function implements the typed subforms of PDF function
// dictionaries: sampled (type 0), exponential interpolation (type 2),
// stitching (type 3), and PostScript calculator (type 4) functions.
package function

import (
	"errors"
	"fmt"

	"github.com/oxpdf/pdf"
)

// Func is a PDF function.
type Func interface {
	// FunctionType returns the value of the /FunctionType entry.
	FunctionType() int

	// Shape returns the number of input and output values of the
	// function.
	Shape() (int, int)

	// Eval evaluates the function.  The number of arguments must match
	// the first value of Shape.
	Eval(x []float64) ([]float64, error)
}

// ErrNotEvaluable is returned by Eval for function types this library can
// represent but not compute, such as PostScript calculator functions.
var ErrNotEvaluable = errors.New("function cannot be evaluated")

// Read extracts a function from a PDF object.  The object must resolve to
// a dictionary or stream with a /FunctionType entry.  Reference cycles in
// the function tree are detected and reported as errors.
func Read(r pdf.Getter, obj pdf.Object) (Func, error) {
	return read(r, obj, pdf.NewCycleChecker())
}

func read(r pdf.Getter, obj pdf.Object, cc *pdf.CycleChecker) (Func, error) {
	if err := cc.Check(obj); err != nil {
		return nil, err
	}
	resolved := pdf.Resolve(r, obj)

	var dict pdf.Dict
	var stm *pdf.Stream
	switch x := resolved.(type) {
	case pdf.Dict:
		dict = x
	case *pdf.Stream:
		stm = x
		dict = x.Dict
	default:
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing function object"),
		}
	}

	ft, ok := pdf.GetInteger(r, dict["FunctionType"])
	if !ok {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing /FunctionType entry"),
		}
	}

	switch ft {
	case 0:
		if stm == nil {
			return nil, &pdf.MalformedFileError{
				Err: errors.New("type 0 function must be a stream"),
			}
		}
		return readType0(r, stm)
	case 2:
		return readType2(r, dict)
	case 3:
		return readType3(r, dict, cc)
	case 4:
		if stm == nil {
			return nil, &pdf.MalformedFileError{
				Err: errors.New("type 4 function must be a stream"),
			}
		}
		return readType4(r, stm)
	default:
		return nil, &pdf.MalformedFileError{
			Err: fmt.Errorf("unsupported function type %d", ft),
		}
	}
}

// floatArray resolves obj to an array of numbers.  Elements which are not
// numbers are dropped.
func floatArray(r pdf.Getter, obj pdf.Object) []float64 {
	arr, ok := pdf.GetArray(r, obj)
	if !ok {
		return nil
	}
	res := make([]float64, 0, len(arr))
	for _, elem := range arr {
		if x, ok := pdf.GetNumber(r, elem); ok {
			res = append(res, x)
		}
	}
	return res
}

// intArray resolves obj to an array of integers.
func intArray(r pdf.Getter, obj pdf.Object) []int {
	arr, ok := pdf.GetArray(r, obj)
	if !ok {
		return nil
	}
	res := make([]int, 0, len(arr))
	for _, elem := range arr {
		if x, ok := pdf.GetInteger(r, elem); ok {
			res = append(res, int(x))
		}
	}
	return res
}

func clip(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// interpolate performs linear interpolation.
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax <= xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}

// clipDomain clips the inputs to the function's domain.
func clipDomain(x []float64, domain []float64) ([]float64, error) {
	if len(x)*2 != len(domain) {
		return nil, fmt.Errorf("expected %d inputs but got %d",
			len(domain)/2, len(x))
	}
	res := make([]float64, len(x))
	for i, xi := range x {
		res[i] = clip(xi, domain[2*i], domain[2*i+1])
	}
	return res, nil
}

// clipRange clips the outputs to the function's range, if one is given.
func clipRange(y []float64, rng []float64) []float64 {
	if len(rng) < 2*len(y) {
		return y
	}
	for i := range y {
		y[i] = clip(y[i], rng[2*i], rng[2*i+1])
	}
	return y
}
