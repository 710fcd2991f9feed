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
	"bytes"
	"errors"

	"github.com/oxpdf/pdf"
)

// Type4 is a PostScript calculator function.  The function program is
// stored verbatim; this library does not interpret PostScript and Eval
// returns [ErrNotEvaluable].
type Type4 struct {
	// Domain gives the interval of allowed inputs for each dimension.
	Domain []float64

	// Range gives the interval of outputs for each dimension.
	Range []float64

	// Program holds the calculator program, including the outer braces.
	Program []byte
}

// FunctionType implements the [Func] interface.
func (f *Type4) FunctionType() int { return 4 }

// Shape implements the [Func] interface.
func (f *Type4) Shape() (int, int) {
	return len(f.Domain) / 2, len(f.Range) / 2
}

func readType4(r pdf.Getter, stm *pdf.Stream) (*Type4, error) {
	program, err := stm.Decode(r)
	if err != nil {
		return nil, err
	}

	f := &Type4{
		Domain:  floatArray(r, stm.Dict["Domain"]),
		Range:   floatArray(r, stm.Dict["Range"]),
		Program: program,
	}
	if len(f.Domain) < 2 || len(f.Range) < 2 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("invalid type 4 function dimensions"),
		}
	}
	trimmed := bytes.TrimSpace(program)
	if len(trimmed) == 0 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("malformed calculator program"),
		}
	}
	return f, nil
}

// Eval implements the [Func] interface.
func (f *Type4) Eval(x []float64) ([]float64, error) {
	return nil, ErrNotEvaluable
}
