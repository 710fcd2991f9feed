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

package shading

import (
	"errors"
	"fmt"

	"github.com/oxpdf/pdf"
	"github.com/oxpdf/pdf/function"
)

// meshFields describes the mesh-specific entries of type 4, 6 and 7
// shading dictionaries, PDF 32000-1:2008 tables 80, 84 and 85.
var meshFields = []pdf.FieldSpec{
	{Key: "BitsPerCoordinate", Kind: pdf.KindInteger, Required: true, Default: pdf.Integer(0)},
	{Key: "BitsPerComponent", Kind: pdf.KindInteger, Required: true, Default: pdf.Integer(0)},
	{Key: "BitsPerFlag", Kind: pdf.KindInteger, Required: true, Default: pdf.Integer(0)},
	{Key: "Decode", Kind: pdf.KindArray, Required: true, Default: pdf.Array(nil)},
}

// latticeFields is the type 5 variant of meshFields: the edge flag is
// replaced by the row width.
var latticeFields = []pdf.FieldSpec{
	{Key: "BitsPerCoordinate", Kind: pdf.KindInteger, Required: true, Default: pdf.Integer(0)},
	{Key: "BitsPerComponent", Kind: pdf.KindInteger, Required: true, Default: pdf.Integer(0)},
	{Key: "VerticesPerRow", Kind: pdf.KindInteger, Required: true, Default: pdf.Integer(0)},
	{Key: "Decode", Kind: pdf.KindArray, Required: true, Default: pdf.Array(nil)},
}

// Extract reads a shading dictionary.  diag may be nil; if given, it
// receives a diagnostic for every missing required field and type
// mismatch, while the extracted shading keeps the documented defaults.
func Extract(r pdf.Getter, obj pdf.Object, diag pdf.DiagnosticFunc) (Shading, error) {
	resolved := pdf.Resolve(r, obj)
	if resolved == nil {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing shading object"),
		}
	}

	var dict pdf.Dict
	stm, isStream := resolved.(*pdf.Stream)
	if isStream {
		dict = stm.Dict
	} else if d, isDict := resolved.(pdf.Dict); isDict {
		dict = d
	} else {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("shading must be a dictionary or stream"),
		}
	}

	st, ok := pdf.GetInteger(r, dict["ShadingType"])
	if !ok {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("missing /ShadingType entry"),
		}
	}

	v := pdf.NewView(dict, r).OnDiagnostic(diag)

	switch st {
	case 1:
		return extractType1(r, v)
	case 2:
		return extractType2(r, v)
	case 3:
		return extractType3(r, v)
	case 4, 6, 7:
		if !isStream {
			return nil, &pdf.MalformedFileError{
				Err: fmt.Errorf("type %d shading must be a stream", st),
			}
		}
		return extractMesh(r, v, stm, int(st))
	case 5:
		if !isStream {
			return nil, &pdf.MalformedFileError{
				Err: errors.New("type 5 shading must be a stream"),
			}
		}
		return extractMesh(r, v, stm, 5)
	default:
		return nil, &pdf.MalformedFileError{
			Err: fmt.Errorf("unsupported shading type %d", st),
		}
	}
}

func extractCommon(r pdf.Getter, v *pdf.View) Common {
	c := Common{}
	c.ColorSpace = pdf.Resolve(r, v.Raw("ColorSpace"))
	if bg, ok := v.GetArray("Background"); ok {
		c.Background = floatArray(r, bg)
	}
	if bbox, ok := v.GetArray("BBox"); ok && len(bbox) == 4 {
		c.BBox = floatArray(r, bbox)
	}
	aa, _ := v.GetBool("AntiAlias", false)
	c.AntiAlias = bool(aa)
	return c
}

// extractFunctions reads the /Function entry, which holds either a single
// function or an array of functions.
func extractFunctions(r pdf.Getter, v *pdf.View) ([]function.Func, error) {
	obj := v.Raw("Function")
	if obj == nil {
		return nil, nil
	}
	if arr, ok := pdf.GetArray(r, obj); ok {
		var res []function.Func
		for _, elem := range arr {
			f, err := function.Read(r, elem)
			if err != nil {
				return nil, err
			}
			res = append(res, f)
		}
		return res, nil
	}
	f, err := function.Read(r, obj)
	if err != nil {
		return nil, err
	}
	return []function.Func{f}, nil
}

func extractExtend(r pdf.Getter, v *pdf.View) [2]bool {
	var res [2]bool
	arr, ok := v.GetArray("Extend")
	if !ok || len(arr) != 2 {
		return res
	}
	for i := range res {
		if b, ok := pdf.GetBool(r, arr[i]); ok {
			res[i] = bool(b)
		}
	}
	return res
}

func extractType1(r pdf.Getter, v *pdf.View) (*FunctionBased, error) {
	s := &FunctionBased{Common: extractCommon(r, v)}

	if domain, ok := v.GetArray("Domain"); ok && len(domain) == 4 {
		s.Domain = floatArray(r, domain)
	} else {
		s.Domain = []float64{0, 1, 0, 1}
	}
	if matrix, ok := v.GetArray("Matrix"); ok && len(matrix) == 6 {
		s.Matrix = floatArray(r, matrix)
	} else {
		s.Matrix = []float64{1, 0, 0, 1, 0, 0}
	}

	var err error
	s.F, err = extractFunctions(r, v)
	return s, err
}

func extractType2(r pdf.Getter, v *pdf.View) (*Axial, error) {
	s := &Axial{Common: extractCommon(r, v)}

	coords, ok := v.GetArray("Coords")
	if !ok || len(coords) != 4 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("invalid /Coords entry"),
		}
	}
	s.Coords = floatArray(r, coords)
	s.Domain = extractDomain(r, v)
	s.Extend = extractExtend(r, v)

	var err error
	s.F, err = extractFunctions(r, v)
	return s, err
}

func extractType3(r pdf.Getter, v *pdf.View) (*Radial, error) {
	s := &Radial{Common: extractCommon(r, v)}

	coords, ok := v.GetArray("Coords")
	if !ok || len(coords) != 6 {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("invalid /Coords entry"),
		}
	}
	s.Coords = floatArray(r, coords)
	s.Domain = extractDomain(r, v)
	s.Extend = extractExtend(r, v)

	var err error
	s.F, err = extractFunctions(r, v)
	return s, err
}

func extractDomain(r pdf.Getter, v *pdf.View) []float64 {
	if domain, ok := v.GetArray("Domain"); ok && len(domain) == 2 {
		return floatArray(r, domain)
	}
	return []float64{0, 1}
}

func extractMesh(r pdf.Getter, v *pdf.View, stm *pdf.Stream, shadingType int) (*Mesh, error) {
	data, err := stm.Decode(r)
	if err != nil {
		return nil, err
	}

	s := &Mesh{
		Common: extractCommon(r, v),
		Type:   shadingType,
		Data:   data,
	}

	specs := meshFields
	if shadingType == 5 {
		specs = latticeFields
	}
	fields := v.ReadFields(specs)

	s.BitsPerCoordinate = intField(fields, "BitsPerCoordinate")
	s.BitsPerComponent = intField(fields, "BitsPerComponent")
	if shadingType == 5 {
		s.VerticesPerRow = intField(fields, "VerticesPerRow")
	} else {
		s.BitsPerFlag = intField(fields, "BitsPerFlag")
	}
	if decode, ok := fields["Decode"].(pdf.Array); ok {
		s.Decode = floatArray(r, decode)
	}

	s.F, err = extractFunctions(r, v)
	return s, err
}

func intField(fields map[pdf.Name]pdf.Object, key pdf.Name) int {
	if x, ok := fields[key].(pdf.Integer); ok {
		return int(x)
	}
	return 0
}

// floatArray converts an already-extracted array to a slice of numbers,
// resolving references and dropping non-numeric elements.
func floatArray(r pdf.Getter, arr pdf.Array) []float64 {
	if arr == nil {
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
