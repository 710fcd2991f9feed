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

// Package shading reads PDF shading dictionaries.
//
// Shading dictionaries come in seven subtypes.  Instead of one generated
// accessor per field, each subtype is described by a table of field
// descriptors which is applied through the generic typed-field engine of
// the pdf package.  Missing or mistyped fields degrade to their defaults
// and are reported through the diagnostic hook.
package shading

import (
	"github.com/oxpdf/pdf"
	"github.com/oxpdf/pdf/function"
)

// Shading is a PDF shading dictionary of one of the seven subtypes.
type Shading interface {
	// ShadingType returns the value of the /ShadingType entry.
	ShadingType() int
}

// Common holds the entries shared by all shading subtypes.
type Common struct {
	// ColorSpace is the color space of the shading color values, kept
	// as an unparsed object.
	ColorSpace pdf.Object

	// Background (optional) is the color used for areas outside the
	// shading's bounds when the shading is used in a pattern.
	Background []float64

	// BBox (optional) is the shading's bounding box, as four numbers in
	// the shading's target coordinate space.
	BBox []float64

	// AntiAlias controls whether the shading is filtered to prevent
	// aliasing.
	AntiAlias bool
}

// FunctionBased is a type 1 (function-based) shading.
type FunctionBased struct {
	Common

	// Domain is the rectangular domain of the shading functions.
	Domain []float64

	// Matrix maps the domain onto target coordinates.
	Matrix []float64

	// F holds one 2-in, n-out function or n 2-in, 1-out functions.
	F []function.Func
}

// ShadingType implements the [Shading] interface.
func (s *FunctionBased) ShadingType() int { return 1 }

// Axial is a type 2 (axial) shading.
type Axial struct {
	Common

	// Coords holds the axis endpoints as x0, y0, x1, y1.
	Coords []float64

	// Domain is the parametric interval of the shading functions.
	Domain []float64

	// F holds the color functions.
	F []function.Func

	// Extend specifies whether the shading extends beyond the start and
	// end of the axis.
	Extend [2]bool
}

// ShadingType implements the [Shading] interface.
func (s *Axial) ShadingType() int { return 2 }

// Radial is a type 3 (radial) shading.
type Radial struct {
	Common

	// Coords holds the two circles as x0, y0, r0, x1, y1, r1.
	Coords []float64

	// Domain is the parametric interval of the shading functions.
	Domain []float64

	// F holds the color functions.
	F []function.Func

	// Extend specifies whether the shading extends beyond the first and
	// second circle.
	Extend [2]bool
}

// ShadingType implements the [Shading] interface.
func (s *Radial) ShadingType() int { return 3 }

// Mesh is a shading of type 4 (free-form triangle mesh), 5 (lattice-form
// triangle mesh), 6 (Coons patch mesh) or 7 (tensor-product patch mesh).
// The mesh geometry is stored bit-packed in the shading's stream data.
type Mesh struct {
	Common

	// Type is the shading subtype, between 4 and 7.
	Type int

	// BitsPerCoordinate is the number of bits used to represent each
	// vertex coordinate.
	BitsPerCoordinate int

	// BitsPerComponent is the number of bits used to represent each
	// color component.
	BitsPerComponent int

	// BitsPerFlag is the number of bits used to represent the edge flag
	// of each vertex or patch.  Unused for type 5 shadings.
	BitsPerFlag int

	// VerticesPerRow is the number of vertices per lattice row.  Only
	// used for type 5 shadings.
	VerticesPerRow int

	// Decode maps encoded coordinate and color values into their target
	// ranges.
	Decode []float64

	// F optionally maps parametric vertex values to colors.
	F []function.Func

	// Data holds the decoded mesh data.
	Data []byte
}

// ShadingType implements the [Shading] interface.
func (s *Mesh) ShadingType() int { return s.Type }
