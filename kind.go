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

package pdf

// Kind identifies the native type of a PDF object.
type Kind int

// The native PDF object types.
const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindReal
	KindName
	KindString
	KindArray
	KindDict
	KindStream
	KindReference

	// KindNumber is never returned by [KindOf].  As an expected kind it
	// matches both Integer and Real values.
	KindNumber
)

var kindNames = map[Kind]string{
	KindNull:      "null",
	KindBool:      "boolean",
	KindInteger:   "integer",
	KindReal:      "real",
	KindName:      "name",
	KindString:    "string",
	KindArray:     "array",
	KindDict:      "dictionary",
	KindStream:    "stream",
	KindReference: "reference",
	KindNumber:    "number",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// KindOf returns the native type of obj.  A nil Object is the PDF null
// object.
func KindOf(obj Object) Kind {
	switch obj.(type) {
	case nil:
		return KindNull
	case Bool:
		return KindBool
	case Integer:
		return KindInteger
	case Real:
		return KindReal
	case Name:
		return KindName
	case String:
		return KindString
	case Array:
		return KindArray
	case Dict:
		return KindDict
	case *Stream:
		return KindStream
	case Reference:
		return KindReference
	default:
		return KindNull
	}
}

// IsNull reports whether obj is the PDF null object.
func IsNull(obj Object) bool { return obj == nil }

// IsBool reports whether obj is a boolean.
func IsBool(obj Object) bool { _, ok := obj.(Bool); return ok }

// IsInteger reports whether obj is an integer.
func IsInteger(obj Object) bool { _, ok := obj.(Integer); return ok }

// IsReal reports whether obj is a real number.
func IsReal(obj Object) bool { _, ok := obj.(Real); return ok }

// IsNumber reports whether obj is an integer or a real number.
func IsNumber(obj Object) bool { return IsInteger(obj) || IsReal(obj) }

// IsName reports whether obj is a name.
func IsName(obj Object) bool { _, ok := obj.(Name); return ok }

// IsString reports whether obj is a string.
func IsString(obj Object) bool { _, ok := obj.(String); return ok }

// IsArray reports whether obj is an array.
func IsArray(obj Object) bool { _, ok := obj.(Array); return ok }

// IsDict reports whether obj is a dictionary.
func IsDict(obj Object) bool { _, ok := obj.(Dict); return ok }

// IsStream reports whether obj is a stream.
func IsStream(obj Object) bool { _, ok := obj.(*Stream); return ok }

// IsReference reports whether obj is an indirect reference.
func IsReference(obj Object) bool { _, ok := obj.(Reference); return ok }

// IsFunction reports whether obj is a PDF function, i.e. a dictionary or
// stream with an integer /FunctionType entry.  Function objects have no
// dedicated native type; the typed subforms are implemented in the
// function package.
func IsFunction(obj Object) bool {
	var d Dict
	switch obj := obj.(type) {
	case Dict:
		d = obj
	case *Stream:
		d = obj.Dict
	default:
		return false
	}
	return IsInteger(d["FunctionType"])
}
