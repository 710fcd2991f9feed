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

import "errors"

// Getter provides access to the indirect objects of a PDF document.
//
// Implementations must be safe for concurrent use, and Get must never
// panic: a reference with no matching object yields nil.
type Getter interface {
	// Get returns the object denoted by ref, or nil if the document has
	// no matching entry.
	Get(ref Reference) Object
}

// maxChainLength bounds reference-to-reference chains followed by
// [Resolve].  Longer chains are treated as malformed and resolve to null.
const maxChainLength = 16

// ResolveReference performs a single step of reference resolution.
//
// If obj is a [Reference], the corresponding object is looked up in r and
// returned; a dangling reference yields nil.  Any other object, including
// nil, is returned unchanged.  The result of resolving a chained reference
// may itself be a Reference; callers which need transitive resolution must
// use [Resolve].
func ResolveReference(r Getter, obj Object) Object {
	ref, isReference := obj.(Reference)
	if !isReference {
		return obj
	}
	if r == nil {
		return nil
	}
	return r.Get(ref)
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function follows the chain of references
// until a non-reference object is reached, and returns that object.  If
// obj is not a Reference, it is returned unchanged.  Dangling references
// and chains longer than an implementation bound resolve to nil.
func Resolve(r Getter, obj Object) Object {
	count := 0
	for {
		_, isReference := obj.(Reference)
		if !isReference {
			return obj
		}
		count++
		if count > maxChainLength {
			return nil
		}
		obj = ResolveReference(r, obj)
	}
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, ok bool) {
	obj = Resolve(r, obj)
	if obj == nil {
		return x, false
	}
	x, ok = obj.(T)
	return x, ok
}

// Helper functions for reading objects of a specific type.  Each of these
// functions calls [Resolve] on the object before attempting to convert it
// to the desired type.  A null object, a dangling reference, or an object
// of the wrong type yields the zero value and ok == false.
//
// The signature of these functions is
//
//	func GetT(r Getter, obj Object) (x T, ok bool)
//
// where T is the type of the object to be returned.
var (
	GetArray   = resolveAndCast[Array]
	GetBool    = resolveAndCast[Bool]
	GetDict    = resolveAndCast[Dict]
	GetInteger = resolveAndCast[Integer]
	GetName    = resolveAndCast[Name]
	GetReal    = resolveAndCast[Real]
	GetStream  = resolveAndCast[*Stream]
	GetString  = resolveAndCast[String]
)

// GetNumber resolves obj and converts it to a float64.  Both Integer and
// Real objects are accepted.
func GetNumber(r Getter, obj Object) (float64, bool) {
	switch x := Resolve(r, obj).(type) {
	case Integer:
		return float64(x), true
	case Real:
		return float64(x), true
	default:
		return 0, false
	}
}

// ErrCycle is returned when a recursive structure contains a reference
// cycle.
var ErrCycle = &MalformedFileError{
	Err: errors.New("cycle in recursive structure"),
}

// A CycleChecker detects reference cycles while a recursive structure,
// such as a function tree, is being read.  The zero value is not usable;
// use [NewCycleChecker].
type CycleChecker struct {
	seen map[Reference]bool
}

// NewCycleChecker creates a CycleChecker with an empty set of seen
// references.
func NewCycleChecker() *CycleChecker {
	return &CycleChecker{seen: make(map[Reference]bool)}
}

// Check records obj if it is a Reference.  The first visit returns nil;
// a repeated visit returns [ErrCycle].  Non-reference objects always pass.
// Call Check before recursing into an object which may contain references
// back to an ancestor.
func (s *CycleChecker) Check(obj Object) error {
	ref, ok := obj.(Reference)
	if !ok {
		return nil
	}
	if s.seen[ref] {
		return ErrCycle
	}
	s.seen[ref] = true
	return nil
}

// GetDictTyped resolves obj to a dictionary and checks that the /Type
// entry, if present, equals tp.
func GetDictTyped(r Getter, obj Object, tp Name) (Dict, bool) {
	dict, ok := GetDict(r, obj)
	if !ok {
		return nil, false
	}
	haveTp, ok := dict["Type"].(Name)
	if ok && haveTp != tp {
		return nil, false
	}
	return dict, true
}
