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

import (
	"sort"

	"golang.org/x/exp/maps"
)

// ReferenceTable maps indirect references to the objects they denote, as
// parsed from the cross-reference structure of a PDF file.
type ReferenceTable map[Reference]Object

// Get returns the object for ref, or nil if the table has no matching
// entry.
func (tbl ReferenceTable) Get(ref Reference) Object {
	return tbl[ref]
}

// Document is an in-memory representation of a PDF document: the table of
// indirect objects together with the trailer dictionary.
//
// A Document is immutable after construction.  All methods are safe for
// concurrent use without locking.
type Document struct {
	objects ReferenceTable
	trailer Dict
	version Version
}

// NewDocument creates a document from an already-parsed object table and
// trailer dictionary.  The caller must not modify table or trailer
// afterwards.  Both arguments may be nil; the resulting document then
// resolves every reference to null.
func NewDocument(table ReferenceTable, trailer Dict) *Document {
	if table == nil {
		table = ReferenceTable{}
	}
	if trailer == nil {
		trailer = Dict{}
	}
	return &Document{
		objects: table,
		trailer: trailer,
	}
}

// Get returns the object denoted by ref, or nil if the document has no
// matching entry.  Document implements the [Getter] interface.
func (d *Document) Get(ref Reference) Object {
	return d.objects.Get(ref)
}

// ResolveReference performs a single step of reference resolution against
// the document's object table.  Non-reference objects, including nil, pass
// through unchanged; a dangling reference yields nil.  See the
// package-level [ResolveReference].
func (d *Document) ResolveReference(obj Object) Object {
	return ResolveReference(d, obj)
}

// Trailer returns the trailer dictionary of the document.
func (d *Document) Trailer() Dict {
	return d.trailer
}

// Version returns the PDF version the document declares.
func (d *Document) Version() Version {
	return d.version
}

// Catalog returns the document catalog, i.e. the dictionary the trailer's
// /Root entry points to.  For documents without a usable catalog an empty
// dictionary is returned.
func (d *Document) Catalog() Dict {
	dict, ok := GetDictTyped(d, d.trailer["Root"], "Catalog")
	if !ok || dict == nil {
		return Dict{}
	}
	return dict
}

// Info returns the document information dictionary, or nil if the document
// has none.
func (d *Document) Info() Dict {
	dict, _ := GetDict(d, d.trailer["Info"])
	return dict
}

// NumObjects returns the number of indirect objects in the document.
func (d *Document) NumObjects() int {
	return len(d.objects)
}

// References returns the keys of the object table, sorted by object and
// generation number.
func (d *Document) References() []Reference {
	refs := maps.Keys(d.objects)
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Number() != refs[j].Number() {
			return refs[i].Number() < refs[j].Number()
		}
		return refs[i].Generation() < refs[j].Generation()
	})
	return refs
}
