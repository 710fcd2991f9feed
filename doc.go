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

// Package pdf implements the native object model of PDF files.
//
// A PDF file is a graph of heterogeneous objects: booleans, numbers, names,
// strings, arrays, dictionaries, streams, and indirect references.  This
// package represents the graph in memory, resolves indirect references, and
// provides typed, non-failing access to dictionary entries.
//
// A [Document] can be read from a file:
//
//	doc, err := pdf.Open("in.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	catalog := doc.Catalog()
//
// Dictionary entries are accessed through views with per-field expected
// types and defaults:
//
//	v := pdf.NewView(dict, doc)
//	bits, ok := v.GetInteger("BitsPerCoordinate", 0)
//
// Field access never fails on malformed input: a missing, mistyped, or
// dangling entry yields the caller's default together with a false presence
// flag.  All state reachable from a constructed Document is immutable, so
// documents can be shared between goroutines without locking.
package pdf
