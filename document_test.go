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
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveReference(t *testing.T) {
	table := ReferenceTable{
		NewReference(1, 0): Integer(7),
		NewReference(2, 0): NewReference(1, 0),
	}

	// non-references pass through unchanged
	if obj := ResolveReference(table, Integer(3)); obj != Integer(3) {
		t.Errorf("pass-through failed: %v", obj)
	}
	if obj := ResolveReference(table, nil); obj != nil {
		t.Errorf("null did not pass through: %v", obj)
	}

	// a single hop
	if obj := ResolveReference(table, NewReference(1, 0)); obj != Integer(7) {
		t.Errorf("wrong object: %v", obj)
	}

	// exactly one hop, even for chains
	obj := ResolveReference(table, NewReference(2, 0))
	if obj != NewReference(1, 0) {
		t.Errorf("expected the intermediate reference, got %v", obj)
	}

	// dangling references resolve to null
	if obj := ResolveReference(table, NewReference(9, 0)); obj != nil {
		t.Errorf("dangling reference resolved to %v", obj)
	}

	// generation numbers are part of the key
	if obj := ResolveReference(table, NewReference(1, 1)); obj != nil {
		t.Errorf("wrong generation resolved to %v", obj)
	}
}

func TestResolveChain(t *testing.T) {
	table := ReferenceTable{
		NewReference(1, 0): NewReference(2, 0),
		NewReference(2, 0): NewReference(3, 0),
		NewReference(3, 0): Integer(7),
	}
	if obj := Resolve(table, NewReference(1, 0)); obj != Integer(7) {
		t.Errorf("wrong object: %v", obj)
	}
}

func TestResolveLoop(t *testing.T) {
	table := ReferenceTable{
		NewReference(1, 0): NewReference(2, 0),
		NewReference(2, 0): NewReference(1, 0),
	}
	if obj := Resolve(table, NewReference(1, 0)); obj != nil {
		t.Errorf("reference loop resolved to %v", obj)
	}
}

func TestGetHelpers(t *testing.T) {
	table := ReferenceTable{
		NewReference(1, 0): Integer(7),
		NewReference(2, 0): Name("Test"),
	}

	if x, ok := GetInteger(table, NewReference(1, 0)); !ok || x != 7 {
		t.Errorf("GetInteger: got (%d, %t)", x, ok)
	}
	if _, ok := GetInteger(table, NewReference(2, 0)); ok {
		t.Error("GetInteger accepted a Name")
	}
	if _, ok := GetName(table, NewReference(9, 0)); ok {
		t.Error("GetName accepted a dangling reference")
	}
	if x, ok := GetNumber(table, Real(1.5)); !ok || x != 1.5 {
		t.Errorf("GetNumber: got (%g, %t)", x, ok)
	}
	if x, ok := GetNumber(table, NewReference(1, 0)); !ok || x != 7 {
		t.Errorf("GetNumber via reference: got (%g, %t)", x, ok)
	}
}

func TestGetDictTyped(t *testing.T) {
	cases := []struct {
		dict Dict
		ok   bool
	}{
		{Dict{"Type": Name("Catalog")}, true},
		{Dict{}, true}, // missing /Type is accepted
		{Dict{"Type": Name("Page")}, false},
	}
	for i, test := range cases {
		_, ok := GetDictTyped(nil, test.dict, "Catalog")
		if ok != test.ok {
			t.Errorf("%d: expected %t, got %t", i, test.ok, ok)
		}
	}
}

func TestDocument(t *testing.T) {
	catalog := Dict{
		"Type":  Name("Catalog"),
		"Pages": NewReference(2, 0),
	}
	table := ReferenceTable{
		NewReference(1, 0): catalog,
		NewReference(3, 2): Integer(12),
	}
	trailer := Dict{
		"Root": NewReference(1, 0),
		"Size": Integer(4),
	}
	doc := NewDocument(table, trailer)

	if doc.NumObjects() != 2 {
		t.Errorf("wrong object count: %d", doc.NumObjects())
	}
	if diff := cmp.Diff(catalog, doc.Catalog()); diff != "" {
		t.Errorf("wrong catalog (-want +got):\n%s", diff)
	}
	if doc.Info() != nil {
		t.Errorf("unexpected info dict: %v", doc.Info())
	}
	if obj := doc.ResolveReference(NewReference(3, 2)); obj != Integer(12) {
		t.Errorf("wrong object: %v", obj)
	}

	want := []Reference{NewReference(1, 0), NewReference(3, 2)}
	if diff := cmp.Diff(want, doc.References()); diff != "" {
		t.Errorf("wrong references (-want +got):\n%s", diff)
	}
}

func TestConcurrentReaders(t *testing.T) {
	table := ReferenceTable{
		NewReference(1, 0): Dict{
			"Type":  Name("Catalog"),
			"Pages": NewReference(2, 0),
		},
		NewReference(2, 0): Dict{
			"Type":  Name("Pages"),
			"Count": NewReference(3, 0),
		},
		NewReference(3, 0): Integer(12),
	}
	doc := NewDocument(table, Dict{"Root": NewReference(1, 0)})

	// a constructed document must support lock-free concurrent reads
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				catalog := doc.Catalog()
				if catalog["Type"] != Name("Catalog") {
					t.Error("wrong catalog")
					return
				}
				pages, ok := GetDict(doc, catalog["Pages"])
				if !ok {
					t.Error("page tree not found")
					return
				}
				v := NewView(pages, doc)
				if n, ok := v.GetInteger("Count", 0); !ok || n != 12 {
					t.Errorf("wrong page count: (%d, %t)", n, ok)
					return
				}
				if obj := doc.ResolveReference(NewReference(9, 0)); obj != nil {
					t.Errorf("dangling reference resolved to %v", obj)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestEmptyDocument(t *testing.T) {
	doc := NewDocument(nil, nil)
	if obj := doc.Get(NewReference(1, 0)); obj != nil {
		t.Errorf("empty document returned %v", obj)
	}
	if cat := doc.Catalog(); len(cat) != 0 {
		t.Errorf("unexpected catalog: %v", cat)
	}
	if doc.Trailer() == nil {
		t.Error("trailer must not be nil")
	}
}
