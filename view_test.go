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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldDirect(t *testing.T) {
	d := Dict{"BitsPerCoordinate": Integer(8)}

	obj, ok := Field(d, "BitsPerCoordinate", nil, KindInteger, Integer(0))
	if !ok {
		t.Error("present field reported as absent")
	}
	if obj != Integer(8) {
		t.Errorf("wrong value: expected 8, got %v", obj)
	}
}

func TestFieldMissing(t *testing.T) {
	d := Dict{}

	obj, ok := Field(d, "BitsPerCoordinate", nil, KindInteger, Integer(0))
	if ok {
		t.Error("absent field reported as present")
	}
	if obj != Integer(0) {
		t.Errorf("wrong default: expected 0, got %v", obj)
	}
	if d.Has("BitsPerCoordinate") {
		t.Error("Has is true for an absent field")
	}
}

func TestFieldDanglingReference(t *testing.T) {
	table := ReferenceTable{} // object 5 does not exist
	d := Dict{"Decode": NewReference(5, 0)}

	obj, ok := Field(d, "Decode", table, KindArray, nil)
	if ok {
		t.Error("dangling reference reported as usable")
	}
	if obj != nil {
		t.Errorf("wrong default: expected null, got %v", obj)
	}
	if !d.Has("Decode") {
		t.Error("Has must be true even for a dangling reference")
	}
}

func TestFieldResolvedReference(t *testing.T) {
	want := Array{Integer(1), Integer(2), Integer(3)}
	table := ReferenceTable{NewReference(5, 0): want}
	d := Dict{"Decode": NewReference(5, 0)}

	obj, ok := Field(d, "Decode", table, KindArray, nil)
	if !ok {
		t.Error("resolvable field reported as absent")
	}
	if diff := cmp.Diff(want, obj); diff != "" {
		t.Errorf("wrong value (-want +got):\n%s", diff)
	}
}

func TestFieldDeferredReference(t *testing.T) {
	ref := NewReference(5, 0)
	d := Dict{"Decode": ref}

	// Without a resolver the stored reference is a provisional match.
	obj, ok := Field(d, "Decode", nil, KindArray, nil)
	if !ok {
		t.Error("deferred reference reported as absent")
	}
	if obj != ref {
		t.Errorf("expected the stored reference, got %v", obj)
	}
}

func TestFieldTypeMismatch(t *testing.T) {
	d := Dict{"Decode": Name("Broken")}

	obj, ok := Field(d, "Decode", nil, KindArray, nil)
	if ok {
		t.Error("mismatched field reported as usable")
	}
	if obj != nil {
		t.Errorf("wrong default: expected null, got %v", obj)
	}
	if !d.Has("Decode") {
		t.Error("Has must not depend on the field's type")
	}
}

func TestFieldSingleHop(t *testing.T) {
	// A reference which resolves to another reference must not be
	// chased further.
	table := ReferenceTable{
		NewReference(1, 0): NewReference(2, 0),
		NewReference(2, 0): Integer(7),
	}
	d := Dict{"N": NewReference(1, 0)}

	_, ok := Field(d, "N", table, KindInteger, Integer(0))
	if ok {
		t.Error("two-hop reference chain treated as resolved")
	}
}

func TestViewGetters(t *testing.T) {
	table := ReferenceTable{
		NewReference(1, 0): Integer(16),
	}
	d := Dict{
		"BitsPerCoordinate": NewReference(1, 0),
		"BitsPerComponent":  Integer(8),
		"Gamma":             Real(2.2),
		"Interpolate":       Bool(true),
		"Subtype":           Name("Image"),
		"Title":             String("hello"),
	}
	v := NewView(d, table)

	if x, ok := v.GetInteger("BitsPerCoordinate", 0); !ok || x != 16 {
		t.Errorf("GetInteger via reference: got (%d, %t)", x, ok)
	}
	if x, ok := v.GetInteger("BitsPerComponent", 0); !ok || x != 8 {
		t.Errorf("GetInteger: got (%d, %t)", x, ok)
	}
	if x, ok := v.GetInteger("Missing", 12); ok || x != 12 {
		t.Errorf("GetInteger default: got (%d, %t)", x, ok)
	}
	if x, ok := v.GetReal("Gamma", 0); !ok || x != 2.2 {
		t.Errorf("GetReal: got (%g, %t)", x, ok)
	}
	if x, ok := v.GetNumber("Gamma", 0); !ok || x != 2.2 {
		t.Errorf("GetNumber: got (%g, %t)", x, ok)
	}
	if x, ok := v.GetNumber("BitsPerComponent", 0); !ok || x != 8 {
		t.Errorf("GetNumber on integer: got (%g, %t)", x, ok)
	}
	if x, ok := v.GetBool("Interpolate", false); !ok || !bool(x) {
		t.Errorf("GetBool: got (%t, %t)", x, ok)
	}
	if x, ok := v.GetName("Subtype", ""); !ok || x != "Image" {
		t.Errorf("GetName: got (%q, %t)", x, ok)
	}
	if x, ok := v.GetString("Title", nil); !ok || string(x) != "hello" {
		t.Errorf("GetString: got (%q, %t)", x, ok)
	}
}

func TestFieldNumber(t *testing.T) {
	d := Dict{
		"A": Integer(7),
		"B": Real(1.5),
		"C": Name("x"),
	}
	if _, ok := Field(d, "A", nil, KindNumber, nil); !ok {
		t.Error("Integer rejected as a number")
	}
	if _, ok := Field(d, "B", nil, KindNumber, nil); !ok {
		t.Error("Real rejected as a number")
	}
	if _, ok := Field(d, "C", nil, KindNumber, nil); ok {
		t.Error("Name accepted as a number")
	}
}

func TestGetNumberDiagnostic(t *testing.T) {
	var got []Diagnostic
	d := Dict{"Gamma": Name("Broken")}
	v := NewView(d, nil).OnDiagnostic(func(diag Diagnostic) {
		got = append(got, diag)
	})

	if _, ok := v.GetNumber("Gamma", 0); ok {
		t.Error("mismatched field reported as usable")
	}
	want := []Diagnostic{
		{Field: "Gamma", Expected: KindNumber, Got: KindName},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong diagnostics (-want +got):\n%s", diff)
	}
}

func TestViewDiagnostics(t *testing.T) {
	var got []Diagnostic
	d := Dict{
		"Decode": Name("Broken"),
	}
	v := NewView(d, nil).OnDiagnostic(func(diag Diagnostic) {
		got = append(got, diag)
	})

	if _, ok := v.GetArray("Decode"); ok {
		t.Error("mismatched field reported as usable")
	}
	want := []Diagnostic{
		{Field: "Decode", Expected: KindArray, Got: KindName},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong diagnostics (-want +got):\n%s", diff)
	}

	// absent fields are not data-quality problems
	got = nil
	if _, ok := v.GetArray("Range"); ok {
		t.Error("absent field reported as present")
	}
	if len(got) != 0 {
		t.Errorf("unexpected diagnostics: %v", got)
	}
}

func TestReadFields(t *testing.T) {
	specs := []FieldSpec{
		{Key: "BitsPerCoordinate", Kind: KindInteger, Required: true, Default: Integer(0)},
		{Key: "BitsPerFlag", Kind: KindInteger, Required: true, Default: Integer(0)},
		{Key: "Background", Kind: KindArray, Required: false, Default: Array(nil)},
	}

	var got []Diagnostic
	d := Dict{
		"BitsPerCoordinate": Integer(8),
	}
	v := NewView(d, nil).OnDiagnostic(func(diag Diagnostic) {
		got = append(got, diag)
	})

	fields := v.ReadFields(specs)
	if len(fields) != len(specs) {
		t.Errorf("wrong number of fields: %d != %d",
			len(fields), len(specs))
	}
	if fields["BitsPerCoordinate"] != Integer(8) {
		t.Errorf("wrong value: %v", fields["BitsPerCoordinate"])
	}
	if fields["BitsPerFlag"] != Integer(0) {
		t.Errorf("missing field did not default: %v", fields["BitsPerFlag"])
	}

	want := []Diagnostic{
		{Field: "BitsPerFlag", Expected: KindInteger, Missing: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong diagnostics (-want +got):\n%s", diff)
	}
}
