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
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(42), "42"},
		{Integer(-1), "-1"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("A#B"), "/A#23B"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Dict{"Length": Integer(5)}, "<<\n/Length 5\n>>"},
		{NewReference(12, 0), "12 0 R"},
		{NewReference(3, 7), "3 7 R"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("wrong format, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestReference(t *testing.T) {
	cases := []struct {
		number     uint32
		generation uint16
	}{
		{0, 0},
		{1, 0},
		{12, 7},
		{4294967295, 65535},
	}
	for _, test := range cases {
		ref := NewReference(test.number, test.generation)
		if ref.Number() != test.number {
			t.Errorf("wrong object number: %d != %d",
				ref.Number(), test.number)
		}
		if ref.Generation() != test.generation {
			t.Errorf("wrong generation number: %d != %d",
				ref.Generation(), test.generation)
		}
	}
}

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"\000\011\n\f\r",
		"ein Bär",
		"o țesătură",
		"中文",
		"日本語",
	}
	for _, test := range cases {
		enc := TextString(test)
		out := enc.AsTextString()
		if out != test {
			t.Errorf("wrong text: %q != %q", out, test)
		}
	}
}

func TestDateString(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	cases := []string{
		"D:19981223195200-08'00'",
		"D:20000101000000Z",
		"D:20220518165952+02'00'",
	}
	for _, test := range cases {
		s := String(test)
		t1, err := s.AsDate()
		if err != nil {
			t.Error(err)
			continue
		}
		s2 := Date(t1)
		t2, err := s2.AsDate()
		if err != nil {
			t.Error(err)
			continue
		}
		if !t1.Equal(t2) {
			t.Errorf("wrong date: %s != %s", t1, t2)
		}
	}

	t1 := time.Date(1998, 12, 23, 19, 52, 0, 0, PST)
	t2, err := String("D:19981223195200-08'00'").AsDate()
	if err != nil {
		t.Fatal(err)
	}
	if !t1.Equal(t2) {
		t.Errorf("wrong date: %s != %s", t1, t2)
	}
}

func TestDictHas(t *testing.T) {
	d := Dict{
		"A": Integer(1),
		"B": NewReference(999, 0),
		"C": nil,
	}
	if !d.Has("A") {
		t.Error("entry A not found")
	}
	if !d.Has("B") {
		t.Error("entry B not found")
	}
	if d.Has("C") {
		t.Error("null entry C reported as present")
	}
	if d.Has("D") {
		t.Error("missing entry D reported as present")
	}
}
