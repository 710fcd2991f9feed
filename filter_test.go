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
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func deflate(data []byte) []byte {
	buf := &bytes.Buffer{}
	w := zlib.NewWriter(buf)
	_, err := w.Write(data)
	if err != nil {
		panic(err)
	}
	err = w.Close()
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestFilters(t *testing.T) {
	stm := &Stream{
		Dict: Dict{
			"Filter": Array{Name("ASCIIHexDecode"), Name("FlateDecode")},
			"DecodeParms": Array{
				nil,
				Dict{"Predictor": Integer(1)},
			},
		},
	}
	fi := stm.Filters(nil)
	if len(fi) != 2 {
		t.Fatalf("wrong number of filters: %d", len(fi))
	}
	if fi[0].Name != "ASCIIHexDecode" || fi[0].Parms != nil {
		t.Errorf("wrong first filter: %v", fi[0])
	}
	if fi[1].Name != "FlateDecode" || fi[1].Parms == nil {
		t.Errorf("wrong second filter: %v", fi[1])
	}

	// a single name is also allowed
	stm = &Stream{Dict: Dict{"Filter": Name("FlateDecode")}}
	fi = stm.Filters(nil)
	if len(fi) != 1 || fi[0].Name != "FlateDecode" {
		t.Errorf("wrong filters: %v", fi)
	}

	// no filter
	stm = &Stream{Dict: Dict{}}
	if fi := stm.Filters(nil); fi != nil {
		t.Errorf("unexpected filters: %v", fi)
	}
}

func TestDecodeFlate(t *testing.T) {
	want := []byte("Hello, world!  This text makes the round trip.")
	stm := &Stream{
		Dict: Dict{"Filter": Name("FlateDecode")},
		Raw:  deflate(want),
	}
	got, err := stm.Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("wrong data: %q != %q", got, want)
	}
}

func TestDecodeNoFilter(t *testing.T) {
	want := []byte{1, 2, 3}
	stm := &Stream{Dict: Dict{}, Raw: want}
	got, err := stm.Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("wrong data: %v != %v", got, want)
	}
}

func TestDecodeASCIIHex(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"68656c6c6f>", "hello"},
		{"68 65 6C 6C 6F>", "hello"},
		{"68656C7>", "help"}, // odd digit count pads with 0
		{"", ""},
	}
	for _, test := range cases {
		got, err := decodeASCIIHex([]byte(test.in))
		if err != nil {
			t.Errorf("%q: %s", test.in, err)
			continue
		}
		if string(got) != test.out {
			t.Errorf("wrong data: %q != %q", got, test.out)
		}
	}

	_, err := decodeASCIIHex([]byte("6x>"))
	if err == nil {
		t.Error("invalid character not detected")
	}
}

func TestDecodeASCII85(t *testing.T) {
	stm := &Stream{
		Dict: Dict{"Filter": Name("ASCII85Decode")},
		Raw:  []byte("<~F*2M7~>"),
	}
	got, err := stm.Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "sure" {
		t.Errorf("wrong data: %q", got)
	}
}

func TestDecodeRunLength(t *testing.T) {
	cases := []struct {
		in  []byte
		out []byte
	}{
		{[]byte{2, 'a', 'b', 'c', 128}, []byte("abc")},
		{[]byte{255, 'x', 128}, []byte("xx")},
		{[]byte{254, 'y', 0, 'z', 128}, []byte("yyyz")},
		{[]byte{128}, nil},
	}
	for i, test := range cases {
		got, err := decodeRunLength(test.in)
		if err != nil {
			t.Errorf("%d: %s", i, err)
			continue
		}
		if !bytes.Equal(got, test.out) {
			t.Errorf("%d: wrong data: %q != %q", i, got, test.out)
		}
	}
}

func TestPNGPredictor(t *testing.T) {
	// two rows of four bytes, filter types "sub" and "up"
	encoded := []byte{
		1, 10, 5, 5, 5, // sub: 10, 15, 20, 25
		2, 1, 1, 1, 1, // up: 11, 16, 21, 26
	}
	parms := Dict{
		"Predictor": Integer(15),
		"Columns":   Integer(4),
	}
	got, err := applyPredictor(encoded, parms, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{10, 15, 20, 25, 11, 16, 21, 26}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong data (-want +got):\n%s", diff)
	}
}

func TestTIFFPredictor(t *testing.T) {
	data := []byte{10, 5, 5, 5}
	parms := Dict{
		"Predictor": Integer(2),
		"Columns":   Integer(4),
	}
	got, err := applyPredictor(data, parms, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{10, 15, 20, 25}
	if !bytes.Equal(got, want) {
		t.Errorf("wrong data: %v != %v", got, want)
	}
}

func TestDecodeFilterChain(t *testing.T) {
	want := []byte("chained filters")
	hexEncoded := []byte{}
	for _, c := range deflate(want) {
		hexEncoded = append(hexEncoded, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	hexEncoded = append(hexEncoded, '>')

	stm := &Stream{
		Dict: Dict{
			"Filter": Array{Name("ASCIIHexDecode"), Name("FlateDecode")},
		},
		Raw: hexEncoded,
	}
	got, err := stm.Decode(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("wrong data: %q != %q", got, want)
	}
}

const hexDigits = "0123456789abcdef"
