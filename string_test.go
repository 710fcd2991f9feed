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
	"testing"
)

func TestPdfDocEncoding(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"Größe",
		"• bullet",
		"€ 12,50",
	}
	for _, test := range cases {
		enc, ok := pdfDocEncode(test)
		if !ok {
			t.Errorf("%q not encodable", test)
			continue
		}
		out := pdfDocDecode(enc)
		if out != test {
			t.Errorf("wrong text: %q != %q", out, test)
		}
	}

	// characters outside PDFDocEncoding
	for _, test := range []string{"中文", "↔"} {
		if _, ok := pdfDocEncode(test); ok {
			t.Errorf("%q unexpectedly encodable", test)
		}
	}
}

func TestUTF16(t *testing.T) {
	cases := []string{
		"hello",
		"中文",
		"\U0001F600", // surrogate pair
	}
	for _, test := range cases {
		enc := utf16Encode(test)
		if !isUTF16(enc) {
			t.Errorf("%q: missing byte order mark", test)
			continue
		}
		out := utf16Decode(enc[2:])
		if out != test {
			t.Errorf("wrong text: %q != %q", out, test)
		}
	}
}

func TestTextStringEncodingChoice(t *testing.T) {
	// plain ASCII uses PDFDocEncoding, not UTF-16
	enc := TextString("hello")
	if !bytes.Equal(enc, []byte("hello")) {
		t.Errorf("unexpected encoding: % x", enc)
	}

	// CJK text forces UTF-16BE with a BOM
	enc = TextString("中文")
	if !isUTF16(enc) {
		t.Errorf("expected UTF-16: % x", enc)
	}
}
