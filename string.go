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
	"errors"
	"unicode/utf16"
)

var errNoDate = errors.New("not a valid PDF date string")

func isUTF16(s String) bool {
	return len(s) >= 2 && s[0] == 0xFE && s[1] == 0xFF
}

func utf16Decode(s String) string {
	var u []uint16
	for i := 0; i < len(s)-1; i += 2 {
		u = append(u, uint16(s[i])<<8|uint16(s[i+1]))
	}
	return string(utf16.Decode(u))
}

func utf16Encode(s string) String {
	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(enc)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range enc {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}

// pdfDocSpecial holds the code points where PDFDocEncoding deviates from
// Latin-1, from appendix D of the PDF specification.
var pdfDocSpecial = map[byte]rune{
	0x18: '˘', // breve
	0x19: 'ˇ', // caron
	0x1A: 'ˆ', // circumflex
	0x1B: '˙', // dot above
	0x1C: '˝', // double acute
	0x1D: '˛', // ogonek
	0x1E: '˚', // ring above
	0x1F: '˜', // small tilde
	0x80: '•', // bullet
	0x81: '†', // dagger
	0x82: '‡', // double dagger
	0x83: '…', // ellipsis
	0x84: '—', // em dash
	0x85: '–', // en dash
	0x86: 'ƒ', // f with hook
	0x87: '⁄', // fraction slash
	0x88: '‹', // single left angle quote
	0x89: '›', // single right angle quote
	0x8A: '−', // minus sign
	0x8B: '‰', // per mille
	0x8C: '„', // double low-9 quote
	0x8D: '“', // left double quote
	0x8E: '”', // right double quote
	0x8F: '‘', // left single quote
	0x90: '’', // right single quote
	0x91: '‚', // single low-9 quote
	0x92: '™', // trade mark
	0x93: 'ﬁ', // fi ligature
	0x94: 'ﬂ', // fl ligature
	0x95: 'Ł', // L with stroke
	0x96: 'œ', // oe
	0x97: 'Š', // S with caron
	0x98: 'Ÿ', // Y with diaeresis
	0x99: 'Ž', // Z with caron
	0x9A: 'ı', // dotless i
	0x9B: 'ł', // l with stroke
	0x9C: 'Œ', // OE
	0x9D: 'š', // s with caron
	0x9E: 'ž', // z with caron
	0xA0: '€', // euro sign
}

var pdfDocReverse map[rune]byte

func init() {
	pdfDocReverse = make(map[rune]byte, len(pdfDocSpecial))
	for b, r := range pdfDocSpecial {
		pdfDocReverse[r] = b
	}
}

func pdfDocDecode(s String) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 || s[i] >= 0x18 && s[i] <= 0x1F {
			goto Decode
		}
	}
	return string(s)

Decode:
	r := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if special, ok := pdfDocSpecial[c]; ok {
			r[i] = special
		} else {
			r[i] = rune(c)
		}
	}
	return string(r)
}

func pdfDocEncode(s string) (String, bool) {
	rr := []rune(s)
	buf := make([]byte, len(rr))
	for i, r := range rr {
		switch {
		case r < 0x18 || r >= 0x20 && r < 0x7f:
			buf[i] = byte(r)
		case r >= 0xa1 && r <= 0xff && r != 0xad:
			buf[i] = byte(r)
		default:
			c, ok := pdfDocReverse[r]
			if !ok {
				return nil, false
			}
			buf[i] = c
		}
	}
	return String(buf), true
}
