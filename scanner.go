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
	"fmt"
	"strconv"
)

// scanner reads PDF object syntax from an in-memory byte slice.
//
// getLength is used to resolve the /Length entry of stream dictionaries
// when it is stored as an indirect reference; it may be nil, in which case
// the scanner falls back to searching for the endstream keyword.
type scanner struct {
	data      []byte
	pos       int
	getLength func(Object) (Integer, bool)
}

func newScanner(data []byte, getLength func(Object) (Integer, bool)) *scanner {
	return &scanner{data: data, getLength: getLength}
}

var (
	isSpace = map[byte]bool{
		0:  true,
		9:  true,
		10: true,
		12: true,
		13: true,
		32: true,
	}
	isDelimiter = map[byte]bool{
		'(': true,
		')': true,
		'<': true,
		'>': true,
		'[': true,
		']': true,
		'{': true,
		'}': true,
		'/': true,
		'%': true,
	}
)

func (s *scanner) errMalformed(format string, a ...interface{}) error {
	return &MalformedFileError{
		Err: fmt.Errorf(format, a...),
		Loc: []string{"byte " + strconv.Itoa(s.pos)},
	}
}

// Peek returns the next n bytes without advancing, fewer near the end of
// input.
func (s *scanner) Peek(n int) []byte {
	if s.pos >= len(s.data) {
		return nil
	}
	end := s.pos + n
	if end > len(s.data) {
		end = len(s.data)
	}
	return s.data[s.pos:end]
}

// SkipWhiteSpace skips PDF white space and comments.
func (s *scanner) SkipWhiteSpace() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if isSpace[c] {
			s.pos++
		} else if c == '%' {
			for s.pos < len(s.data) && s.data[s.pos] != '\r' && s.data[s.pos] != '\n' {
				s.pos++
			}
		} else {
			return
		}
	}
}

// SkipString skips over the given literal text.
func (s *scanner) SkipString(pat string) error {
	if !bytes.HasPrefix(s.data[s.pos:], []byte(pat)) {
		return s.errMalformed("expected %q", pat)
	}
	s.pos += len(pat)
	return nil
}

func (s *scanner) skipEOL() {
	if s.pos < len(s.data) && s.data[s.pos] == '\r' {
		s.pos++
	}
	if s.pos < len(s.data) && s.data[s.pos] == '\n' {
		s.pos++
	}
}

// ReadObject reads the next object.  References of the form "n g R" are
// returned as [Reference] values.
func (s *scanner) ReadObject() (Object, error) {
	s.SkipWhiteSpace()
	buf := s.Peek(5) // len("false") == 5

	switch {
	case len(buf) == 0:
		return nil, s.errMalformed("unexpected end of input")
	case bytes.HasPrefix(buf, []byte("null")):
		s.pos += 4
		return nil, nil
	case bytes.HasPrefix(buf, []byte("true")):
		s.pos += 4
		return Bool(true), nil
	case bytes.HasPrefix(buf, []byte("false")):
		s.pos += 5
		return Bool(false), nil
	case buf[0] == '/':
		return s.ReadName()
	case buf[0] >= '0' && buf[0] <= '9', buf[0] == '+', buf[0] == '-', buf[0] == '.':
		obj, err := s.ReadNumber()
		if err != nil {
			return nil, err
		}
		if x, isInt := obj.(Integer); isInt && x >= 0 {
			if ref, ok := s.tryReadReference(x); ok {
				return ref, nil
			}
		}
		return obj, nil
	case bytes.HasPrefix(buf, []byte("<<")):
		dict, err := s.ReadDict()
		if err != nil {
			return nil, err
		}
		mark := s.pos
		s.SkipWhiteSpace()
		if bytes.HasPrefix(s.Peek(6), []byte("stream")) {
			return s.ReadStreamData(dict)
		}
		s.pos = mark
		return dict, nil
	case buf[0] == '(':
		s.pos++
		return s.ReadQuotedString()
	case buf[0] == '<':
		s.pos++
		return s.ReadHexString()
	case buf[0] == '[':
		s.pos++
		return s.ReadArray()
	}
	return nil, s.errMalformed("unexpected character %q", buf[0])
}

// tryReadReference checks whether the input continues with "gen R" after
// an already-read object number.  On success the scanner advances past the
// reference; otherwise the position is left unchanged.
func (s *scanner) tryReadReference(number Integer) (Reference, bool) {
	mark := s.pos
	s.SkipWhiteSpace()
	gen, err := s.ReadInteger()
	if err != nil || gen < 0 || gen > 0xFFFF {
		s.pos = mark
		return 0, false
	}
	s.SkipWhiteSpace()
	if s.pos >= len(s.data) || s.data[s.pos] != 'R' {
		s.pos = mark
		return 0, false
	}
	next := s.pos + 1
	if next < len(s.data) && !isSpace[s.data[next]] && !isDelimiter[s.data[next]] {
		s.pos = mark
		return 0, false
	}
	s.pos = next
	return NewReference(uint32(number), uint16(gen)), true
}

// ReadInteger reads an integer.
func (s *scanner) ReadInteger() (Integer, error) {
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
		s.pos++
	}
	for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
	}
	x, err := strconv.ParseInt(string(s.data[start:s.pos]), 10, 64)
	if err != nil {
		s.pos = start
		return 0, s.errMalformed("invalid integer")
	}
	return Integer(x), nil
}

// ReadNumber reads an integer or real number.
func (s *scanner) ReadNumber() (Object, error) {
	start := s.pos
	hasDot := false
	if s.pos < len(s.data) && (s.data[s.pos] == '+' || s.data[s.pos] == '-') {
		s.pos++
	}
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == '.' && !hasDot {
			hasDot = true
		} else if c < '0' || c > '9' {
			break
		}
		s.pos++
	}
	text := string(s.data[start:s.pos])
	if hasDot {
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			s.pos = start
			return nil, s.errMalformed("invalid number %q", text)
		}
		return Real(x), nil
	}
	x, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		s.pos = start
		return nil, s.errMalformed("invalid number %q", text)
	}
	return Integer(x), nil
}

// ReadQuotedString reads a ()-delimited string, starting after the opening
// parenthesis.
func (s *scanner) ReadQuotedString() (String, error) {
	var res []byte
	parenCount := 0
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '\\':
			if s.pos >= len(s.data) {
				return nil, s.errMalformed("unterminated string")
			}
			e := s.data[s.pos]
			s.pos++
			switch e {
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '\n':
				// line continuation
			case '\r':
				if s.pos < len(s.data) && s.data[s.pos] == '\n' {
					s.pos++
				}
			default:
				if e >= '0' && e <= '7' {
					val := e - '0'
					for n := 0; n < 2 && s.pos < len(s.data); n++ {
						d := s.data[s.pos]
						if d < '0' || d > '7' {
							break
						}
						val = val*8 + (d - '0')
						s.pos++
					}
					res = append(res, val)
				} else {
					res = append(res, e)
				}
			}
		case '(':
			parenCount++
			res = append(res, c)
		case ')':
			if parenCount == 0 {
				return String(res), nil
			}
			parenCount--
			res = append(res, c)
		case '\r':
			if s.pos < len(s.data) && s.data[s.pos] == '\n' {
				s.pos++
			}
			res = append(res, '\n')
		default:
			res = append(res, c)
		}
	}
	return nil, s.errMalformed("unterminated string")
}

// ReadHexString reads a <>-delimited string, starting after the opening
// angle bracket.
func (s *scanner) ReadHexString() (String, error) {
	var res []byte
	var hexVal byte
	first := true
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c == '>':
			if !first {
				res = append(res, 16*hexVal)
			}
			return String(res), nil
		case isSpace[c]:
			continue
		default:
			return nil, s.errMalformed("invalid character %q in hex string", c)
		}
		if first {
			hexVal = d
		} else {
			res = append(res, 16*hexVal+d)
		}
		first = !first
	}
	return nil, s.errMalformed("unterminated hex string")
}

// ReadName reads a PDF name object, including the leading slash.
func (s *scanner) ReadName() (Name, error) {
	err := s.SkipString("/")
	if err != nil {
		return "", err
	}
	var res []byte
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if isSpace[c] || isDelimiter[c] {
			break
		}
		s.pos++
		if c == '#' && s.pos+1 < len(s.data) {
			hi := hexDigit(s.data[s.pos])
			lo := hexDigit(s.data[s.pos+1])
			if hi >= 0 && lo >= 0 {
				res = append(res, byte(hi*16+lo))
				s.pos += 2
				continue
			}
		}
		res = append(res, c)
	}
	return Name(res), nil
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

// ReadArray reads an array, starting after the opening bracket.
func (s *scanner) ReadArray() (Array, error) {
	var res Array
	for {
		s.SkipWhiteSpace()
		if s.pos >= len(s.data) {
			return nil, s.errMalformed("unterminated array")
		}
		if s.data[s.pos] == ']' {
			s.pos++
			return res, nil
		}
		obj, err := s.ReadObject()
		if err != nil {
			return nil, err
		}
		res = append(res, obj)
	}
}

// ReadDict reads a dictionary, including the surrounding delimiters.
func (s *scanner) ReadDict() (Dict, error) {
	err := s.SkipString("<<")
	if err != nil {
		return nil, err
	}
	res := Dict{}
	for {
		s.SkipWhiteSpace()
		if bytes.HasPrefix(s.Peek(2), []byte(">>")) {
			s.pos += 2
			return res, nil
		}
		key, err := s.ReadName()
		if err != nil {
			return nil, err
		}
		val, err := s.ReadObject()
		if err != nil {
			return nil, err
		}
		if val != nil {
			res[key] = val
		}
	}
}

// ReadStreamData reads stream data following a stream dictionary.  The
// scanner must be positioned at the "stream" keyword.
func (s *scanner) ReadStreamData(dict Dict) (*Stream, error) {
	err := s.SkipString("stream")
	if err != nil {
		return nil, err
	}
	s.skipEOL()

	length := Integer(-1)
	if obj, ok := dict["Length"]; ok {
		if x, isInt := obj.(Integer); isInt {
			length = x
		} else if s.getLength != nil {
			if x, ok := s.getLength(obj); ok {
				length = x
			}
		}
	}
	if length < 0 || s.pos+int(length) > len(s.data) {
		// Malformed or unresolvable /Length.  Search for the endstream
		// keyword instead.
		idx := bytes.Index(s.data[s.pos:], []byte("endstream"))
		if idx < 0 {
			return nil, s.errMalformed("unterminated stream")
		}
		length = Integer(idx)
		for length > 0 && isSpace[s.data[s.pos+int(length)-1]] {
			length--
		}
	}

	raw := s.data[s.pos : s.pos+int(length)]
	s.pos += int(length)

	s.SkipWhiteSpace()
	s.SkipString("endstream") // tolerate a missing keyword

	dict["Length"] = length
	return &Stream{Dict: dict, Raw: raw}, nil
}

// ReadIndirectObject reads an object definition of the form
// "n g obj ... endobj" and returns the object together with its reference.
func (s *scanner) ReadIndirectObject() (Object, Reference, error) {
	s.SkipWhiteSpace()
	number, err := s.ReadInteger()
	if err != nil {
		return nil, 0, err
	}
	s.SkipWhiteSpace()
	generation, err := s.ReadInteger()
	if err != nil {
		return nil, 0, err
	}
	s.SkipWhiteSpace()
	err = s.SkipString("obj")
	if err != nil {
		return nil, 0, err
	}

	obj, err := s.ReadObject()
	if err != nil {
		return nil, 0, err
	}

	s.SkipWhiteSpace()
	s.SkipString("endobj") // tolerate a missing keyword

	if number < 0 || number > 0xFFFFFFFF || generation < 0 || generation > 0xFFFF {
		return nil, 0, s.errMalformed("invalid object identifier %d %d", number, generation)
	}
	return obj, NewReference(uint32(number), uint16(generation)), nil
}
