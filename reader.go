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
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// xrefEntry locates one indirect object in the file: either a byte offset
// for objects stored directly, or the object stream containing the object.
type xrefEntry struct {
	offset   int64
	inStream Reference
	idx      int
}

// fileReader holds the intermediate state while a Document is constructed
// from raw bytes.  It is discarded once the object table is complete.
type fileReader struct {
	data    []byte
	version Version
	xref    map[Reference]*xrefEntry
	trailer Dict
}

// Open reads the PDF document stored in the named file.
func Open(fname string) (*Document, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// Read reads a complete PDF document into memory.
//
// The whole object graph is loaded eagerly: after Read returns, the
// Document performs no I/O and is safe for concurrent use.  Individual
// objects which cannot be parsed are dropped from the object table, so
// that references to them dangle rather than failing the whole document;
// only an unusable header or cross-reference structure is a fatal error.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	f := &fileReader{
		data: data,
		xref: map[Reference]*xrefEntry{},
	}

	err = f.readHeader()
	if err != nil {
		return nil, err
	}
	err = f.readXRefChain()
	if err != nil {
		return nil, err
	}

	objects := make(ReferenceTable, len(f.xref))

	// first pass: objects stored directly in the file
	for ref, entry := range f.xref {
		if entry.inStream != 0 {
			continue
		}
		obj, err := f.readObjectAt(entry.offset, ref)
		if err != nil {
			continue
		}
		objects[ref] = obj
	}

	// second pass: objects stored inside object streams
	for ref, entry := range f.xref {
		if entry.inStream == 0 {
			continue
		}
		obj, err := f.readCompressedObject(objects, entry)
		if err != nil {
			continue
		}
		objects[ref] = obj
	}

	trailer := f.trailer
	for _, key := range []Name{
		"Length", "Filter", "DecodeParms", "W", "Index", "Type", "Prev", "XRefStm",
	} {
		delete(trailer, key)
	}

	doc := NewDocument(objects, trailer)
	doc.version = f.version
	return doc, nil
}

func (f *fileReader) readHeader() error {
	if !bytes.HasPrefix(f.data, []byte("%PDF-")) {
		return &MalformedFileError{Err: errors.New("PDF header not found")}
	}
	if len(f.data) < 8 {
		return &MalformedFileError{Err: io.ErrUnexpectedEOF}
	}
	version, err := ParseVersion(string(f.data[5:8]))
	if err != nil {
		return &MalformedFileError{Err: err}
	}
	f.version = version
	return nil
}

// readXRefChain locates the startxref offset and follows the chain of
// cross-reference sections through /Prev entries.  Sections closer to the
// end of the file are newer; their entries win.
func (f *fileReader) readXRefChain() error {
	start, err := f.findStartXRef()
	if err != nil {
		return err
	}

	seen := map[int64]bool{}
	pos := start
	for pos >= 0 {
		if seen[pos] || pos >= int64(len(f.data)) {
			return errCorrupt
		}
		seen[pos] = true

		trailer, err := f.readXRefSection(pos)
		if err != nil {
			return err
		}
		if f.trailer == nil {
			f.trailer = trailer
		} else {
			for key, val := range trailer {
				if _, ok := f.trailer[key]; !ok {
					f.trailer[key] = val
				}
			}
		}

		pos = -1
		if prev, ok := trailer["Prev"].(Integer); ok {
			pos = int64(prev)
		}
	}
	return nil
}

func (f *fileReader) findStartXRef() (int64, error) {
	tail := f.data
	if len(tail) > 1024 {
		tail = tail[len(tail)-1024:]
	}
	idx := bytes.LastIndex(tail, []byte("startxref"))
	if idx < 0 {
		return 0, &MalformedFileError{Err: errors.New("startxref not found")}
	}
	s := newScanner(tail[idx+len("startxref"):], nil)
	s.SkipWhiteSpace()
	offset, err := s.ReadInteger()
	if err != nil || offset < 0 || int64(offset) >= int64(len(f.data)) {
		return 0, errCorrupt
	}
	return int64(offset), nil
}

// readXRefSection reads one cross-reference section, either a classic
// table or an xref stream, and returns the associated trailer dictionary.
func (f *fileReader) readXRefSection(pos int64) (Dict, error) {
	s := newScanner(f.data[pos:], f.getLength)
	s.SkipWhiteSpace()
	if bytes.HasPrefix(s.Peek(4), []byte("xref")) {
		return f.readXRefTable(s)
	}

	obj, _, err := s.ReadIndirectObject()
	if err != nil {
		return nil, err
	}
	stm, ok := obj.(*Stream)
	if !ok || stm.Dict["Type"] != Name("XRef") {
		return nil, errCorrupt
	}
	return f.readXRefStream(stm)
}

func (f *fileReader) readXRefTable(s *scanner) (Dict, error) {
	err := s.SkipString("xref")
	if err != nil {
		return nil, err
	}
	for {
		s.SkipWhiteSpace()
		if bytes.HasPrefix(s.Peek(7), []byte("trailer")) {
			break
		}
		start, err := s.ReadInteger()
		if err != nil {
			return nil, err
		}
		s.SkipWhiteSpace()
		count, err := s.ReadInteger()
		if err != nil {
			return nil, err
		}
		if start < 0 || count < 0 || count > 1<<24 {
			return nil, errCorrupt
		}
		for i := Integer(0); i < count; i++ {
			s.SkipWhiteSpace()
			offset, err := s.ReadInteger()
			if err != nil {
				return nil, err
			}
			s.SkipWhiteSpace()
			generation, err := s.ReadInteger()
			if err != nil {
				return nil, err
			}
			s.SkipWhiteSpace()
			kind := s.Peek(1)
			if len(kind) == 0 {
				return nil, errCorrupt
			}
			s.pos++
			switch kind[0] {
			case 'n':
				f.setEntry(NewReference(uint32(start+i), uint16(generation)),
					&xrefEntry{offset: int64(offset)})
			case 'f':
				// free entry
			default:
				return nil, errCorrupt
			}
		}
	}
	err = s.SkipString("trailer")
	if err != nil {
		return nil, err
	}
	s.SkipWhiteSpace()
	return s.ReadDict()
}

func (f *fileReader) readXRefStream(stm *Stream) (Dict, error) {
	data, err := stm.Decode(nil)
	if err != nil {
		return nil, err
	}

	w, _ := stm.Dict["W"].(Array)
	if len(w) < 3 {
		return nil, errCorrupt
	}
	var widths [3]int
	rowLength := 0
	for i := range widths {
		wi, ok := w[i].(Integer)
		if !ok || wi < 0 || wi > 8 {
			return nil, errCorrupt
		}
		widths[i] = int(wi)
		rowLength += int(wi)
	}

	size, _ := stm.Dict["Size"].(Integer)
	index, _ := stm.Dict["Index"].(Array)
	if index == nil {
		index = Array{Integer(0), size}
	}
	if len(index)%2 != 0 {
		return nil, errCorrupt
	}

	pos := 0
	readField := func(width int, def uint64) uint64 {
		if width == 0 {
			return def
		}
		var x uint64
		for i := 0; i < width; i++ {
			x = x<<8 | uint64(data[pos])
			pos++
		}
		return x
	}

	for i := 0; i+1 < len(index); i += 2 {
		start, ok1 := index[i].(Integer)
		count, ok2 := index[i+1].(Integer)
		if !ok1 || !ok2 || start < 0 || count < 0 {
			return nil, errCorrupt
		}
		for j := Integer(0); j < count; j++ {
			if pos+rowLength > len(data) {
				return nil, errCorrupt
			}
			tp := readField(widths[0], 1)
			a := readField(widths[1], 0)
			b := readField(widths[2], 0)
			number := uint32(start + j)
			switch tp {
			case 0:
				// free entry
			case 1:
				f.setEntry(NewReference(number, uint16(b)),
					&xrefEntry{offset: int64(a)})
			case 2:
				f.setEntry(NewReference(number, 0), &xrefEntry{
					inStream: NewReference(uint32(a), 0),
					idx:      int(b),
				})
			}
		}
	}

	return stm.Dict, nil
}

// setEntry records an xref entry unless a newer section already claimed
// the reference.
func (f *fileReader) setEntry(ref Reference, entry *xrefEntry) {
	if _, ok := f.xref[ref]; ok {
		return
	}
	f.xref[ref] = entry
}

// readObjectAt parses the indirect object stored at the given byte offset.
func (f *fileReader) readObjectAt(offset int64, want Reference) (Object, error) {
	if offset < 0 || offset >= int64(len(f.data)) {
		return nil, errCorrupt
	}
	s := newScanner(f.data[offset:], f.getLength)
	obj, got, err := s.ReadIndirectObject()
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, &MalformedFileError{
			Err: fmt.Errorf("expected object %s but found %s", want, got),
			Loc: []string{"byte " + strconv.FormatInt(offset, 10)},
		}
	}
	return obj, nil
}

// getLength resolves an indirect /Length entry by parsing the referenced
// object directly from the file.
func (f *fileReader) getLength(obj Object) (Integer, bool) {
	ref, ok := obj.(Reference)
	if !ok {
		return 0, false
	}
	entry, ok := f.xref[ref]
	if !ok || entry.inStream != 0 {
		return 0, false
	}
	parsed, err := f.readObjectAt(entry.offset, ref)
	if err != nil {
		return 0, false
	}
	x, ok := parsed.(Integer)
	return x, ok
}

// readCompressedObject extracts one object from an object stream which has
// already been loaded into the object table.
func (f *fileReader) readCompressedObject(objects ReferenceTable, entry *xrefEntry) (Object, error) {
	container, ok := objects[entry.inStream].(*Stream)
	if !ok || container.Dict["Type"] != Name("ObjStm") {
		return nil, errCorrupt
	}
	data, err := container.Decode(objects)
	if err != nil {
		return nil, err
	}

	n, _ := GetInteger(objects, container.Dict["N"])
	first, _ := GetInteger(objects, container.Dict["First"])
	if entry.idx < 0 || Integer(entry.idx) >= n {
		return nil, errCorrupt
	}

	// the stream starts with n pairs of object number and offset
	s := newScanner(data, nil)
	var objOffset Integer
	for i := Integer(0); i <= Integer(entry.idx); i++ {
		s.SkipWhiteSpace()
		if _, err := s.ReadInteger(); err != nil {
			return nil, err
		}
		s.SkipWhiteSpace()
		objOffset, err = s.ReadInteger()
		if err != nil {
			return nil, err
		}
	}
	start := first + objOffset
	if start < 0 || start > Integer(len(data)) {
		return nil, errCorrupt
	}

	s = newScanner(data[start:], nil)
	return s.ReadObject()
}
