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
	"encoding/ascii85"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/hhrutter/lzw"
)

// FilterInfo describes one entry of a stream's filter chain.
type FilterInfo struct {
	Name  Name
	Parms Dict
}

// Filters extracts the information contained in the /Filter and
// /DecodeParms entries of the stream dictionary.  Malformed entries are
// skipped.
func (x *Stream) Filters(r Getter) []*FilterInfo {
	parms, _ := Resolve(r, x.Dict["DecodeParms"]).(Array)
	var filters []*FilterInfo
	switch f := Resolve(r, x.Dict["Filter"]).(type) {
	case Array:
		for i, fi := range f {
			name, ok := GetName(r, fi)
			if !ok {
				continue
			}
			var pDict Dict
			if len(parms) > i {
				pDict, _ = GetDict(r, parms[i])
			}
			filters = append(filters, &FilterInfo{Name: name, Parms: pDict})
		}
	case Name:
		pDict, _ := GetDict(r, x.Dict["DecodeParms"])
		filters = append(filters, &FilterInfo{Name: f, Parms: pDict})
	}
	return filters
}

// Decode applies the stream's filter chain to the raw data and returns the
// decoded bytes.  Streams without filters are returned as stored.
func (x *Stream) Decode(r Getter) ([]byte, error) {
	data := x.Raw
	for _, fi := range x.Filters(r) {
		var err error
		data, err = decodeData(data, fi, r)
		if err != nil {
			return nil, &MalformedFileError{
				Err: fmt.Errorf("filter %s: %w", fi.Name, err),
			}
		}
	}
	return data, nil
}

func decodeData(data []byte, fi *FilterInfo, r Getter) ([]byte, error) {
	switch fi.Name {
	case "FlateDecode", "Fl":
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, err
		}
		return applyPredictor(out, fi.Parms, r)

	case "LZWDecode", "LZW":
		early := 1
		if e, ok := GetInteger(r, fi.Parms["EarlyChange"]); ok {
			early = int(e)
		}
		lr := lzw.NewReader(bytes.NewReader(data), early == 1)
		defer lr.Close()
		out, err := io.ReadAll(lr)
		if err != nil {
			return nil, err
		}
		return applyPredictor(out, fi.Parms, r)

	case "ASCIIHexDecode", "AHx":
		return decodeASCIIHex(data)

	case "ASCII85Decode", "A85":
		s := strings.TrimSpace(string(data))
		s = strings.TrimPrefix(s, "<~")
		s = strings.TrimSuffix(s, "~>")
		dec := ascii85.NewDecoder(strings.NewReader(s))
		return io.ReadAll(dec)

	case "RunLengthDecode", "RL":
		return decodeRunLength(data)

	default:
		return nil, fmt.Errorf("unsupported filter %q", fi.Name)
	}
}

func decodeASCIIHex(data []byte) ([]byte, error) {
	var digits []byte
	for _, c := range data {
		switch {
		case c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F':
			digits = append(digits, c)
		case isSpace[c]:
			// pass
		case c == '>':
			goto done
		default:
			return nil, fmt.Errorf("invalid character %q in ASCIIHex data", c)
		}
	}
done:
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	_, err := hex.Decode(out, digits)
	return out, err
}

func decodeRunLength(data []byte) ([]byte, error) {
	var out []byte
	pos := 0
	for pos < len(data) {
		l := int(data[pos])
		pos++
		switch {
		case l < 128:
			if pos+l+1 > len(data) {
				return nil, io.ErrUnexpectedEOF
			}
			out = append(out, data[pos:pos+l+1]...)
			pos += l + 1
		case l > 128:
			if pos >= len(data) {
				return nil, io.ErrUnexpectedEOF
			}
			for i := 0; i < 257-l; i++ {
				out = append(out, data[pos])
			}
			pos++
		default: // EOD
			return out, nil
		}
	}
	return out, nil
}

// applyPredictor undoes the PNG and TIFF predictors described in the
// LZWDecode and FlateDecode parameter dictionaries.
func applyPredictor(data []byte, parms Dict, r Getter) ([]byte, error) {
	predictor := 1
	if p, ok := GetInteger(r, parms["Predictor"]); ok {
		predictor = int(p)
	}
	if predictor == 1 {
		return data, nil
	}

	colors := 1
	if c, ok := GetInteger(r, parms["Colors"]); ok {
		colors = int(c)
	}
	bpc := 8
	if b, ok := GetInteger(r, parms["BitsPerComponent"]); ok {
		bpc = int(b)
	}
	columns := 1
	if c, ok := GetInteger(r, parms["Columns"]); ok {
		columns = int(c)
	}
	bytesPerPixel := (colors*bpc + 7) / 8
	rowLength := (colors*bpc*columns + 7) / 8
	if bytesPerPixel <= 0 || rowLength <= 0 {
		return nil, fmt.Errorf("invalid predictor parameters")
	}

	if predictor == 2 {
		// TIFF horizontal differencing, 8-bit components only
		if bpc != 8 {
			return nil, fmt.Errorf("unsupported BitsPerComponent %d for TIFF predictor", bpc)
		}
		for row := 0; row+rowLength <= len(data); row += rowLength {
			for i := bytesPerPixel; i < rowLength; i++ {
				data[row+i] += data[row+i-bytesPerPixel]
			}
		}
		return data, nil
	}
	if predictor < 10 || predictor > 15 {
		return nil, fmt.Errorf("unsupported predictor %d", predictor)
	}

	// PNG predictors: each row is preceded by a filter type byte.
	numRows := len(data) / (rowLength + 1)
	out := make([]byte, 0, numRows*rowLength)
	prev := make([]byte, rowLength)
	cur := make([]byte, rowLength)
	for row := 0; row < numRows; row++ {
		base := row * (rowLength + 1)
		ft := data[base]
		copy(cur, data[base+1:base+1+rowLength])
		switch ft {
		case 0: // none
		case 1: // sub
			for i := bytesPerPixel; i < rowLength; i++ {
				cur[i] += cur[i-bytesPerPixel]
			}
		case 2: // up
			for i := 0; i < rowLength; i++ {
				cur[i] += prev[i]
			}
		case 3: // average
			for i := 0; i < rowLength; i++ {
				left := 0
				if i >= bytesPerPixel {
					left = int(cur[i-bytesPerPixel])
				}
				cur[i] += byte((left + int(prev[i])) / 2)
			}
		case 4: // paeth
			for i := 0; i < rowLength; i++ {
				var left, upLeft byte
				if i >= bytesPerPixel {
					left = cur[i-bytesPerPixel]
					upLeft = prev[i-bytesPerPixel]
				}
				cur[i] += paeth(left, prev[i], upLeft)
			}
		default:
			return nil, fmt.Errorf("invalid PNG filter type %d", ft)
		}
		out = append(out, cur...)
		prev, cur = cur, prev
	}
	return out, nil
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
