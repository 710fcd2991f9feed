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

package function

import (
	"errors"

	"github.com/oxpdf/pdf"
)

// Type0 is a sampled function: function values are stored in a bit-packed
// sample table and interpolated between sample points.
type Type0 struct {
	// Domain gives the interval of allowed inputs for each dimension.
	Domain []float64

	// Range gives the interval of outputs for each dimension.
	Range []float64

	// Size gives the number of samples in each input dimension.
	Size []int

	// BitsPerSample is the number of bits per stored sample value.
	// Allowed values are 1, 2, 4, 8, 12, 16, 24 and 32.
	BitsPerSample int

	// Encode maps each input dimension to the sample grid.  If nil, the
	// default [0, Size[i]-1] is used.
	Encode []float64

	// Decode maps stored samples to output values.  If nil, Range is
	// used.
	Decode []float64

	// Samples holds the decoded sample data.
	Samples []byte
}

// FunctionType implements the [Func] interface.
func (f *Type0) FunctionType() int { return 0 }

// Shape implements the [Func] interface.
func (f *Type0) Shape() (int, int) {
	return len(f.Domain) / 2, len(f.Range) / 2
}

func readType0(r pdf.Getter, stm *pdf.Stream) (*Type0, error) {
	samples, err := stm.Decode(r)
	if err != nil {
		return nil, err
	}

	f := &Type0{
		Domain:  floatArray(r, stm.Dict["Domain"]),
		Range:   floatArray(r, stm.Dict["Range"]),
		Size:    intArray(r, stm.Dict["Size"]),
		Encode:  floatArray(r, stm.Dict["Encode"]),
		Decode:  floatArray(r, stm.Dict["Decode"]),
		Samples: samples,
	}
	if bps, ok := pdf.GetInteger(r, stm.Dict["BitsPerSample"]); ok {
		f.BitsPerSample = int(bps)
	}

	m, n := f.Shape()
	if m == 0 || n == 0 || len(f.Size) != m {
		return nil, &pdf.MalformedFileError{
			Err: errors.New("invalid type 0 function dimensions"),
		}
	}
	switch f.BitsPerSample {
	case 1, 2, 4, 8, 12, 16, 24, 32:
		// ok
	default:
		return nil, &pdf.MalformedFileError{
			Err: errors.New("invalid /BitsPerSample entry"),
		}
	}
	for _, size := range f.Size {
		if size < 1 {
			return nil, &pdf.MalformedFileError{
				Err: errors.New("invalid /Size entry"),
			}
		}
	}
	return f, nil
}

// sample returns the raw sample value at the given grid position for
// output dimension j.
func (f *Type0) sample(grid []int, j int) uint32 {
	_, n := f.Shape()
	idx := 0
	stride := 1
	for i, gi := range grid {
		idx += gi * stride
		stride *= f.Size[i]
	}
	bitPos := (idx*n + j) * f.BitsPerSample

	var val uint32
	for i := 0; i < f.BitsPerSample; i++ {
		byteIdx := (bitPos + i) / 8
		bitIdx := 7 - (bitPos+i)%8
		if byteIdx < len(f.Samples) && f.Samples[byteIdx]&(1<<bitIdx) != 0 {
			val |= 1 << (f.BitsPerSample - 1 - i)
		}
	}
	return val
}

// Eval implements the [Func] interface, using multilinear interpolation
// between the surrounding sample points.
func (f *Type0) Eval(x []float64) ([]float64, error) {
	x, err := clipDomain(x, f.Domain)
	if err != nil {
		return nil, err
	}
	m, n := f.Shape()

	// map the inputs onto the sample grid
	pos := make([]float64, m)
	base := make([]int, m)
	frac := make([]float64, m)
	for i := 0; i < m; i++ {
		eMin := 0.0
		eMax := float64(f.Size[i] - 1)
		if len(f.Encode) >= 2*(i+1) {
			eMin = f.Encode[2*i]
			eMax = f.Encode[2*i+1]
		}
		pos[i] = interpolate(x[i], f.Domain[2*i], f.Domain[2*i+1], eMin, eMax)
		pos[i] = clip(pos[i], 0, float64(f.Size[i]-1))
		base[i] = int(pos[i])
		if base[i] > f.Size[i]-2 && f.Size[i] > 1 {
			base[i] = f.Size[i] - 2
		}
		frac[i] = pos[i] - float64(base[i])
		if f.Size[i] == 1 {
			base[i] = 0
			frac[i] = 0
		}
	}

	maxVal := float64(uint64(1)<<f.BitsPerSample - 1)
	res := make([]float64, n)
	grid := make([]int, m)
	for j := 0; j < n; j++ {
		// multilinear interpolation over the 2^m surrounding corners
		var acc float64
		for corner := 0; corner < 1<<m; corner++ {
			weight := 1.0
			for i := 0; i < m; i++ {
				if corner&(1<<i) != 0 {
					grid[i] = base[i] + 1
					weight *= frac[i]
				} else {
					grid[i] = base[i]
					weight *= 1 - frac[i]
				}
			}
			if weight == 0 {
				continue
			}
			acc += weight * float64(f.sample(grid, j))
		}

		dMin := 0.0
		dMax := 1.0
		switch {
		case len(f.Decode) >= 2*(j+1):
			dMin = f.Decode[2*j]
			dMax = f.Decode[2*j+1]
		case len(f.Range) >= 2*(j+1):
			dMin = f.Range[2*j]
			dMax = f.Range[2*j+1]
		}
		res[j] = interpolate(acc, 0, maxVal, dMin, dMax)
	}
	return clipRange(res, f.Range), nil
}
