/*
Copyright © 2024 the MISR-HR authors.
This file is part of MISR-HR.

MISR-HR is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MISR-HR is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MISR-HR.  If not, see <http://www.gnu.org/licenses/>.
*/

package misrhr

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// window holds the 16 high resolution values that map onto one low
// resolution cell, in row-major order.
type window[T Number] [WindowSize]T

// aggregator combines a window into a single value.
type aggregator[T Number] func(w *window[T]) T

// Downsample reduces a high resolution grid to low resolution. Each
// output cell (i, j) is computed from the 4×4 window of input cells whose
// upper left corner is (4i, 4j), using the rule for kind k:
//
//	RDQI                    the maximum (worst) quality indicator.
//	Mask                    majority vote among land, water and cloud, ties
//	                        going to the higher code. If obscured and edge
//	                        cells are at least as common as classified ones,
//	                        the more common of the two, ties going to edge.
//	ScaledRadianceWithFlag  the rounded mean of the usable radiances, packed
//	                        with the worst usable RDQI. A window with no
//	                        usable values keeps its largest raw value, so
//	                        sentinels survive.
//	Radiance                the mean of the usable values, or 0.
//	ReflectanceFactor       the mean of the usable values, or 0.
//
// g must be HiResCols × HiResRows and its element type must match k:
// uint8 for RDQI and Mask, uint16 for ScaledRadianceWithFlag and
// float32 or float64 for Radiance and ReflectanceFactor. All of these
// conditions are checked before any work is done. The returned grid is
// newly allocated and g is not modified.
func Downsample[T Number](g *Grid[T], k Kind) (*Grid[T], error) {
	if g == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "misrhr: grid is nil")
	}
	e := elemKind[T]()
	switch e {
	case reflect.Uint8, reflect.Uint16, reflect.Float32, reflect.Float64:
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "misrhr: cannot downsample a grid of %s", e)
	}
	if !k.Valid() {
		return nil, errors.Wrapf(ErrUnrecognizedKind, "misrhr: %v", k)
	}
	if !k.accepts(e) {
		return nil, errors.Wrapf(ErrTypeKindMismatch, "misrhr: %v requires %v elements, grid holds %s",
			k, k.ElemTypes(), e)
	}
	if err := g.checkShape(HiResCols, HiResRows); err != nil {
		return nil, err
	}

	agg := aggregatorFor[T](k)
	o := NewGrid[T](LoResCols, LoResRows)
	var w window[T]
	for j := 0; j < LoResRows; j++ {
		for i := 0; i < LoResCols; i++ {
			g.window(i, j, &w)
			o.Data[j*LoResCols+i] = agg(&w)
		}
	}
	return o, nil
}

// window copies the high resolution window for low resolution cell (i, j)
// into w.
func (g *Grid[T]) window(i, j int, w *window[T]) {
	n := 0
	for dj := 0; dj < Factor; dj++ {
		start := (j*Factor+dj)*g.Cols + i*Factor
		n += copy(w[n:], g.Data[start:start+Factor])
	}
}

func aggregatorFor[T Number](k Kind) aggregator[T] {
	switch k {
	case RDQI:
		return maxValue[T]
	case Mask:
		return maskVote[T]
	case ScaledRadianceWithFlag:
		return radianceWithFlag[T]
	case Radiance:
		return usableMean[T](MaxRadiance)
	case ReflectanceFactor:
		return usableMean[T](MaxReflectanceFactor)
	}
	panic("misrhr: no aggregator for " + k.String())
}

func maxValue[T Number](w *window[T]) T {
	m := w[0]
	for _, v := range w[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func maskVote[T Number](w *window[T]) T {
	var counts [256]int
	for _, v := range w {
		counts[uint8(v)]++
	}
	usable := counts[Land] + counts[Water] + counts[Cloud]
	sentinel := counts[MaskObscured] + counts[MaskEdge]
	if sentinel >= usable {
		s := MaskEdge
		if counts[MaskObscured] > counts[MaskEdge] {
			s = MaskObscured
		}
		return T(s)
	}
	best := Land
	for _, c := range []uint8{Water, Cloud} {
		if counts[c] >= counts[best] {
			best = c
		}
	}
	return T(best)
}

func radianceWithFlag[T Number](w *window[T]) T {
	var (
		sum  uint32
		n    int
		flag uint8
	)
	for _, v := range w {
		u := uint16(v)
		if u == 0 || u > MaxScaledRadiance {
			continue
		}
		r, f := UnpackRadiance(u)
		sum += uint32(r)
		n++
		if f > flag {
			flag = f
		}
	}
	if n == 0 {
		return maxValue(w)
	}
	r := uint16(math.Round(float64(sum) / float64(n)))
	return T(PackRadiance(r, flag))
}

// usableMean returns an aggregator that averages the values in ]0, hi].
func usableMean[T Number](hi float64) aggregator[T] {
	return func(w *window[T]) T {
		var vals [WindowSize]float64
		n := 0
		for _, v := range w {
			if f := float64(v); f > 0 && f <= hi {
				vals[n] = f
				n++
			}
		}
		if n == 0 {
			return 0
		}
		return T(floats.Sum(vals[:n]) / float64(n))
	}
}
