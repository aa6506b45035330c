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
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds statistics of the usable values in a grid.
type Summary struct {
	Kind Kind

	// Cells is the total number of cells and Usable the number that
	// passed the usable-value test for Kind.
	Cells, Usable int

	Min, Max, Mean, StdDev float64
}

// Summarize computes statistics over the usable cells of g. For
// ScaledRadianceWithFlag grids the statistics describe the unpacked
// scaled radiance, not the stored value. A grid with no usable cells
// returns a Summary with only Kind and Cells set.
func Summarize[T Number](g *Grid[T], k Kind) (Summary, error) {
	if g == nil {
		return Summary{}, errors.Wrap(ErrInvalidArgument, "misrhr: grid is nil")
	}
	if !k.Valid() {
		return Summary{}, errors.Wrapf(ErrUnrecognizedKind, "misrhr: %v", k)
	}
	if e := elemKind[T](); !k.accepts(e) {
		return Summary{}, errors.Wrapf(ErrTypeKindMismatch, "misrhr: %v requires %v elements, grid holds %s",
			k, k.ElemTypes(), e)
	}

	s := Summary{Kind: k, Cells: len(g.Data)}
	vals := make([]float64, 0, len(g.Data))
	for _, v := range g.Data {
		f := float64(v)
		if !k.Usable(f) {
			continue
		}
		if k == ScaledRadianceWithFlag {
			r, _ := UnpackRadiance(uint16(v))
			f = float64(r)
		}
		vals = append(vals, f)
	}
	if len(vals) == 0 {
		return s, nil
	}
	s.Usable = len(vals)
	s.Min, s.Max = floats.Min(vals), floats.Max(vals)
	if len(vals) == 1 {
		s.Mean = vals[0]
		return s, nil
	}
	s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	return s, nil
}
