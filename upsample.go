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

// Upsample expands a low resolution grid to high resolution by pixel
// replication: each input cell fills the 4×4 block of output cells that
// covers the same ground area. No interpolation is performed, so the
// result carries no more information than the input.
//
// g must be LoResCols × LoResRows. The returned grid is newly allocated
// and g is not modified.
func Upsample[T Number](g *Grid[T]) (*Grid[T], error) {
	if err := g.checkShape(LoResCols, LoResRows); err != nil {
		return nil, err
	}
	o := NewGrid[T](HiResCols, HiResRows)
	for j := 0; j < LoResRows; j++ {
		in := g.Data[j*LoResCols : (j+1)*LoResCols]
		// Fill the first output row of the block, then copy it to the
		// other three.
		first := o.Data[j*Factor*HiResCols : (j*Factor+1)*HiResCols]
		for i, v := range in {
			cell := first[i*Factor : (i+1)*Factor]
			for d := range cell {
				cell[d] = v
			}
		}
		for dj := 1; dj < Factor; dj++ {
			row := (j*Factor + dj) * HiResCols
			copy(o.Data[row:row+HiResCols], first)
		}
	}
	return o, nil
}
