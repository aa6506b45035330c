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

// Package misrhr resamples MISR pixel grids between the 275 m
// high-resolution and 1.1 km low-resolution block shapes used by the
// MISR-HR processing system.
package misrhr

import (
	"fmt"
	"reflect"

	"github.com/misrhr/misrhr/internal/hash"
	"github.com/pkg/errors"
)

// Canonical grid shapes. A MISR block is 2048 cross-track samples by 512
// along-track lines at 275 m; the low resolution grid covers the same
// block with one sample per 4×4 high resolution window.
const (
	HiResCols = 2048
	HiResRows = 512
	LoResCols = HiResCols / Factor
	LoResRows = HiResRows / Factor

	// Factor is the linear resampling factor along each axis.
	Factor = 4
	// WindowSize is the number of high resolution cells per low
	// resolution cell.
	WindowSize = Factor * Factor
)

// Number is the set of element types a Grid can hold.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Grid is a two-dimensional array of pixel values stored in row-major
// order. Cells are addressed as (col, row); Data[row*Cols+col] holds
// cell (col, row).
type Grid[T Number] struct {
	Cols, Rows int
	Data       []T
}

// NewGrid returns a zero-filled grid with the given shape.
func NewGrid[T Number](cols, rows int) *Grid[T] {
	return &Grid[T]{
		Cols: cols,
		Rows: rows,
		Data: make([]T, cols*rows),
	}
}

// At returns the value of cell (col, row).
func (g *Grid[T]) At(col, row int) T {
	return g.Data[row*g.Cols+col]
}

// Set sets the value of cell (col, row).
func (g *Grid[T]) Set(col, row int, v T) {
	g.Data[row*g.Cols+col] = v
}

// Shape returns the number of columns and rows in g.
func (g *Grid[T]) Shape() (cols, rows int) {
	return g.Cols, g.Rows
}

// Equal reports whether g and o have the same shape and identical values.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g.Cols != o.Cols || g.Rows != o.Rows || len(g.Data) != len(o.Data) {
		return false
	}
	for i, v := range g.Data {
		if o.Data[i] != v {
			return false
		}
	}
	return true
}

// Fingerprint returns a digest of the shape and contents of g. Grids with
// the same shape and bit-identical values have the same fingerprint.
func (g *Grid[T]) Fingerprint() string {
	return hash.Sum(fmt.Sprintf("%dx%d:%s", g.Cols, g.Rows, elemKind[T]()), g.Data)
}

func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid[%s](%d×%d)", elemKind[T](), g.Cols, g.Rows)
}

// checkShape makes sure g is present and has exactly the requested shape.
func (g *Grid[T]) checkShape(cols, rows int) error {
	if g == nil {
		return errors.Wrap(ErrInvalidArgument, "misrhr: grid is nil")
	}
	if g.Cols != cols || g.Rows != rows {
		return errors.Wrapf(ErrShapeMismatch, "misrhr: grid is %d×%d; want %d×%d",
			g.Cols, g.Rows, cols, rows)
	}
	if len(g.Data) != cols*rows {
		return errors.Wrapf(ErrShapeMismatch, "misrhr: grid declares %d×%d but holds %d values",
			g.Cols, g.Rows, len(g.Data))
	}
	return nil
}

// elemKind returns the underlying kind of the element type T.
func elemKind[T Number]() reflect.Kind {
	var zero T
	return reflect.TypeOf(zero).Kind()
}
