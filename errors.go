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

import "github.com/pkg/errors"

// Precondition failures reported by Upsample and Downsample. The errors
// returned carry additional detail; use errors.Is or errors.Cause to
// match them.
var (
	// ErrInvalidArgument means the grid is missing or holds an element
	// type the operation cannot process.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrShapeMismatch means the grid does not have the required shape.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrUnrecognizedKind means the requested grid kind is not one of
	// the enumerated kinds.
	ErrUnrecognizedKind = errors.New("unrecognized grid kind")
	// ErrTypeKindMismatch means the grid kind cannot be applied to the
	// grid's element type.
	ErrTypeKindMismatch = errors.New("grid kind does not match element type")
)
