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

// Package hash computes stable digests of grid contents.
package hash

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/davecgh/go-spew/spew"
)

// Sum returns a hex digest of the header string followed by data.
// Slices of fixed-size numbers are hashed by their little-endian binary
// encoding; anything else is hashed through its spew representation.
func Sum(header string, data interface{}) string {
	h := fnv.New128a()
	fmt.Fprint(h, header)

	if err := binary.Write(h, binary.LittleEndian, data); err != nil {
		// Types without a fixed binary size (e.g. []int).
		printer := spew.ConfigState{
			Indent:                  " ",
			SortKeys:                true,
			DisableMethods:          true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
		printer.Fprintf(h, "%#v", data)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
