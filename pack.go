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

// Scaled radiance storage convention. The two least significant bits of a
// scaled radiance hold its RDQI; values above MaxScaledRadiance are
// sentinels.
const (
	MaxScaledRadiance uint16 = 65506
	Obscured          uint16 = 65511
	Edge              uint16 = 65515
	Bad               uint16 = 65523

	flagBits = 2
	flagMask = 1<<flagBits - 1
)

// PackRadiance combines a scaled radiance and its RDQI into a single
// stored value. Only the low 14 bits of radiance and the low 2 bits of
// flag are kept.
func PackRadiance(radiance uint16, flag uint8) uint16 {
	return radiance<<flagBits | uint16(flag)&flagMask
}

// UnpackRadiance splits a stored value into its scaled radiance and RDQI.
func UnpackRadiance(v uint16) (radiance uint16, flag uint8) {
	radiance = v >> flagBits
	flag = uint8(v - radiance<<flagBits)
	return radiance, flag
}
