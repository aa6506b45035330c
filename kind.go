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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind describes what the values in a grid mean, and therefore how a
// window of high resolution values is combined into one low resolution
// value.
type Kind int

// The grid kinds understood by Downsample.
const (
	// RDQI is a radiometric data quality indicator in [0, 3].
	RDQI Kind = iota
	// Mask is a land/water/cloud classification.
	Mask
	// ScaledRadianceWithFlag is a scaled radiance with an RDQI packed
	// into its two least significant bits.
	ScaledRadianceWithFlag
	// Radiance is a physical radiance in W m⁻² sr⁻¹ µm⁻¹.
	Radiance
	// ReflectanceFactor is a bidirectional reflectance factor.
	ReflectanceFactor
)

// Kinds lists every grid kind in declaration order.
var Kinds = []Kind{RDQI, Mask, ScaledRadianceWithFlag, Radiance, ReflectanceFactor}

var kindNames = map[Kind]string{
	RDQI:                   "RDQI",
	Mask:                   "Mask",
	ScaledRadianceWithFlag: "ScaledRadianceWithFlag",
	Radiance:               "Radiance",
	ReflectanceFactor:      "ReflectanceFactor",
}

// Land/water/cloud mask codes.
const (
	Land         uint8 = 1
	Water        uint8 = 2
	Cloud        uint8 = 3
	MaskObscured uint8 = 253
	MaskEdge     uint8 = 254
)

// Upper bounds of the usable ranges of the floating point kinds.
const (
	MaxRadiance          = 800.0
	MaxReflectanceFactor = 2.0
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind returns the kind with the given name. Matching ignores case,
// and "BRF" is accepted for ReflectanceFactor.
func ParseKind(s string) (Kind, error) {
	if strings.EqualFold(s, "brf") {
		return ReflectanceFactor, nil
	}
	for _, k := range Kinds {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return -1, errors.Wrapf(ErrUnrecognizedKind, "misrhr: %q", s)
}

// Usable reports whether v is a usable value for kind k, i.e. whether it
// takes part in aggregation rather than being treated as fill or a
// sentinel.
func (k Kind) Usable(v float64) bool {
	switch k {
	case RDQI:
		// Every stored byte takes part in the max, including codes above 3.
		return v >= 0 && v <= math.MaxUint8
	case Mask:
		return v == float64(Land) || v == float64(Water) || v == float64(Cloud)
	case ScaledRadianceWithFlag:
		return v > 0 && v <= float64(MaxScaledRadiance)
	case Radiance:
		return v > 0 && v <= MaxRadiance
	case ReflectanceFactor:
		return v > 0 && v <= MaxReflectanceFactor
	}
	return false
}

// UsableRange describes the usable values of k for display.
func (k Kind) UsableRange() string {
	switch k {
	case RDQI:
		return "[0, 255]; codes 0-3 defined"
	case Mask:
		return "{1=land, 2=water, 3=cloud}; sentinels {253=obscured, 254=edge}"
	case ScaledRadianceWithFlag:
		return "]0, 65506]; sentinels {65511=obscured, 65515=edge, 65523=bad}"
	case Radiance:
		return "]0.0, 800.0]"
	case ReflectanceFactor:
		return "]0.0, 2.0]"
	}
	return ""
}

// ElemTypes returns the element types a grid of kind k may hold.
func (k Kind) ElemTypes() []reflect.Kind {
	switch k {
	case RDQI, Mask:
		return []reflect.Kind{reflect.Uint8}
	case ScaledRadianceWithFlag:
		return []reflect.Kind{reflect.Uint16}
	case Radiance, ReflectanceFactor:
		return []reflect.Kind{reflect.Float32, reflect.Float64}
	}
	return nil
}

// accepts reports whether k can be applied to elements of type e.
func (k Kind) accepts(e reflect.Kind) bool {
	for _, t := range k.ElemTypes() {
		if t == e {
			return true
		}
	}
	return false
}
