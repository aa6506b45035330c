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
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v", k.String(), got)
		}
	}
	if k, err := ParseKind("brf"); err != nil || k != ReflectanceFactor {
		t.Errorf("ParseKind(brf) = %v, %v", k, err)
	}
	if k, err := ParseKind("mask"); err != nil || k != Mask {
		t.Errorf("ParseKind(mask) = %v, %v", k, err)
	}
	if _, err := ParseKind("Albedo"); !errors.Is(err, ErrUnrecognizedKind) {
		t.Errorf("ParseKind(Albedo) error = %v", err)
	}
}

func TestKindString(t *testing.T) {
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("got %q", s)
	}
	if Kind(42).Valid() || Kind(-1).Valid() {
		t.Error("out of range kinds should not be valid")
	}
}

func TestKindUsable(t *testing.T) {
	tests := []struct {
		k      Kind
		usable []float64
		not    []float64
	}{
		{k: RDQI, usable: []float64{0, 1, 2, 3, 4, 255}, not: []float64{-1, 256}},
		{k: Mask, usable: []float64{1, 2, 3}, not: []float64{0, 4, 253, 254, 255}},
		{k: ScaledRadianceWithFlag, usable: []float64{1, 401, 65506}, not: []float64{0, 65507, 65511, 65515, 65523}},
		{k: Radiance, usable: []float64{1e-6, 400, 800}, not: []float64{0, -1, 800.001}},
		{k: ReflectanceFactor, usable: []float64{0.01, 1, 2}, not: []float64{0, -0.5, 2.01}},
	}
	for _, test := range tests {
		t.Run(test.k.String(), func(t *testing.T) {
			for _, v := range test.usable {
				if !test.k.Usable(v) {
					t.Errorf("%v should be usable", v)
				}
			}
			for _, v := range test.not {
				if test.k.Usable(v) {
					t.Errorf("%v should not be usable", v)
				}
			}
		})
	}
}

func TestKindElemTypes(t *testing.T) {
	want := map[Kind][]reflect.Kind{
		RDQI:                   {reflect.Uint8},
		Mask:                   {reflect.Uint8},
		ScaledRadianceWithFlag: {reflect.Uint16},
		Radiance:               {reflect.Float32, reflect.Float64},
		ReflectanceFactor:      {reflect.Float32, reflect.Float64},
	}
	for k, w := range want {
		if !reflect.DeepEqual(k.ElemTypes(), w) {
			t.Errorf("%v: %v != %v", k, k.ElemTypes(), w)
		}
	}
}
