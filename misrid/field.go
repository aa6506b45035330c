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

package misrid

import (
	"strings"

	"github.com/misrhr/misrhr"
	"github.com/pkg/errors"
)

// fieldKinds maps band-independent product field names to the kind of
// data they hold.
var fieldKinds = map[string]misrhr.Kind{
	"RDQI":          misrhr.RDQI,
	"Radiance":      misrhr.Radiance,
	"Brf":           misrhr.ReflectanceFactor,
	"LandWaterMask": misrhr.Mask,
}

// bandFieldKinds maps the per-band field suffixes, as in
// "Red Radiance/RDQI", to the kind of data they hold.
var bandFieldKinds = map[string]misrhr.Kind{
	"Radiance/RDQI": misrhr.ScaledRadianceWithFlag,
	"Radiance":      misrhr.Radiance,
	"Brf":           misrhr.ReflectanceFactor,
	"RDQI":          misrhr.RDQI,
}

// Fields returns every recognized product field name.
func Fields() []string {
	var f []string
	for _, b := range Bands {
		for _, suffix := range []string{"Radiance/RDQI", "Radiance", "Brf", "RDQI"} {
			f = append(f, b+" "+suffix)
		}
	}
	return append(f, "RDQI", "Radiance", "Brf", "LandWaterMask")
}

// CheckField returns the canonical form of a product field name. Band
// names and field names are matched ignoring case.
func CheckField(field string) (string, error) {
	name, _, err := lookupField(field)
	return name, err
}

// FieldKind returns the grid kind used to resample the named field.
func FieldKind(field string) (misrhr.Kind, error) {
	_, k, err := lookupField(field)
	return k, err
}

func lookupField(field string) (string, misrhr.Kind, error) {
	f := strings.TrimSpace(field)
	for name, k := range fieldKinds {
		if strings.EqualFold(f, name) {
			return name, k, nil
		}
	}
	if sp := strings.IndexByte(f, ' '); sp > 0 {
		band, err := CheckBand(f[:sp])
		if err == nil {
			suffix := strings.TrimSpace(f[sp+1:])
			for name, k := range bandFieldKinds {
				if strings.EqualFold(suffix, name) {
					return band + " " + name, k, nil
				}
			}
		}
	}
	return "", -1, errors.Wrapf(ErrInvalidField, "misrid: %q", field)
}
