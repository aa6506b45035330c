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

// Package filename extracts metadata from MISR product file names, such as
// MISR_AM1_GRP_TERRAIN_GM_P168_O068050_AN_F03_0024.hdf.
package filename

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/misrhr/misrhr/misrid"
	"github.com/pkg/errors"
)

// ErrUnrecognizedName is returned for names that do not follow the MISR
// product naming convention.
var ErrUnrecognizedName = errors.New("unrecognized file name")

// Meta holds the metadata encoded in a product file name.
type Meta struct {
	// Platform is the spacecraft designator, "AM1" for Terra, or empty
	// for products that omit it.
	Platform string

	// Product is the product designator between the platform and the
	// path, e.g. "GRP_TERRAIN_GM" or "AGP".
	Product string

	// Mode is the acquisition mode ("GM" or "LM") when the product
	// designator ends with one.
	Mode string

	Path int

	// Orbit, Block and Camera are zero or empty when the name does not
	// include them.
	Orbit  int
	Block  int
	Camera string

	// Version is the trailing version designator, e.g. "F03_0024".
	Version string

	// Ext is the file extension including the dot.
	Ext string
}

var nameRE = regexp.MustCompile(`^MISR_(?:(AM1)_)?([A-Z0-9]+(?:_[A-Z0-9]+)*?)_P(\d{3})` +
	`(?:_O(\d{6}))?(?:_([A-Z]{2}))?(?:_B(\d{3}))?_([A-Z]\d{2}_\d{2,4}|V[0-9A-Za-z.\-]+)$`)

// Parse extracts the metadata from the base name of name. Any directory
// components are ignored.
func Parse(name string) (*Meta, error) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	match := nameRE.FindStringSubmatch(strings.TrimSuffix(base, ext))
	if match == nil {
		return nil, errors.Wrapf(ErrUnrecognizedName, "filename: %q", base)
	}
	m := &Meta{
		Platform: match[1],
		Product:  match[2],
		Version:  match[7],
		Ext:      ext,
	}

	var err error
	if m.Path, err = misrid.Str2Path(match[3]); err != nil {
		return nil, errors.Wrapf(err, "filename: %q", base)
	}
	if match[4] != "" {
		if m.Orbit, err = misrid.Str2Orbit(match[4]); err != nil {
			return nil, errors.Wrapf(err, "filename: %q", base)
		}
	}
	if match[5] != "" {
		if m.Camera, err = misrid.CheckCamera(match[5]); err != nil {
			return nil, errors.Wrapf(err, "filename: %q", base)
		}
	}
	if match[6] != "" {
		if m.Block, err = misrid.Str2Block(match[6]); err != nil {
			return nil, errors.Wrapf(err, "filename: %q", base)
		}
	}
	if i := strings.LastIndexByte(m.Product, '_'); i >= 0 {
		if mode, err := misrid.CheckMode(m.Product[i+1:]); err == nil {
			m.Mode = mode
		}
	}
	return m, nil
}

// String returns the file name that m was parsed from.
func (m *Meta) String() string {
	var s strings.Builder
	s.WriteString("MISR_")
	if m.Platform != "" {
		s.WriteString(m.Platform + "_")
	}
	s.WriteString(m.Product)
	fmt.Fprintf(&s, "_P%03d", m.Path)
	if m.Orbit != 0 {
		fmt.Fprintf(&s, "_O%06d", m.Orbit)
	}
	if m.Camera != "" {
		s.WriteString("_" + m.Camera)
	}
	if m.Block != 0 {
		fmt.Fprintf(&s, "_B%03d", m.Block)
	}
	s.WriteString("_" + m.Version)
	s.WriteString(m.Ext)
	return s.String()
}

// Fields returns the metadata as an ordered list of name/value pairs for
// display.
func (m *Meta) Fields() [][2]string {
	f := [][2]string{
		{"Platform", m.Platform},
		{"Product", m.Product},
		{"Mode", m.Mode},
		{"Path", strconv.Itoa(m.Path)},
	}
	if m.Orbit != 0 {
		f = append(f, [2]string{"Orbit", strconv.Itoa(m.Orbit)})
	}
	if m.Camera != "" {
		f = append(f, [2]string{"Camera", m.Camera})
	}
	if m.Block != 0 {
		f = append(f, [2]string{"Block", strconv.Itoa(m.Block)})
	}
	return append(f, [2]string{"Version", m.Version}, [2]string{"Ext", m.Ext})
}
