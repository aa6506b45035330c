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

// Package misrid validates and converts MISR identifiers: orbital paths,
// orbit numbers, blocks, cameras, spectral bands, acquisition modes and
// product field names.
package misrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Valid identifier ranges.
const (
	MinPath = 1
	MaxPath = 233

	// MinOrbit is the first Terra orbit with MISR science data.
	MinOrbit = 995
	MaxOrbit = 200000

	MinBlock = 1
	MaxBlock = 180
)

// Errors returned for out-of-range or malformed identifiers.
var (
	ErrInvalidPath   = errors.New("invalid path")
	ErrInvalidOrbit  = errors.New("invalid orbit")
	ErrInvalidBlock  = errors.New("invalid block")
	ErrInvalidCamera = errors.New("invalid camera")
	ErrInvalidBand   = errors.New("invalid band")
	ErrInvalidMode   = errors.New("invalid mode")
	ErrInvalidField  = errors.New("invalid field")
)

// Cameras lists the nine camera codes from the most forward looking to
// the most aftward looking.
var Cameras = []string{"DF", "CF", "BF", "AF", "AN", "AA", "BA", "CA", "DA"}

// Bands lists the four spectral bands from shortest to longest wavelength.
var Bands = []string{"Blue", "Green", "Red", "NIR"}

// Acquisition modes.
const (
	GlobalMode = "GM"
	LocalMode  = "LM"
)

// Modes lists the acquisition modes.
var Modes = []string{GlobalMode, LocalMode}

// CheckPath returns an error if path is not a valid orbital path.
func CheckPath(path int) error {
	if path < MinPath || path > MaxPath {
		return errors.Wrapf(ErrInvalidPath, "misrid: %d is outside [%d, %d]", path, MinPath, MaxPath)
	}
	return nil
}

// CheckOrbit returns an error if orbit is not a valid orbit number.
func CheckOrbit(orbit int) error {
	if orbit < MinOrbit || orbit > MaxOrbit {
		return errors.Wrapf(ErrInvalidOrbit, "misrid: %d is outside [%d, %d]", orbit, MinOrbit, MaxOrbit)
	}
	return nil
}

// CheckBlock returns an error if block is not a valid block number.
func CheckBlock(block int) error {
	if block < MinBlock || block > MaxBlock {
		return errors.Wrapf(ErrInvalidBlock, "misrid: %d is outside [%d, %d]", block, MinBlock, MaxBlock)
	}
	return nil
}

// Path2Str formats a path the way it appears in product file names,
// e.g. "P168".
func Path2Str(path int) (string, error) {
	if err := CheckPath(path); err != nil {
		return "", err
	}
	return fmt.Sprintf("P%03d", path), nil
}

// Str2Path parses a path written as "P168", "p168" or "168".
func Str2Path(s string) (int, error) {
	p, err := parseID(s, 'P')
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPath, "misrid: %q", s)
	}
	if err := CheckPath(p); err != nil {
		return 0, err
	}
	return p, nil
}

// Orbit2Str formats an orbit number the way it appears in product file
// names, e.g. "O068050".
func Orbit2Str(orbit int) (string, error) {
	if err := CheckOrbit(orbit); err != nil {
		return "", err
	}
	return fmt.Sprintf("O%06d", orbit), nil
}

// Str2Orbit parses an orbit written as "O068050", "o68050" or "68050".
func Str2Orbit(s string) (int, error) {
	o, err := parseID(s, 'O')
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidOrbit, "misrid: %q", s)
	}
	if err := CheckOrbit(o); err != nil {
		return 0, err
	}
	return o, nil
}

// Block2Str formats a block number, e.g. "B110".
func Block2Str(block int) (string, error) {
	if err := CheckBlock(block); err != nil {
		return "", err
	}
	return fmt.Sprintf("B%03d", block), nil
}

// Str2Block parses a block written as "B110", "b110" or "110".
func Str2Block(s string) (int, error) {
	b, err := parseID(s, 'B')
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidBlock, "misrid: %q", s)
	}
	if err := CheckBlock(b); err != nil {
		return 0, err
	}
	return b, nil
}

// parseID parses a decimal number with an optional single-letter prefix.
func parseID(s string, prefix byte) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == prefix || s[0] == prefix+'a'-'A') {
		s = s[1:]
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// CheckCamera returns the canonical (upper case) form of a camera code.
func CheckCamera(camera string) (string, error) {
	i, err := CameraIndex(camera)
	if err != nil {
		return "", err
	}
	return Cameras[i], nil
}

// CameraIndex returns the position of camera in Cameras.
func CameraIndex(camera string) (int, error) {
	c := strings.ToUpper(strings.TrimSpace(camera))
	for i, name := range Cameras {
		if c == name {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrInvalidCamera, "misrid: %q is not one of %v", camera, Cameras)
}

// CheckBand returns the canonical form of a band name. Matching ignores
// case.
func CheckBand(band string) (string, error) {
	i, err := BandIndex(band)
	if err != nil {
		return "", err
	}
	return Bands[i], nil
}

// BandIndex returns the position of band in Bands.
func BandIndex(band string) (int, error) {
	b := strings.TrimSpace(band)
	for i, name := range Bands {
		if strings.EqualFold(b, name) {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrInvalidBand, "misrid: %q is not one of %v", band, Bands)
}

// CheckMode returns the canonical (upper case) form of an acquisition
// mode.
func CheckMode(mode string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(mode))
	for _, name := range Modes {
		if m == name {
			return m, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidMode, "misrid: %q is not one of %v", mode, Modes)
}
