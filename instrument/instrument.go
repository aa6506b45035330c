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

// Package instrument holds the static layout of the MISR instrument: its
// nine cameras, four spectral bands and the 36 channels they form, along
// with the native resolution of each channel in each acquisition mode.
package instrument

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/misrhr/misrhr/misrid"
	"github.com/pkg/errors"
)

//go:embed instrument.toml
var tableData string

// CameraInfo describes one camera.
type CameraInfo struct {
	Code string
	Name string

	// ViewAngle is the nominal view zenith angle at the surface [degrees].
	ViewAngle float64

	// Direction is "fore", "nadir" or "aft".
	Direction string
}

// BandInfo describes one spectral band.
type BandInfo struct {
	Name string

	// Wavelength is the band centre and Bandwidth its width [nm].
	Wavelength, Bandwidth float64
}

// ChannelInfo describes one camera/band combination.
type ChannelInfo struct {
	// Index is camera index × 4 + band index, in [0, 35].
	Index  int
	Camera CameraInfo
	Band   BandInfo
}

type table struct {
	Resolution struct {
		High, Low float64
	}
	Camera []CameraInfo
	Band   []BandInfo
}

var tbl table

func init() {
	if _, err := toml.Decode(tableData, &tbl); err != nil {
		panic(fmt.Errorf("instrument: decoding instrument table: %v", err))
	}
	if len(tbl.Camera) != len(misrid.Cameras) || len(tbl.Band) != len(misrid.Bands) {
		panic("instrument: instrument table does not match the identifier lists")
	}
}

// HighResolution returns the ground sample distance of high resolution
// channels [m].
func HighResolution() float64 { return tbl.Resolution.High }

// LowResolution returns the ground sample distance of low resolution
// channels [m].
func LowResolution() float64 { return tbl.Resolution.Low }

// Cameras returns the cameras in misrid.Cameras order.
func Cameras() []CameraInfo {
	return append([]CameraInfo(nil), tbl.Camera...)
}

// Bands returns the bands in misrid.Bands order.
func Bands() []BandInfo {
	return append([]BandInfo(nil), tbl.Band...)
}

// Camera returns the description of the named camera.
func Camera(code string) (CameraInfo, error) {
	i, err := misrid.CameraIndex(code)
	if err != nil {
		return CameraInfo{}, err
	}
	return tbl.Camera[i], nil
}

// Band returns the description of the named band.
func Band(name string) (BandInfo, error) {
	i, err := misrid.BandIndex(name)
	if err != nil {
		return BandInfo{}, err
	}
	return tbl.Band[i], nil
}

// Channel returns the description of the given camera and band.
func Channel(camera, band string) (ChannelInfo, error) {
	ci, err := misrid.CameraIndex(camera)
	if err != nil {
		return ChannelInfo{}, err
	}
	bi, err := misrid.BandIndex(band)
	if err != nil {
		return ChannelInfo{}, err
	}
	return ChannelInfo{
		Index:  ci*len(tbl.Band) + bi,
		Camera: tbl.Camera[ci],
		Band:   tbl.Band[bi],
	}, nil
}

// Channels returns all 36 channels in index order.
func Channels() []ChannelInfo {
	c := make([]ChannelInfo, 0, len(tbl.Camera)*len(tbl.Band))
	for i, cam := range tbl.Camera {
		for j, band := range tbl.Band {
			c = append(c, ChannelInfo{Index: i*len(tbl.Band) + j, Camera: cam, Band: band})
		}
	}
	return c
}

// NativeResolution returns the ground sample distance [m] at which the
// channel is acquired in the given mode. In Local Mode every channel is
// at high resolution. In Global Mode only the nadir camera and the red
// band of the other cameras are; the rest are averaged on board to low
// resolution.
func (c ChannelInfo) NativeResolution(mode string) (float64, error) {
	m, err := misrid.CheckMode(mode)
	if err != nil {
		return 0, err
	}
	if m == misrid.LocalMode || c.Camera.Code == "AN" || c.Band.Name == "Red" {
		return tbl.Resolution.High, nil
	}
	return tbl.Resolution.Low, nil
}

// NeedsUpsample reports whether grids of the given channel must be
// upsampled to join high resolution products.
func NeedsUpsample(camera, band, mode string) (bool, error) {
	c, err := Channel(camera, band)
	if err != nil {
		return false, err
	}
	r, err := c.NativeResolution(mode)
	if err != nil {
		return false, errors.Wrapf(err, "instrument: channel %s %s", c.Camera.Code, c.Band.Name)
	}
	return r != tbl.Resolution.High, nil
}

func (c ChannelInfo) String() string {
	return fmt.Sprintf("%02d %s %s", c.Index, c.Camera.Code, c.Band.Name)
}
