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

// Package roots finds the root directories that MISR-HR processing reads
// from and writes to on the current host.
package roots

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Indices into Roots.
const (
	Input = iota
	Output
	Scratch

	NumRoots
)

// Roots holds the input data, product output and scratch root
// directories, in that order.
type Roots [NumRoots]string

// Names gives the configuration key suffix for each root.
var Names = [NumRoots]string{"Input", "Output", "Scratch"}

// ErrUnsupportedOS is returned when no roots are configured and the
// operating system has no default layout.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// defaults holds the per-OS layout used when nothing is configured.
var defaults = map[string]Roots{
	"linux":   {"/data/misr", "/data/misr-hr", "/tmp/misr-hr"},
	"darwin":  {"/Volumes/misr", "/Volumes/misr-hr", "/tmp/misr-hr"},
	"windows": {`D:\misr`, `D:\misr-hr`, `C:\Temp\misr-hr`},
}

// Resolver determines the root directories from configuration.
type Resolver struct {
	// Cfg holds the Roots.* configuration. Roots.Input, Roots.Output and
	// Roots.Scratch override individual roots; Roots.Hosts.<hostname>
	// lists all three for a given host.
	Cfg *viper.Viper

	// Host and OS default to the current host name and runtime.GOOS.
	Host, OS string

	Log logrus.FieldLogger
}

// NewResolver returns a resolver for the current host.
func NewResolver(cfg *viper.Viper) *Resolver {
	host, _ := os.Hostname()
	return &Resolver{
		Cfg:  cfg,
		Host: host,
		OS:   runtime.GOOS,
		Log:  logrus.StandardLogger(),
	}
}

// Resolve returns the root directories. For each root, an explicit
// Roots.<name> setting is used if present; otherwise the entry for this
// host in Roots.Hosts; otherwise the default for the operating system.
// Environment variables in configured paths are expanded.
func (r *Resolver) Resolve() (Roots, error) {
	var out Roots
	log := r.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	hostRoots, err := r.hostRoots()
	if err != nil {
		return out, err
	}
	def, haveDefault := defaults[r.OS]

	for i, name := range Names {
		key := "Roots." + name
		switch {
		case r.Cfg != nil && r.Cfg.GetString(key) != "":
			out[i] = os.ExpandEnv(r.Cfg.GetString(key))
			log.WithFields(logrus.Fields{"root": name, "source": "config"}).Debug(out[i])
		case hostRoots != nil:
			out[i] = os.ExpandEnv(hostRoots[i])
			log.WithFields(logrus.Fields{"root": name, "source": "host", "host": r.Host}).Debug(out[i])
		case haveDefault:
			out[i] = def[i]
			log.WithFields(logrus.Fields{"root": name, "source": "default", "os": r.OS}).Debug(out[i])
		default:
			return Roots{}, errors.Wrapf(ErrUnsupportedOS, "roots: no %s root configured and no default for %q", name, r.OS)
		}
	}
	return out, nil
}

// hostRoots returns the roots listed for r.Host, or nil if there are none.
func (r *Resolver) hostRoots() ([]string, error) {
	if r.Cfg == nil || r.Host == "" {
		return nil, nil
	}
	// Dots are viper key separators, so hosts are listed by short name.
	short := strings.SplitN(r.Host, ".", 2)[0]
	hosts := r.Cfg.GetStringMap("Roots.Hosts")
	var v interface{}
	for h, roots := range hosts {
		if strings.EqualFold(h, short) {
			v = roots
			break
		}
	}
	if v == nil {
		return nil, nil
	}
	s, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, errors.Wrapf(err, "roots: reading Roots.Hosts.%s", short)
	}
	if len(s) != NumRoots {
		return nil, errors.Errorf("roots: Roots.Hosts.%s has %d entries; want %d (%s)",
			short, len(s), NumRoots, strings.Join(Names[:], ", "))
	}
	return s, nil
}

func (r Roots) String() string {
	var b strings.Builder
	for i, name := range Names {
		b.WriteString(name + ": " + r[i] + "\n")
	}
	return b.String()
}
