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

package roots

import (
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
)

func TestResolveDefaults(t *testing.T) {
	for goos, want := range defaults {
		r := &Resolver{Cfg: viper.New(), Host: "anywhere", OS: goos}
		got, err := r.Resolve()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", goos, got, want)
		}
	}
}

func TestResolveUnsupportedOS(t *testing.T) {
	r := &Resolver{Cfg: viper.New(), OS: "plan9"}
	if _, err := r.Resolve(); !errors.Is(err, ErrUnsupportedOS) {
		t.Errorf("error = %v", err)
	}

	// Fully configured roots do not need a default.
	cfg := viper.New()
	cfg.Set("Roots.Input", "/in")
	cfg.Set("Roots.Output", "/out")
	cfg.Set("Roots.Scratch", "/scratch")
	r = &Resolver{Cfg: cfg, OS: "plan9"}
	got, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if got != (Roots{"/in", "/out", "/scratch"}) {
		t.Errorf("got %v", got)
	}
}

func TestResolveHost(t *testing.T) {
	os.Setenv("MISRHR_TEST_DISK", "/disk7")
	defer os.Unsetenv("MISRHR_TEST_DISK")

	cfg := viper.New()
	cfg.Set("Roots.Hosts.terra", []string{"$MISRHR_TEST_DISK/misr", "/home/hr/out", "/scratch"})
	cfg.Set("Roots.Hosts.aqua", []string{"/a", "/b", "/c"})
	cfg.Set("Roots.Scratch", "/fast")

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r := &Resolver{Cfg: cfg, Host: "Terra.example.org", OS: "linux", Log: logger}
	got, err := r.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	want := Roots{"/disk7/misr", "/home/hr/out", "/fast"}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(hook.Entries) != NumRoots {
		t.Fatalf("%d log entries", len(hook.Entries))
	}
	if src := hook.Entries[Scratch].Data["source"]; src != "config" {
		t.Errorf("scratch root source = %v", src)
	}
	if src := hook.Entries[Input].Data["source"]; src != "host" {
		t.Errorf("input root source = %v", src)
	}
}

func TestResolveBadHostEntry(t *testing.T) {
	cfg := viper.New()
	cfg.Set("Roots.Hosts.terra", []string{"/only/one"})
	r := &Resolver{Cfg: cfg, Host: "terra", OS: "linux"}
	if _, err := r.Resolve(); err == nil || !strings.Contains(err.Error(), "want 3") {
		t.Errorf("error = %v", err)
	}
}

func TestRootsString(t *testing.T) {
	s := Roots{"/a", "/b", "/c"}.String()
	if s != "Input: /a\nOutput: /b\nScratch: /c\n" {
		t.Errorf("got %q", s)
	}
}

func TestNewResolver(t *testing.T) {
	r := NewResolver(viper.New())
	if r.Log == nil || r.OS == "" {
		t.Errorf("%+v", r)
	}
}
