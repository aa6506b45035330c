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

package misrutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/misrhr/misrhr"
	"github.com/misrhr/misrhr/misrid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
)

// run executes the command tree with args and returns its output.
func run(t *testing.T, cfg *Cfg, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg.Root.SetOut(&out)
	cfg.Root.SetErr(&out)
	cfg.Root.SetArgs(args)
	err := cfg.Root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, InitializeConfig(), "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "MISR-HR v"+misrhr.Version+"\n" {
		t.Errorf("got %q", out)
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"id", "orbit2str", "68050"}, "O068050\n"},
		{[]string{"id", "str2orbit", "O068050"}, "68050\n"},
		{[]string{"id", "path2str", "7"}, "P007\n"},
		{[]string{"id", "str2path", "p168"}, "168\n"},
		{[]string{"id", "block2str", "110"}, "B110\n"},
		{[]string{"id", "str2block", "B001"}, "1\n"},
		{[]string{"id", "field", "red radiance/rdqi"}, "Red Radiance/RDQI\tScaledRadianceWithFlag\n"},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			out, err := run(t, InitializeConfig(), test.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != test.want {
				t.Errorf("got %q, want %q", out, test.want)
			}
		})
	}
}

func TestIDErrors(t *testing.T) {
	if _, err := run(t, InitializeConfig(), "id", "path2str", "300"); !errors.Is(err, misrid.ErrInvalidPath) {
		t.Errorf("path2str 300: %v", err)
	}
	if _, err := run(t, InitializeConfig(), "id", "orbit2str", "many"); err == nil {
		t.Error("orbit2str many should fail")
	}
	if _, err := run(t, InitializeConfig(), "id", "str2block", "B999"); !errors.Is(err, misrid.ErrInvalidBlock) {
		t.Errorf("str2block B999: %v", err)
	}
}

func TestInstrument(t *testing.T) {
	out, err := run(t, InitializeConfig(), "instrument")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 36 {
		t.Fatalf("%d lines", len(lines))
	}
	if n := strings.Count(out, "upsample"); n != 24 {
		t.Errorf("%d channels marked for upsampling in global mode; want 24", n)
	}

	out, err = run(t, InitializeConfig(), "instrument", "--mode", "lm", "--cameras", "an,df")
	if err != nil {
		t.Fatal(err)
	}
	lines = strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 8 {
		t.Fatalf("%d lines:\n%s", len(lines), out)
	}
	if strings.Contains(out, "upsample") {
		t.Error("no channel needs upsampling in local mode")
	}
	if !strings.HasPrefix(lines[0], "00 DF Blue") || !strings.HasPrefix(lines[4], "16 AN Blue") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, InitializeConfig(), "instrument", "--mode", "XM"); !errors.Is(err, misrid.ErrInvalidMode) {
		t.Errorf("error = %v", err)
	}
	if _, err := run(t, InitializeConfig(), "instrument", "--cameras", "QQ"); !errors.Is(err, misrid.ErrInvalidCamera) {
		t.Errorf("error = %v", err)
	}
}

func TestInstrumentCamerasFromEnv(t *testing.T) {
	os.Setenv("MISRHR_CAMERAS", "CA,BA")
	defer os.Unsetenv("MISRHR_CAMERAS")
	out, err := run(t, InitializeConfig(), "instrument")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 8 {
		t.Errorf("%d lines:\n%s", n, out)
	}
}

func TestFilename(t *testing.T) {
	out, err := run(t, InitializeConfig(), "filename", "MISR_AM1_GRP_TERRAIN_GM_P168_O068050_AN_F03_0024.hdf")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"\tPath: 168\n", "\tOrbit: 68050\n", "\tCamera: AN\n", "\tMode: GM\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	cfg := InitializeConfig()
	logger, hook := test.NewNullLogger()
	cfg.Log = logger
	out, err = run(t, cfg, "filename", "MISR_AM1_AGP_P168_F01_24.hdf", "notes.txt")
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(out, "\tProduct: AGP\n") {
		t.Errorf("the parsable name should still be printed:\n%s", out)
	}
	if len(hook.Entries) != 1 || hook.LastEntry().Data["name"] != "notes.txt" {
		t.Errorf("log entries: %v", hook.Entries)
	}
}

func TestRoots(t *testing.T) {
	out, err := run(t, InitializeConfig(), "roots",
		"--Roots.Input=/in", "--Roots.Output=/out", "--Roots.Scratch=/scratch")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Input: /in\nOutput: /out\nScratch: /scratch\n" {
		t.Errorf("got %q", out)
	}
}

func TestRootsConfigFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "misrhr.toml")
	err := os.WriteFile(f, []byte(`[Roots]
Input = "/cfg/in"
Output = "/cfg/out"
Scratch = "/cfg/scratch"
`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	cfg := InitializeConfig()
	out, err := run(t, cfg, "roots", "--config", f, "--Roots.Output=/flag/out")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Input: /cfg/in\nOutput: /flag/out\nScratch: /cfg/scratch\n" {
		t.Errorf("got %q", out)
	}

	if _, err := run(t, InitializeConfig(), "roots", "--config", filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("a missing configuration file should be an error")
	}
}

func TestKinds(t *testing.T) {
	out, err := run(t, InitializeConfig(), "kinds")
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range misrhr.Kinds {
		if !strings.Contains(out, k.String()) {
			t.Errorf("%v is missing from:\n%s", k, out)
		}
	}
	// The element type list is padded as one column.
	if !strings.Contains(out, "[float32 float64]  ]0.0, 800.0]") {
		t.Errorf("element types are missing from:\n%s", out)
	}
}

func TestVerbose(t *testing.T) {
	cfg := InitializeConfig()
	logger, hook := test.NewNullLogger()
	cfg.Log = logger
	if _, err := run(t, cfg, "instrument", "-v", "--cameras", "AN"); err != nil {
		t.Fatal(err)
	}
	if e := hook.LastEntry(); e == nil || e.Message != "listing channels" {
		t.Errorf("debug entry missing: %v", hook.Entries)
	}
}
