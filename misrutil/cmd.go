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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/misrhr/misrhr"
	"github.com/misrhr/misrhr/filename"
	"github.com/misrhr/misrhr/instrument"
	"github.com/misrhr/misrhr/misrid"
	"github.com/misrhr/misrhr/roots"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information and the command tree that uses it.
type Cfg struct {
	*viper.Viper

	// Root is the main command.
	Root *cobra.Command

	// Log receives command activity. It writes to standard error.
	Log *logrus.Logger

	versionCmd, idCmd, instrumentCmd, filenameCmd, rootsCmd, kindsCmd *cobra.Command
}

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

// InitializeConfig creates a new configuration and command tree. Each
// call returns an independent tree.
func InitializeConfig() *Cfg {
	cfg := &Cfg{
		Viper: viper.New(),
		Log:   logrus.New(),
	}
	cfg.Log.Out = os.Stderr

	cfg.Root = &cobra.Command{
		Use:   "misrhr",
		Short: "Utilities for MISR-HR processing.",
		Long: `misrhr provides utilities supporting MISR-HR processing: identifier
conversion, instrument channel metadata, product file name parsing and
directory root resolution. The grid resampling routines are available
from the github.com/misrhr/misrhr Go package.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'MISRHR_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_'.
Refer to https://github.com/spf13/viper for additional configuration information.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig(cfg) },
	}

	cfg.versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "version prints the version number of this version of MISR-HR.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "MISR-HR v%s\n", misrhr.Version)
		},
		DisableAutoGenTag: true,
	}

	cfg.idCmd = &cobra.Command{
		Use:   "id",
		Short: "Convert and check MISR identifiers",
		Long: `id converts path, orbit and block numbers to and from the form used in
product file names, and checks product field names.`,
		DisableAutoGenTag: true,
	}
	cfg.idCmd.AddCommand(
		intToStrCmd("orbit2str", "orbit", misrid.Orbit2Str),
		strToIntCmd("str2orbit", "orbit", misrid.Str2Orbit),
		intToStrCmd("path2str", "path", misrid.Path2Str),
		strToIntCmd("str2path", "path", misrid.Str2Path),
		intToStrCmd("block2str", "block", misrid.Block2Str),
		strToIntCmd("str2block", "block", misrid.Str2Block),
		&cobra.Command{
			Use:   "field name",
			Short: "Check a product field name",
			Long: `field prints the canonical form of a product field name and the grid kind
used to resample it.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name, err := misrid.CheckField(args[0])
				if err != nil {
					return err
				}
				k, err := misrid.FieldKind(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", name, k)
				return nil
			},
			DisableAutoGenTag: true,
		},
	)

	cfg.instrumentCmd = &cobra.Command{
		Use:   "instrument",
		Short: "Print the camera and band layout",
		Long: `instrument prints the MISR channels with their camera view angles, band
wavelengths and native resolution in the acquisition mode given by --mode.
Channels acquired at low resolution must be upsampled before they can be
combined with high resolution products; these are marked "upsample".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := misrid.CheckMode(cfg.GetString("mode"))
			if err != nil {
				return err
			}
			cameras, err := checkCameras(cfg.Get("cameras"))
			if err != nil {
				return err
			}
			cfg.Log.WithFields(logrus.Fields{"mode": mode, "cameras": cameras}).Debug("listing channels")
			return printChannels(cmd, mode, cameras)
		},
		DisableAutoGenTag: true,
	}

	cfg.filenameCmd = &cobra.Command{
		Use:   "filename name...",
		Short: "Extract metadata from product file names",
		Long: `filename prints the metadata encoded in each MISR product file name.
Names that cannot be parsed are reported and cause a non-zero exit status.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, name := range args {
				m, err := filename.Parse(name)
				if err != nil {
					cfg.Log.WithFields(logrus.Fields{"name": name}).Warn(err)
					failed++
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				for _, f := range m.Fields() {
					fmt.Fprintf(cmd.OutOrStdout(), "\t%s: %s\n", f[0], f[1])
				}
			}
			if failed > 0 {
				return errors.Errorf("misrhr: %d of %d file names could not be parsed", failed, len(args))
			}
			return nil
		},
		DisableAutoGenTag: true,
	}

	cfg.rootsCmd = &cobra.Command{
		Use:   "roots",
		Short: "Print the root directories",
		Long: `roots prints the input, output and scratch root directories for this host.
Each root is taken from Roots.Input, Roots.Output or Roots.Scratch if set;
otherwise from the Roots.Hosts.<hostname> list in the configuration file;
otherwise from the default layout for the operating system.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := roots.NewResolver(cfg.Viper)
			r.Log = cfg.Log
			dirs, err := r.Resolve()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), dirs)
			return nil
		},
		DisableAutoGenTag: true,
	}

	cfg.kindsCmd = &cobra.Command{
		Use:   "kinds",
		Short: "List grid kinds",
		Long: `kinds lists the grid kinds understood by the downsampler, the element
types each accepts and the range of values treated as usable.`,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range misrhr.Kinds {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-18s %s\n", k, fmt.Sprint(k.ElemTypes()), k.UsableRange())
			}
		},
		DisableAutoGenTag: true,
	}

	// Options are the configuration options available to MISR-HR.
	options := []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose enables debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{cfg.Root.PersistentFlags()},
		},
		{
			name: "mode",
			usage: `
              mode is the acquisition mode: GM (global mode) or LM (local mode).`,
			shorthand:  "m",
			defaultVal: misrid.GlobalMode,
			flagsets:   []*pflag.FlagSet{cfg.instrumentCmd.Flags()},
		},
		{
			name: "cameras",
			usage: `
              cameras limits the output to the listed camera codes.
              The default is all cameras.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{cfg.instrumentCmd.Flags()},
		},
		{
			name: "Roots.Input",
			usage: `
              Roots.Input is the root directory of MISR input data.
              Environment variables are expanded.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.rootsCmd.Flags()},
		},
		{
			name: "Roots.Output",
			usage: `
              Roots.Output is the root directory for MISR-HR products.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.rootsCmd.Flags()},
		},
		{
			name: "Roots.Scratch",
			usage: `
              Roots.Scratch is the root directory for temporary files.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.rootsCmd.Flags()},
		},
	}

	// Set the prefix for configuration environment variables.
	cfg.SetEnvPrefix("MISRHR")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case []string:
				set.StringSliceP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	// Link the commands together.
	cfg.Root.AddCommand(cfg.versionCmd, cfg.idCmd, cfg.instrumentCmd, cfg.filenameCmd,
		cfg.rootsCmd, cfg.kindsCmd)

	return cfg
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig(cfg *Cfg) error {
	if cfgpath := cfg.GetString("config"); cfgpath != "" {
		cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "misrhr: problem reading configuration file")
		}
		cfg.Log.WithFields(logrus.Fields{"file": cfg.ConfigFileUsed()}).Debug("read configuration")
	}
	if cfg.GetBool("verbose") {
		cfg.Log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// intToStrCmd returns a command that formats an integer identifier.
func intToStrCmd(use, what string, f func(int) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " " + what,
		Short: "Format a " + what + " number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "misrhr: %s must be an integer", what)
			}
			s, err := f(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
		DisableAutoGenTag: true,
	}
}

// strToIntCmd returns a command that parses an identifier.
func strToIntCmd(use, what string, f func(string) (int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " " + what,
		Short: "Parse a " + what + " identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := f(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
		DisableAutoGenTag: true,
	}
}

// printChannels writes one line per channel of the selected cameras.
func printChannels(cmd *cobra.Command, mode string, cameras []string) error {
	w := cmd.OutOrStdout()
	for _, c := range instrument.Channels() {
		if len(cameras) > 0 && !contains(cameras, c.Camera.Code) {
			continue
		}
		res, err := c.NativeResolution(mode)
		if err != nil {
			return err
		}
		note := ""
		if res != instrument.HighResolution() {
			note = "upsample"
		}
		fmt.Fprintf(w, "%s\t%5.1f°\t%5.0f nm\t%4.0f m\t%s\n",
			c, c.Camera.ViewAngle, c.Band.Wavelength, res, note)
	}
	return nil
}

// checkCameras reads a list of camera codes from a configuration value
// and returns them in canonical form.
func checkCameras(v interface{}) ([]string, error) {
	s, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, errors.Wrap(err, "misrhr: reading 'cameras'")
	}
	out := make([]string, 0, len(s))
	for _, c := range splitList(expandStringSlice(s)) {
		code, err := misrid.CheckCamera(c)
		if err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, nil
}
