/*
 * main.go, part of stogto.
 *
 * Copyright 2025 The stogto Authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Command stogto computes the overlap matrix between the valence Slater-type
//orbitals of a molecule and the valence contracted Gaussians of the basis in
//a Molden file.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/qcovlp/stogto/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.3.0" //set at build time for releases

//app keeps the configuration shared by the commands. Flags are bound to
//a viper instance, so every option can also come from a config file or
//from a STOGTO_ environment variable.
type app struct {
	v      *viper.Viper
	closer func() error
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), closer: func() error { return nil }}
	root := &cobra.Command{
		Use:   "stogto",
		Short: "STO/GTO valence overlap matrices",
		Long: `stogto computes the overlap between the valence Slater-type orbitals of
each atom (from a per-element parameter table) and the valence contracted
Gaussian shells of a basis read from a Molden file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.closer()
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "Configuration file (toml or yaml)")
	pf.String("log-level", "", "Log level (debug|info|warn|error) [default: info]")
	pf.String("log-file", "", "Write logs to this file instead of stderr")
	pf.String("registry", "", "STO parameter file (toml or yaml) [default: built-in AM1 table]")
	root.AddCommand(a.matrixCmd(), a.elementsCmd(), a.runsCmd(), a.versionCmd())
	return root
}

//setup runs before any command. The flags of the command being run are
//bound here, as different commands have flags with the same name.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("STOGTO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if cfg := a.v.GetString("config"); cfg != "" {
		a.v.SetConfigFile(cfg)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfg, err)
		}
	}
	c, err := logger.Configure(a.v.GetString("log-level"), a.v.GetString("log-file"))
	if err != nil {
		return fmt.Errorf("configuring the logger: %w", err)
	}
	a.closer = c.Close
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
