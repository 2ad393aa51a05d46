/*
 * commands.go, part of stogto.
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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/qcovlp/stogto"
	"github.com/qcovlp/stogto/archive"
	"github.com/qcovlp/stogto/internal/logger"
	"github.com/qcovlp/stogto/molden"
	"github.com/qcovlp/stogto/overlap"
	"github.com/qcovlp/stogto/ovlplot"
	"github.com/qcovlp/stogto/sto"
	"github.com/spf13/cobra"
)

//table returns the STO table given with --registry, or the built-in one.
func (a *app) table() (*sto.Table, error) {
	reg := a.v.GetString("registry")
	if reg == "" {
		return sto.Default(), nil
	}
	logger.Debug("reading STO registry", "file", reg)
	return sto.Load(reg)
}

func (a *app) matrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix <file.molden>",
		Short: "Compute the valence STO/GTO overlap matrix",
		Long: `Compute the overlap between the valence STOs and the valence GTOs of the
molecule in a Molden file, which can be compressed with gzip (.gz) or zstd (.zst).`,
		Args: cobra.ExactArgs(1),
		RunE: a.runMatrix,
	}
	f := cmd.Flags()
	f.Int("quad", stogto.DefaultQuadOrder, "Number of Gauss-Laguerre points")
	f.Int("cpus", 1, "Number of rows computed concurrently")
	f.String("format", "text", "Output format (text|json)")
	f.Int("width", 12, "Field width for the text format")
	f.StringP("output", "o", "", "Write the matrix to this file instead of stdout")
	f.String("plot", "", "Save a heat map of the matrix to this file (png, svg, pdf)")
	f.String("archive", "", "Record the matrix in this SQLite archive")
	return cmd
}

func (a *app) runMatrix(cmd *cobra.Command, args []string) error {
	T, err := a.table()
	if err != nil {
		return err
	}
	mol, err := molden.ReadFile(args[0])
	if err != nil {
		return err
	}
	logger.Info("read molecule", "file", args[0], "atoms", mol.Len())
	order := a.v.GetInt("quad")
	O := overlap.DefaultOptions()
	O.Cpus(a.v.GetInt("cpus"))
	O.Logger(logger.Logger)
	M, err := overlap.BuildValence(mol, T, order, O)
	if err != nil {
		return err
	}
	format, width := a.v.GetString("format"), a.v.GetInt("width")
	write := func(w io.Writer) error { return writeMatrix(w, M, format, width) }
	if name := a.v.GetString("output"); name != "" {
		if err := writeFile(name, write); err != nil {
			return err
		}
	} else if err := write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if name := a.v.GetString("plot"); name != "" {
		if err := ovlplot.HeatMap(M, filepath.Base(args[0]), name); err != nil {
			return err
		}
		logger.Info("saved heat map", "file", name)
	}
	if path := a.v.GetString("archive"); path != "" {
		S, err := archive.Open(path)
		if err != nil {
			return err
		}
		defer S.Close()
		rec, err := S.Save(cmd.Context(), args[0], order, M)
		if err != nil {
			return err
		}
		logger.Info("archived matrix", "id", rec.ID, "uuid", rec.UUID)
	}
	return nil
}

func writeMatrix(w io.Writer, M *overlap.Matrix, format string, width int) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(M)
	case "text", "":
		return M.Format(w, width)
	}
	return fmt.Errorf("unknown output format %q", format)
}

//writeFile creates name, calls write on it and closes it. The close error is
//returned too, as it is where a failed flush shows up.
func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (a *app) elementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the STO parameters of the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			T, err := a.table()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range T.Symbols() {
				e, _ := T.Lookup(s)
				fmt.Fprintf(out, "%-3s", s)
				for _, o := range e.Orbitals {
					fmt.Fprintf(out, " %s", o)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func (a *app) runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the matrices recorded in an archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.v.GetString("archive")
			if path == "" {
				return fmt.Errorf("runs needs --archive")
			}
			S, err := archive.Open(path)
			if err != nil {
				return err
			}
			defer S.Close()
			recs, err := S.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range recs {
				fmt.Fprintf(out, "%4d %s %s %dx%d quad=%d %s\n", r.ID, r.UUID, r.Created.Format("2006-01-02 15:04:05"), r.Rows, r.Cols, r.QuadOrder, r.Source)
			}
			return nil
		},
	}
	cmd.Flags().String("archive", "", "SQLite archive to read")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stogto v%s\n", version)
		},
	}
}
