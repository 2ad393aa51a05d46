/*
 * config.go, part of stogto.
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

package sto

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/qcovlp/stogto"
	"gopkg.in/yaml.v3"
)

//Registry files look like this (TOML):
//
//	base = "am1"
//
//	[[element]]
//	symbol = "S"
//	  [[element.orbital]]
//	  n = 3
//	  l = "s"
//	  zeta = 2.366515
//
//and the YAML version uses "elements" and "orbitals" as list keys.
//base can be "am1", to start from the built-in table, or "none"/empty.

type fileOrbital struct {
	N     int     `toml:"n" yaml:"n"`
	L     string  `toml:"l" yaml:"l"`
	Zeta  float64 `toml:"zeta" yaml:"zeta"`
	Label string  `toml:"label" yaml:"label"`
}

type fileElement struct {
	Symbol   string        `toml:"symbol" yaml:"symbol"`
	Orbitals []fileOrbital `toml:"orbital" yaml:"orbitals"`
}

type fileTable struct {
	Base     string        `toml:"base" yaml:"base"`
	Elements []fileElement `toml:"element" yaml:"elements"`
}

//Formats accepted by Decode.
const (
	TOML = "toml"
	YAML = "yaml"
)

//Load reads a registry file, in TOML or YAML depending on the extension
//(.toml, .yaml or .yml), and returns the resulting table.
func Load(path string) (*Table, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = TOML
	case ".yaml", ".yml":
		format = YAML
	default:
		return nil, stogto.NewError(stogto.ConfigurationError, "sto.Load", "can't tell the format of registry file %s from its extension", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, stogto.NewError(stogto.ConfigurationError, "sto.Load", "%v", err)
	}
	defer f.Close()
	T, err := Decode(f, format)
	if err != nil {
		return nil, stogto.ErrDecorate(err, "sto.Load")
	}
	return T, nil
}

//Decode reads a registry in the given format (TOML or YAML) from r.
func Decode(r io.Reader, format string) (*Table, error) {
	var ft fileTable
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&ft); err != nil {
			return nil, stogto.NewError(stogto.ConfigurationError, "sto.Decode", "toml: %v", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&ft); err != nil && err != io.EOF {
			return nil, stogto.NewError(stogto.ConfigurationError, "sto.Decode", "yaml: %v", err)
		}
	default:
		return nil, stogto.NewError(stogto.ConfigurationError, "sto.Decode", "unknown registry format %q", format)
	}
	elems := make([]Element, 0, len(ft.Elements))
	for _, fe := range ft.Elements {
		e := Element{Symbol: fe.Symbol, Orbitals: make([]Orbital, 0, len(fe.Orbitals))}
		for _, fo := range fe.Orbitals {
			L, err := stogto.ParseAngMom(fo.L)
			if err != nil {
				return nil, stogto.NewError(stogto.ConfigurationError, "sto.Decode", "element %s: %v", fe.Symbol, err)
			}
			e.Orbitals = append(e.Orbitals, Orbital{N: fo.N, L: L, Zeta: fo.Zeta, Label: fo.Label})
		}
		elems = append(elems, e)
	}
	var T *Table
	var err error
	switch strings.ToLower(ft.Base) {
	case "am1":
		T, err = Default().With(elems...)
	case "", "none":
		T, err = NewTable(elems...)
	default:
		return nil, stogto.NewError(stogto.ConfigurationError, "sto.Decode", "unknown base table %q", ft.Base)
	}
	if err != nil {
		return nil, stogto.ErrDecorate(err, "sto.Decode")
	}
	return T, nil
}
