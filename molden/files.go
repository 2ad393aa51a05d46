/*
 * files.go, part of stogto.
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

package molden

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/qcovlp/stogto"
)

//Why couldn't *zstd.Decoder implement io.ReadCloser?
type zstdCloser struct {
	*zstd.Decoder
}

//Close closes the decoder. It can't be used after this call.
func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//OpenFile opens the file name for reading, decompressing it on the fly if
//its extension is .gz or .zst (or .zstd). The caller must close the returned
//reader, which also closes the file.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("molden: %w", err)
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case ".zst", ".zstd":
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) {
			r, err := zstd.NewReader(a)
			if err != nil {
				return nil, err
			}
			return zstdCloser{r}, nil
		}
	default:
		return f, nil
	}
	r, err := AnyNewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("molden: can't decompress %s: %w", name, err)
	}
	return &fileReader{ReadCloser: r, f: f}, nil
}

//fileReader closes both the decompressor and the file.
type fileReader struct {
	io.ReadCloser
	f *os.File
}

func (fr *fileReader) Close() error {
	err := fr.ReadCloser.Close()
	if ferr := fr.f.Close(); err == nil {
		err = ferr
	}
	return err
}

//ReadFile reads the Molden file name, which can be compressed with gzip (.gz)
//or zstd (.zst). See Read.
func ReadFile(name string) (*stogto.Molecule, error) {
	r, err := OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	mol, err := Read(r)
	if err != nil {
		return nil, stogto.ErrDecorate(err, "molden.ReadFile "+filepath.Base(name))
	}
	return mol, nil
}
