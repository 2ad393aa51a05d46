/*
 * errors.go, part of stogto.
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

package stogto

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies the errors produced by the library. Each kind is
// itself an error, so it can be used as the target of errors.Is.
type ErrorKind int

const (
	ConfigurationError ErrorKind = iota + 1 //element not registered, invalid registry
	UnsupportedBasis                        //shell label or STO/GTO combination outside s/p
	MissingParameter                        //p-type side without an axis selector
	NumericalDomain                         //invalid Hermite degree, quadrature order, exponent...
	ParseError                              //malformed input file
)

var kindNames = map[ErrorKind]string{
	ConfigurationError: "configuration error",
	UnsupportedBasis:   "unsupported basis",
	MissingParameter:   "missing parameter",
	NumericalDomain:    "numerical domain error",
	ParseError:         "parse error",
}

func (k ErrorKind) Error() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// CError is the general error of the package. It fulfills the Error interface
// and errors.Is(err, kind) is true for its own ErrorKind.
type CError struct {
	message  string
	kind     ErrorKind
	deco     []string
	critical bool
}

// NewError returns a critical CError of the given kind, already decorated with caller.
func NewError(kind ErrorKind, caller string, format string, args ...interface{}) *CError {
	return &CError{message: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}, critical: true}
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("stogto: %s: %s", err.kind.Error(), err.message)
	}
	//deco holds the innermost function first.
	path := make([]string, len(err.deco))
	for i, v := range err.deco {
		path[len(err.deco)-1-i] = v
	}
	return fmt.Sprintf("stogto/%s: %s: %s", strings.Join(path, "/"), err.kind.Error(), err.message)
}

// Decorate adds deco to the error's call trace, unless deco is empty,
// and returns the trace.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise.
func (err *CError) Critical() bool { return err.critical }

// Kind returns the ErrorKind of the error.
func (err *CError) Kind() ErrorKind { return err.kind }

// Message returns the error message, without kind or trace.
func (err *CError) Message() string { return err.message }

// Is allows errors.Is(err, kind) to match.
func (err *CError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == err.kind
}

// ErrDecorate decorates err with the caller's name, if err implements Error,
// and returns it. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
