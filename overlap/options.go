/*
 * options.go, part of stogto.
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

package overlap

import "github.com/charmbracelet/log"

//Options contains the options for the matrix assembly.
type Options struct {
	cpus   int
	logger *log.Logger
}

//DefaultOptions returns options for a serial assembly that
//doesn't log anything.
func DefaultOptions() *Options {
	r := new(Options)
	r.cpus = 1
	return r
}

//Returns the number of gorutines to be used,
//and sets it to a new value, if given.
//Values smaller than 1 are ignored.
func (O *Options) Cpus(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}

//Returns the logger used for warnings and debug messages, and sets it to
//a new value, if given. A nil logger means nothing is logged.
func (O *Options) Logger(l ...*log.Logger) *log.Logger {
	if len(l) > 0 {
		O.logger = l[0]
	}
	return O.logger
}

func (O *Options) warn(msg string, keyvals ...interface{}) {
	if O.logger != nil {
		O.logger.Warn(msg, keyvals...)
	}
}

func (O *Options) debug(msg string, keyvals ...interface{}) {
	if O.logger != nil {
		O.logger.Debug(msg, keyvals...)
	}
}
