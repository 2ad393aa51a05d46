/*
 * logger.go, part of stogto.
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

//Package logger keeps the logger used by the stogto command.
//Library packages don't log unless they are given a logger, this is the
//one the command gives them.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

//Logger is the global logger of the command.
var Logger *log.Logger

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

//Configure sets the level and the destination of the logger. An empty level
//is taken from the STOGTO_LOG_LEVEL environment variable, and defaults to
//info. An empty logFile means stderr. The returned closer must be closed
//when the program ends, it is a no-op for stderr.
func Configure(level, logFile string) (io.Closer, error) {
	if level == "" {
		level = strings.ToLower(os.Getenv("STOGTO_LOG_LEVEL"))
	}
	var output io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, err
		}
		output = file
		closer = file
	}
	Logger = New(output, level)
	return closer, nil
}

//New returns a logger that writes to w at the given level, with the
//same styles as the global one.
func New(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{Prefix: "stogto"})
	l.SetTimeFormat("")
	l.SetLevel(ParseLevel(level))
	l.SetStyles(styles())
	return l
}

//ParseLevel converts a level name to a log.Level. Unknown names are info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("214")).
		Foreground(lipgloss.Color("15"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("196")).
		Foreground(lipgloss.Color("15"))
	s.Keys["atom"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	return s
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

//Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

//Info logs an info message with optional key-value pairs.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

//Warn logs a warning with optional key-value pairs.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

//Error logs an error message with optional key-value pairs.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
