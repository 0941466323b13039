package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ninjagen/internal/errs"
)

// Exit codes
const (
	NO_INPUT_FILES int = iota + 1
	FILE_UNREADABLE
	CONFIGURATION_ERROR
	PARSE_ERROR
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow)
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case errs.Is(err, errs.UsageError):
		return NO_INPUT_FILES
	case errs.Is(err, errs.FileError):
		return FILE_UNREADABLE
	case errs.Is(err, errs.ConfigurationError):
		return CONFIGURATION_ERROR
	case errs.Is(err, errs.SourceParseError):
		return PARSE_ERROR
	}
	return 1
}

// RaiseException reports err on w and returns the exit code to use.
func RaiseException(w io.Writer, err error) int {
	_, _ = errorColor.Fprint(w, "[!] ")
	_, _ = fmt.Fprintln(w, err)
	return ExitCode(err)
}

func Warn(w io.Writer, format string, args ...any) {
	_, _ = warnColor.Fprintf(w, "[warn] "+format+"\n", args...)
}
