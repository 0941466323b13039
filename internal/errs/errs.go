// Package errs defines the error codes shared by the spec decoder, the
// compiler and the CLI.
package errs

import (
	"errors"
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

const (
	// ConfigurationError marks an unresolvable rule category, a missing
	// inference rule or a malformed target entry.
	ConfigurationError goerrors.ErrorCode = "CONFIGURATION_ERROR"
	// SourceParseError marks a spec stream that could not be decoded.
	SourceParseError goerrors.ErrorCode = "SOURCE_PARSE_ERROR"
	// FileError marks an input file that could not be read.
	FileError goerrors.ErrorCode = "FILE_ERROR"
	// UsageError marks bad command line usage.
	UsageError goerrors.ErrorCode = "USAGE_ERROR"
)

func Configuration(format string, args ...any) error {
	return goerrors.New(ConfigurationError, fmt.Sprintf(format, args...))
}

func SourceParse(source string, err error) error {
	return goerrors.Wrap(err, SourceParseError, fmt.Sprintf("%s: cannot parse spec: %v", source, err))
}

func File(path string, err error) error {
	return goerrors.Wrap(err, FileError, fmt.Sprintf("cannot read %s: %v", path, err))
}

func Usage(format string, args ...any) error {
	return goerrors.New(UsageError, fmt.Sprintf(format, args...))
}

// Is reports whether err, or anything it wraps, carries code.
func Is(err error, code goerrors.ErrorCode) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if coded, ok := err.(*goerrors.Error); ok && goerrors.HasCode(coded, code) {
			return true
		}
	}
	return false
}
