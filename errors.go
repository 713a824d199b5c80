package argmatch

import (
	"errors"

	"github.com/napalu/argmatch/errs"
	"github.com/napalu/argmatch/i18n"
)

// ErrorKind classifies a ParseError
type ErrorKind int

const (
	UnknownArgument ErrorKind = iota + 1
	MissingRequiredArgument
	ArgumentConflict
	TooFewValues
	TooManyValues
	InvalidValue
	MissingSubcommand
	// HelpRequested and VersionRequested are not failures: the caller prints Output
	// and exits successfully.
	HelpRequested
	VersionRequested
)

var kindNames = map[ErrorKind]string{
	UnknownArgument:         "UnknownArgument",
	MissingRequiredArgument: "MissingRequiredArgument",
	ArgumentConflict:        "ArgumentConflict",
	TooFewValues:            "TooFewValues",
	TooManyValues:           "TooManyValues",
	InvalidValue:            "InvalidValue",
	MissingSubcommand:       "MissingSubcommand",
	HelpRequested:           "HelpRequested",
	VersionRequested:        "VersionRequested",
}

var kindErrors = map[ErrorKind]*i18n.TrError{
	UnknownArgument:         errs.ErrUnknownArgument,
	MissingRequiredArgument: errs.ErrMissingRequiredArgument,
	ArgumentConflict:        errs.ErrArgumentConflict,
	TooFewValues:            errs.ErrTooFewValues,
	TooManyValues:           errs.ErrTooManyValues,
	InvalidValue:            errs.ErrInvalidValue,
	MissingSubcommand:       errs.ErrMissingSubcommand,
	HelpRequested:           errs.ErrHelpRequested,
	VersionRequested:        errs.ErrVersionRequested,
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsInformational reports whether k is a help or version request
func (k ErrorKind) IsInformational() bool {
	return k == HelpRequested || k == VersionRequested
}

// Err returns the errs sentinel of k, or nil for an invalid kind
func (k ErrorKind) Err() error {
	if e, ok := kindErrors[k]; ok {
		return e
	}
	return nil
}

// ParseError is returned by Parse for every outcome other than a successful match,
// including help and version requests. It matches its kind sentinel with errors.Is:
//
//	if errors.Is(err, errs.ErrHelpRequested) { ... }
type ParseError struct {
	Kind ErrorKind
	// Command is the path of the command being matched when the error occurred
	Command []string
	// Argument names the offending argument or group, or holds the unrecognised token
	Argument string
	// Other is the second party of a conflict or the argument which requires Argument
	Other string
	// Value is the offending value, if any
	Value string
	// Allowed lists the possible values when Kind is InvalidValue
	Allowed []string
	// Suggestion is a close known name for an unknown argument or subcommand
	Suggestion string
	// Usage is the usage line of Command
	Usage string
	// Output is the help page or version line for informational kinds
	Output string

	err      error
	rendered string
}

func (e *ParseError) Error() string {
	if e.err == nil {
		return e.Kind.String()
	}
	return e.err.Error()
}

func (e *ParseError) Unwrap() error { return e.err }

// Is matches the sentinel of the error kind. The detailed sentinel is reached through Unwrap.
func (e *ParseError) Is(target error) bool {
	kind := e.Kind.Err()
	return kind != nil && errors.Is(kind, target)
}

// Render returns the text to show the user: the help or version output for
// informational kinds, otherwise the error message followed by the usage block
func (e *ParseError) Render() string {
	return e.rendered
}
