// Package errs declares the translation keys and sentinel errors used throughout argmatch.
package errs

const (
	prefixKey = "argmatch"
)

const (
	ErrorPrefixKey    = prefixKey + ".error"
	KindPrefixKey     = ErrorPrefixKey + ".kind"
	ParsePrefixKey    = ErrorPrefixKey + ".parse"
	BuildPrefixKey    = ErrorPrefixKey + ".build"
	ValuePrefixKey    = ErrorPrefixKey + ".value"
	DocumentPrefixKey = ErrorPrefixKey + ".document"
)

// Error kinds
const (
	ErrUnknownArgumentKey         = KindPrefixKey + ".unknown_argument"
	ErrMissingRequiredArgumentKey = KindPrefixKey + ".missing_required_argument"
	ErrArgumentConflictKey        = KindPrefixKey + ".argument_conflict"
	ErrTooFewValuesKey            = KindPrefixKey + ".too_few_values"
	ErrTooManyValuesKey           = KindPrefixKey + ".too_many_values"
	ErrInvalidValueKey            = KindPrefixKey + ".invalid_value"
	ErrMissingSubcommandKey       = KindPrefixKey + ".missing_subcommand"
	ErrHelpRequestedKey           = KindPrefixKey + ".help_requested"
	ErrVersionRequestedKey        = KindPrefixKey + ".version_requested"
)

// Matching and validation details
const (
	ErrUnexpectedArgumentKey = ParsePrefixKey + ".unexpected_argument"
	ErrUnknownSubcommandKey  = ParsePrefixKey + ".unknown_subcommand"
	ErrRequiredArgumentKey   = ParsePrefixKey + ".required_argument"
	ErrRequiredGroupKey      = ParsePrefixKey + ".required_group"
	ErrMissingDependencyKey  = ParsePrefixKey + ".missing_dependency"
	ErrConflictingArgsKey    = ParsePrefixKey + ".conflicting_arguments"
	ErrRepeatedArgumentKey   = ParsePrefixKey + ".repeated_argument"
	ErrNotEnoughValuesKey    = ParsePrefixKey + ".not_enough_values"
	ErrAmbiguousClusterKey   = ParsePrefixKey + ".ambiguous_cluster"
	ErrExcessValuesKey       = ParsePrefixKey + ".excess_values"
	ErrUnexpectedValueKey    = ParsePrefixKey + ".unexpected_value"
	ErrValueNotAllowedKey    = ParsePrefixKey + ".value_not_allowed"
	ErrSubcommandExpectedKey = ParsePrefixKey + ".subcommand_expected"
	ErrHelpKey               = ParsePrefixKey + ".help"
	ErrVersionKey            = ParsePrefixKey + ".version"
	ErrSplitArgumentsKey     = ParsePrefixKey + ".split_arguments"
	ErrSuggestionKey         = ParsePrefixKey + ".suggestion"
)

// Model build errors
const (
	ErrNilCommandKey          = BuildPrefixKey + ".nil_command"
	ErrNilBundleKey           = BuildPrefixKey + ".nil_bundle"
	ErrEmptyNameKey           = BuildPrefixKey + ".empty_name"
	ErrDuplicateArgumentKey   = BuildPrefixKey + ".duplicate_argument"
	ErrDuplicateShortKey      = BuildPrefixKey + ".duplicate_short"
	ErrDuplicateLongKey       = BuildPrefixKey + ".duplicate_long"
	ErrInvalidShortKey        = BuildPrefixKey + ".invalid_short"
	ErrInvalidLongKey         = BuildPrefixKey + ".invalid_long"
	ErrPositionalWithFlagKey  = BuildPrefixKey + ".positional_with_flag"
	ErrPositionalGapKey       = BuildPrefixKey + ".positional_gap"
	ErrDuplicateIndexKey      = BuildPrefixKey + ".duplicate_index"
	ErrGreedyNotLastKey       = BuildPrefixKey + ".greedy_not_last"
	ErrInvalidArityKey        = BuildPrefixKey + ".invalid_arity"
	ErrUnknownReferenceKey    = BuildPrefixKey + ".unknown_reference"
	ErrUnknownGroupMemberKey  = BuildPrefixKey + ".unknown_group_member"
	ErrDuplicateGroupKey      = BuildPrefixKey + ".duplicate_group"
	ErrInvalidDefaultKey      = BuildPrefixKey + ".invalid_default"
	ErrDuplicateSubcommandKey = BuildPrefixKey + ".duplicate_subcommand"
	ErrUnknownSettingKey      = BuildPrefixKey + ".unknown_setting"
	ErrBuildContextKey        = BuildPrefixKey + ".context"
)

// Value conversion errors
const (
	ErrArgumentNotFoundKey = ValuePrefixKey + ".argument_not_found"
	ErrNoValueKey          = ValuePrefixKey + ".no_value"
	ErrParseBoolKey        = ValuePrefixKey + ".bool"
	ErrParseIntKey         = ValuePrefixKey + ".int"
	ErrParseFloatKey       = ValuePrefixKey + ".float"
	ErrParseDurationKey    = ValuePrefixKey + ".duration"
	ErrParseTimeKey        = ValuePrefixKey + ".time"
)

// Declarative document errors
const (
	ErrDecodeDocumentKey    = DocumentPrefixKey + ".decode"
	ErrUnsupportedFormatKey = DocumentPrefixKey + ".unsupported_format"
	ErrUnknownFieldKey      = DocumentPrefixKey + ".unknown_field"
	ErrInvalidFieldKey      = DocumentPrefixKey + ".invalid_field"
	ErrDocumentContextKey   = DocumentPrefixKey + ".context"
)
