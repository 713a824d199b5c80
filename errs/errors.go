package errs

import (
	"sync"

	"github.com/napalu/argmatch/i18n"
)

// Error kinds reported by a parse. Every *argmatch.ParseError matches exactly one of them.
var (
	ErrUnknownArgument         = i18n.NewError(ErrUnknownArgumentKey)
	ErrMissingRequiredArgument = i18n.NewError(ErrMissingRequiredArgumentKey)
	ErrArgumentConflict        = i18n.NewError(ErrArgumentConflictKey)
	ErrTooFewValues            = i18n.NewError(ErrTooFewValuesKey)
	ErrTooManyValues           = i18n.NewError(ErrTooManyValuesKey)
	ErrInvalidValue            = i18n.NewError(ErrInvalidValueKey)
	ErrMissingSubcommand       = i18n.NewError(ErrMissingSubcommandKey)
	ErrHelpRequested           = i18n.NewError(ErrHelpRequestedKey)
	ErrVersionRequested        = i18n.NewError(ErrVersionRequestedKey)
)

// Matching and validation details
var (
	ErrUnexpectedArgument = i18n.NewError(ErrUnexpectedArgumentKey)
	ErrUnknownSubcommand  = i18n.NewError(ErrUnknownSubcommandKey)
	ErrRequiredArgument   = i18n.NewError(ErrRequiredArgumentKey)
	ErrRequiredGroup      = i18n.NewError(ErrRequiredGroupKey)
	ErrMissingDependency  = i18n.NewError(ErrMissingDependencyKey)
	ErrConflictingArgs    = i18n.NewError(ErrConflictingArgsKey)
	ErrRepeatedArgument   = i18n.NewError(ErrRepeatedArgumentKey)
	ErrNotEnoughValues    = i18n.NewError(ErrNotEnoughValuesKey)
	ErrAmbiguousCluster   = i18n.NewError(ErrAmbiguousClusterKey)
	ErrExcessValues       = i18n.NewError(ErrExcessValuesKey)
	ErrUnexpectedValue    = i18n.NewError(ErrUnexpectedValueKey)
	ErrValueNotAllowed    = i18n.NewError(ErrValueNotAllowedKey)
	ErrSubcommandExpected = i18n.NewError(ErrSubcommandExpectedKey)
	ErrHelp               = i18n.NewError(ErrHelpKey)
	ErrVersion            = i18n.NewError(ErrVersionKey)
	ErrSplitArguments     = i18n.NewError(ErrSplitArgumentsKey)
	ErrSuggestion         = i18n.NewError(ErrSuggestionKey)
)

// Model build errors
var (
	ErrNilCommand          = i18n.NewError(ErrNilCommandKey)
	ErrNilBundle           = i18n.NewError(ErrNilBundleKey)
	ErrEmptyName           = i18n.NewError(ErrEmptyNameKey)
	ErrDuplicateArgument   = i18n.NewError(ErrDuplicateArgumentKey)
	ErrDuplicateShort      = i18n.NewError(ErrDuplicateShortKey)
	ErrDuplicateLong       = i18n.NewError(ErrDuplicateLongKey)
	ErrInvalidShort        = i18n.NewError(ErrInvalidShortKey)
	ErrInvalidLong         = i18n.NewError(ErrInvalidLongKey)
	ErrPositionalWithFlag  = i18n.NewError(ErrPositionalWithFlagKey)
	ErrPositionalGap       = i18n.NewError(ErrPositionalGapKey)
	ErrDuplicateIndex      = i18n.NewError(ErrDuplicateIndexKey)
	ErrGreedyNotLast       = i18n.NewError(ErrGreedyNotLastKey)
	ErrInvalidArity        = i18n.NewError(ErrInvalidArityKey)
	ErrUnknownReference    = i18n.NewError(ErrUnknownReferenceKey)
	ErrUnknownGroupMember  = i18n.NewError(ErrUnknownGroupMemberKey)
	ErrDuplicateGroup      = i18n.NewError(ErrDuplicateGroupKey)
	ErrInvalidDefault      = i18n.NewError(ErrInvalidDefaultKey)
	ErrDuplicateSubcommand = i18n.NewError(ErrDuplicateSubcommandKey)
	ErrUnknownSetting      = i18n.NewError(ErrUnknownSettingKey)
	ErrBuildContext        = i18n.NewError(ErrBuildContextKey)
)

// Value conversion errors
var (
	ErrArgumentNotFound = i18n.NewError(ErrArgumentNotFoundKey)
	ErrNoValue          = i18n.NewError(ErrNoValueKey)
	ErrParseBool        = i18n.NewError(ErrParseBoolKey)
	ErrParseInt         = i18n.NewError(ErrParseIntKey)
	ErrParseFloat       = i18n.NewError(ErrParseFloatKey)
	ErrParseDuration    = i18n.NewError(ErrParseDurationKey)
	ErrParseTime        = i18n.NewError(ErrParseTimeKey)
)

// Declarative document errors
var (
	ErrDecodeDocument    = i18n.NewError(ErrDecodeDocumentKey)
	ErrUnsupportedFormat = i18n.NewError(ErrUnsupportedFormatKey)
	ErrUnknownField      = i18n.NewError(ErrUnknownFieldKey)
	ErrInvalidField      = i18n.NewError(ErrInvalidFieldKey)
	ErrDocumentContext   = i18n.NewError(ErrDocumentContextKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []*i18n.TrError
}

var sysErrors = &builtInErrors{
	All: []*i18n.TrError{
		ErrUnknownArgument,
		ErrMissingRequiredArgument,
		ErrArgumentConflict,
		ErrTooFewValues,
		ErrTooManyValues,
		ErrInvalidValue,
		ErrMissingSubcommand,
		ErrHelpRequested,
		ErrVersionRequested,
		ErrUnexpectedArgument,
		ErrUnknownSubcommand,
		ErrRequiredArgument,
		ErrRequiredGroup,
		ErrMissingDependency,
		ErrConflictingArgs,
		ErrRepeatedArgument,
		ErrNotEnoughValues,
		ErrAmbiguousCluster,
		ErrExcessValues,
		ErrUnexpectedValue,
		ErrValueNotAllowed,
		ErrSubcommandExpected,
		ErrHelp,
		ErrVersion,
		ErrSplitArguments,
		ErrSuggestion,
		ErrNilCommand,
		ErrNilBundle,
		ErrEmptyName,
		ErrDuplicateArgument,
		ErrDuplicateShort,
		ErrDuplicateLong,
		ErrInvalidShort,
		ErrInvalidLong,
		ErrPositionalWithFlag,
		ErrPositionalGap,
		ErrDuplicateIndex,
		ErrGreedyNotLast,
		ErrInvalidArity,
		ErrUnknownReference,
		ErrUnknownGroupMember,
		ErrDuplicateGroup,
		ErrInvalidDefault,
		ErrDuplicateSubcommand,
		ErrUnknownSetting,
		ErrBuildContext,
		ErrArgumentNotFound,
		ErrNoValue,
		ErrParseBool,
		ErrParseInt,
		ErrParseFloat,
		ErrParseDuration,
		ErrParseTime,
		ErrDecodeDocument,
		ErrUnsupportedFormat,
		ErrUnknownField,
		ErrInvalidField,
		ErrDocumentContext,
	},
}

// Keys returns the translation key of every built-in error
func Keys() []string {
	sysErrors.mu.Lock()
	defer sysErrors.mu.Unlock()

	keys := make([]string, 0, len(sysErrors.All))
	for _, e := range sysErrors.All {
		keys = append(keys, e.Key())
	}

	return keys
}

// UpdateMessageProvider switches the message provider of all built-in errors.
//
// Example:
//
//	bundle := i18n.Default()
//	errs.UpdateMessageProvider(i18n.NewLanguageProvider(bundle, language.German))
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
