// Package types provides common type definitions for the goargs library.
// This file contains constants for all translation keys used throughout the library.
package types

// Prefix for all goargs translation keys
const (
	PrefixKey = "goargs"
)

// Key prefixes
const (
	ErrorPrefixKey    = PrefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	WarningPrefixKey  = PrefixKey + ".warning"
	MessagePrefixKey  = PrefixKey + ".msg"
)

// Retrieval and registration errors
const (
	ErrArgumentNotFoundKey    = ErrorPrefixKey + ".argument_not_found"
	ErrValueUninitializedKey  = ErrorPrefixKey + ".value_uninitialized"
	ErrIndexOutOfBoundsKey    = ErrorPrefixKey + ".index_out_of_bounds"
	ErrAlreadyParsedKey       = ErrorPrefixKey + ".already_parsed"
	ErrEmptyOptionNameKey     = ErrorPrefixKey + ".empty_option_name"
	ErrOptionAlreadyExistsKey = ErrorPrefixKey + ".option_already_exists"
	ErrShortOptionConflictKey = ErrorPrefixKey + ".short_option_conflict"
	ErrBundledValueOptionKey  = ErrorPrefixKey + ".bundled_value_option"
	ErrUnsupportedTypeKey     = ErrorPrefixKey + ".unsupported_type"
	ErrNotAPointerKey         = ErrorPrefixKey + ".not_a_pointer"
	ErrNilPointerKey          = ErrorPrefixKey + ".nil_pointer"
	ErrInvalidTagKey          = ErrorPrefixKey + ".invalid_tag"
	ErrInvalidDefaultKey      = ErrorPrefixKey + ".invalid_default"
)

// Conversion errors
const (
	ErrConversionKey    = ParseErrorPathKey + ".conversion"
	ErrParseBoolKey     = ParseErrorPathKey + ".bool"
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseUintKey     = ParseErrorPathKey + ".uint"
	ErrParseFloatKey    = ParseErrorPathKey + ".float"
	ErrParseTimeKey     = ParseErrorPathKey + ".time"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
)

// Warnings
const (
	WarnConversionKey   = WarningPrefixKey + ".conversion"
	WarnUnknownTokenKey = WarningPrefixKey + ".unknown_token"
	WarnBundledValueKey = WarningPrefixKey + ".bundled_value"
)

// Help messages
const (
	MsgDefaultsToKey = MessagePrefixKey + ".defaults_to"
	HelpUsageKey     = PrefixKey + ".help.usage"
	HelpOptionsKey   = PrefixKey + ".help.options"
)
