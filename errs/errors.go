// Package errs declares the sentinel errors returned by goargs. Every error is translatable: its message is
// resolved through the i18n bundle at the time Error() is called. Match with errors.Is.
package errs

import (
	"github.com/napalu/goargs/i18n"
	"github.com/napalu/goargs/types"
)

// Retrieval errors
var (
	ErrArgumentNotFound   = i18n.NewError(types.ErrArgumentNotFoundKey)
	ErrValueUninitialized = i18n.NewError(types.ErrValueUninitializedKey)
	ErrIndexOutOfBounds   = i18n.NewError(types.ErrIndexOutOfBoundsKey)
)

// Registration and parse errors
var (
	ErrAlreadyParsed       = i18n.NewError(types.ErrAlreadyParsedKey)
	ErrEmptyOptionName     = i18n.NewError(types.ErrEmptyOptionNameKey)
	ErrOptionAlreadyExists = i18n.NewError(types.ErrOptionAlreadyExistsKey)
	ErrShortOptionConflict = i18n.NewError(types.ErrShortOptionConflictKey)
	ErrBundledValueOption  = i18n.NewError(types.ErrBundledValueOptionKey)
	ErrConversion          = i18n.NewError(types.ErrConversionKey)
)

// Struct binding errors
var (
	ErrUnsupportedType = i18n.NewError(types.ErrUnsupportedTypeKey)
	ErrNotAPointer     = i18n.NewError(types.ErrNotAPointerKey)
	ErrNilPointer      = i18n.NewError(types.ErrNilPointerKey)
	ErrInvalidTag      = i18n.NewError(types.ErrInvalidTagKey)
	ErrInvalidDefault  = i18n.NewError(types.ErrInvalidDefaultKey)
)

// Conversion errors
var (
	ErrParseBool     = i18n.NewError(types.ErrParseBoolKey)
	ErrParseInt      = i18n.NewError(types.ErrParseIntKey)
	ErrParseUint     = i18n.NewError(types.ErrParseUintKey)
	ErrParseFloat    = i18n.NewError(types.ErrParseFloatKey)
	ErrParseTime     = i18n.NewError(types.ErrParseTimeKey)
	ErrParseDuration = i18n.NewError(types.ErrParseDurationKey)
)
