package util

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/types"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

// ConvertString converts value into the variable data points to. List types are split with delimiterFunc
// and every element is converted on its own.
//
// On failure the returned error describes the first malformed value. What happens to *data then depends on
// lenient:
//   - lenient: scalars are set to their zero value; lists keep every element, malformed elements become the
//     element type's zero value.
//   - strict: *data is left untouched.
func ConvertString(value string, data any, delimiterFunc types.ListDelimiterFunc, lenient bool) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *[]string:
		*t = SplitFunc(value, delimiterFunc)
	case *bool:
		return convertScalar(value, t, parseBool, lenient)
	case *[]bool:
		return convertList(value, t, parseBool, delimiterFunc, lenient)
	case *int:
		return convertScalar(value, t, parseSigned[int](strconv.IntSize), lenient)
	case *[]int:
		return convertList(value, t, parseSigned[int](strconv.IntSize), delimiterFunc, lenient)
	case *int8:
		return convertScalar(value, t, parseSigned[int8](8), lenient)
	case *[]int8:
		return convertList(value, t, parseSigned[int8](8), delimiterFunc, lenient)
	case *int16:
		return convertScalar(value, t, parseSigned[int16](16), lenient)
	case *[]int16:
		return convertList(value, t, parseSigned[int16](16), delimiterFunc, lenient)
	case *int32:
		return convertScalar(value, t, parseSigned[int32](32), lenient)
	case *[]int32:
		return convertList(value, t, parseSigned[int32](32), delimiterFunc, lenient)
	case *int64:
		return convertScalar(value, t, parseSigned[int64](64), lenient)
	case *[]int64:
		return convertList(value, t, parseSigned[int64](64), delimiterFunc, lenient)
	case *uint:
		return convertScalar(value, t, parseUnsigned[uint](strconv.IntSize), lenient)
	case *[]uint:
		return convertList(value, t, parseUnsigned[uint](strconv.IntSize), delimiterFunc, lenient)
	case *uint8:
		return convertScalar(value, t, parseUnsigned[uint8](8), lenient)
	case *[]uint8:
		return convertList(value, t, parseUnsigned[uint8](8), delimiterFunc, lenient)
	case *uint16:
		return convertScalar(value, t, parseUnsigned[uint16](16), lenient)
	case *[]uint16:
		return convertList(value, t, parseUnsigned[uint16](16), delimiterFunc, lenient)
	case *uint32:
		return convertScalar(value, t, parseUnsigned[uint32](32), lenient)
	case *[]uint32:
		return convertList(value, t, parseUnsigned[uint32](32), delimiterFunc, lenient)
	case *uint64:
		return convertScalar(value, t, parseUnsigned[uint64](64), lenient)
	case *[]uint64:
		return convertList(value, t, parseUnsigned[uint64](64), delimiterFunc, lenient)
	case *float32:
		return convertScalar(value, t, parseFloat[float32](32), lenient)
	case *[]float32:
		return convertList(value, t, parseFloat[float32](32), delimiterFunc, lenient)
	case *float64:
		return convertScalar(value, t, parseFloat[float64](64), lenient)
	case *[]float64:
		return convertList(value, t, parseFloat[float64](64), delimiterFunc, lenient)
	case *time.Time:
		return convertScalar(value, t, parseTime, lenient)
	case *[]time.Time:
		return convertList(value, t, parseTime, delimiterFunc, lenient)
	case *time.Duration:
		return convertScalar(value, t, parseDuration, lenient)
	case *[]time.Duration:
		return convertList(value, t, parseDuration, delimiterFunc, lenient)
	default:
		return errs.ErrUnsupportedType.WithArgs(TypeName(data))
	}

	return nil
}

// SplitFunc splits s at every rune matched by f. Unlike strings.FieldsFunc interior empty segments are kept,
// so "1,,3" yields three elements. A trailing delimiter does not start a new segment ("1,2," yields two) and an
// empty string yields an empty slice.
func SplitFunc(s string, f types.ListDelimiterFunc) []string {
	if s == "" {
		return []string{}
	}

	parts := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if f(r) {
			parts = append(parts, s[start:i])
			start = i + size
		}
		i += size
	}
	if start == len(s) && len(parts) > 0 {
		return parts
	}

	return append(parts, s[start:])
}

func convertScalar[T any](value string, t *T, parse func(string) (T, error), lenient bool) error {
	v, err := parse(value)
	if err != nil {
		if lenient {
			var zero T
			*t = zero
		}
		return err
	}
	*t = v

	return nil
}

func convertList[T any](value string, t *[]T, parse func(string) (T, error), delimiterFunc types.ListDelimiterFunc, lenient bool) error {
	parts := SplitFunc(value, delimiterFunc)
	temp := make([]T, len(parts))

	var first error
	for i, part := range parts {
		v, err := parse(part)
		if err != nil {
			if first == nil {
				first = err
			}
			if !lenient {
				return first
			}
			continue
		}
		temp[i] = v
	}
	*t = temp

	return first
}

func parseBool(s string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, errs.ErrParseBool.WithArgs(s)
	}

	return v, nil
}

func parseSigned[T signed](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
		if err != nil {
			return 0, errs.ErrParseInt.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseUnsigned[T unsigned](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
		if err != nil {
			return 0, errs.ErrParseUint.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseFloat[T float](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
		if err != nil {
			return 0, errs.ErrParseFloat.WithArgs(s)
		}

		return T(v), nil
	}
}

func parseTime(s string) (time.Time, error) {
	v, err := dateparse.ParseLocal(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.ErrParseTime.WithArgs(s)
	}

	return v, nil
}

func parseDuration(s string) (time.Duration, error) {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, errs.ErrParseDuration.WithArgs(s)
	}

	return v, nil
}
