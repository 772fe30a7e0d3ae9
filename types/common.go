package types

import "time"

// OptionKind classifies how an option consumes command-line tokens
type OptionKind int

const (
	Empty  OptionKind = iota // Empty denotes an option whose value type is not supported
	Scalar                   // Scalar denotes an option which consumes exactly one value token
	List                     // List denotes an option whose value token is split into elements
	Toggle                   // Toggle denotes a boolean option which flips on every match and consumes no value
)

// String returns the string representation of an OptionKind
func (k OptionKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case List:
		return "list"
	case Toggle:
		return "toggle"
	case Empty:
		fallthrough
	default:
		return "empty"
	}
}

// KindOf infers the OptionKind from a pointer to a supported value type.
func KindOf(data any) OptionKind {
	switch data.(type) {
	case *bool:
		return Toggle
	case *string, *int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64, *time.Time, *time.Duration:
		return Scalar
	case *[]string, *[]int, *[]int8, *[]int16, *[]int32, *[]int64,
		*[]uint, *[]uint8, *[]uint16, *[]uint32, *[]uint64,
		*[]float32, *[]float64, *[]time.Time, *[]time.Duration, *[]bool:
		return List
	}

	return Empty
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which
// separate list elements. Defaults to ','.
type ListDelimiterFunc func(matchOn rune) bool

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// TagConfig is used to store struct tag information about an option
type TagConfig struct {
	Long        string
	Short       string
	Description string
	Default     string
	HasDefault  bool
}
