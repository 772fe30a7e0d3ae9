package goargs

import (
	"io"
	"time"

	"github.com/napalu/goargs/i18n"
	"github.com/napalu/goargs/parse"
	"github.com/napalu/goargs/types"
	"github.com/napalu/goargs/types/orderedmap"
)

// OptionValue lists the value types an option can hold. bool options are toggles, slices are lists and
// every other type is a scalar.
type OptionValue interface {
	string | bool | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | time.Time | time.Duration |
		[]string | []bool | []int | []int8 | []int16 | []int32 | []int64 | []uint | []uint8 | []uint16 |
		[]uint32 | []uint64 | []float32 | []float64 | []time.Time | []time.Duration
}

// Handle is the type-independent view of a registered option. Every *Option[T] implements it; the Registry
// stores options as Handles and Value recovers the concrete type.
type Handle interface {
	// Short returns the short name without its leading '-' (may be empty)
	Short() string
	// Long returns the long name without its leading "--"
	Long() string
	// Description returns the description given at registration
	Description() string
	// Help returns the pre-composed "-<short> --<long>\t<description>" line
	Help() string
	// Kind reports whether the option is a scalar, a list or a toggle
	Kind() types.OptionKind
	// TypeName returns the Go type of the option's value
	TypeName() string
	// IsInitialized reports whether a default was supplied or a value was parsed
	IsInitialized() bool
	// Default returns the default rendered as command-line text and whether one was supplied
	Default() (string, bool)
	// Position returns the index in the argument vector of the token which last set the value, 0 if none
	Position() int
	// ParseOne handles a match on the token state currently points at. Value options consume the next
	// token and report consumed == true; a missing next token leaves the value unchanged.
	ParseOne(state parse.State) (consumed bool, err error)
	// ParseValue converts raw, already isolated from its flag (--flag=raw), and records pos
	ParseValue(raw string, pos int) error
}

// ConfigureRegistryFunc is used when defining Registry options
type ConfigureRegistryFunc func(r *Registry, err *error)

type conversion struct {
	strict        bool
	delimiterFunc types.ListDelimiterFunc
}

// Registry owns the registered options, scans the argument vector once and collects positionals.
// A Registry is not safe for concurrent use until Parse has returned; after that Value and the other
// read-only accessors may be called concurrently.
type Registry struct {
	programName    string
	usage          string
	options        *orderedmap.OrderedMap[string, Handle]
	shorts         map[string]Handle
	helpLines      []string
	positionals    []string
	conv           *conversion
	strictBundling bool
	parsed         bool
	warnings       []string
	errors         []error
	bundle         *i18n.Bundle
	stdout         io.Writer
	stderr         io.Writer
}
