// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package goargs provides typed command-line option parsing.
//
// Options are declared with a short name, a long name, a description and optionally a default value:
//
//	r := goargs.NewRegistry("prog", "prog [options] -- files...")
//	_ = goargs.AddOption[float64](r, "d", "double", "This is a double.")
//	_ = goargs.AddOption[bool](r, "gz", "gzip", "This is a boolean toggle.")
//	_ = goargs.AddOptionWithDefault[[]int](r, "l", "list", "This is a list of integers.", []int{1})
//	_ = r.Parse(os.Args)
//	d, err := goargs.Value[float64](r, "double")
//
// The scanner accepts
//
//	--name value, -s value     value options (the next token is the value)
//	--name=value               value given inline
//	--name, -s, -abc           boolean toggles, alone or bundled
//	--                         every following token is positional
//
// Boolean options toggle: each match inverts the current value, an uninitialized toggle becomes true on its
// first match. Lists are written as a single delimited token ("1,2,3").
//
// Parsing is lenient by default. A value that cannot be converted becomes the zero value of the option's
// type (list elements individually) and a warning is recorded; tokens that match no option are ignored.
// WithStrictConversion and WithStrictBundling turn conversion failures and value options inside a bundle
// into errors returned by Parse.
package goargs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/i18n"
	"github.com/napalu/goargs/parse"
	"github.com/napalu/goargs/types/orderedmap"
)

// NewRegistry returns an empty Registry. usage, when not empty, is printed before the option lines by Help.
func NewRegistry(programName, usage string) *Registry {
	return &Registry{
		programName: programName,
		usage:       usage,
		options:     orderedmap.NewOrderedMap[string, Handle](),
		shorts:      map[string]Handle{},
		helpLines:   []string{},
		positionals: []string{},
		conv: &conversion{
			delimiterFunc: matchListSeparator,
		},
		warnings: []string{},
		errors:   []error{},
		bundle:   i18n.Default(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// NewRegistryWith allows initialization of Registry using option functions. The caller should always test
// for error on return because Registry will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	r, err := NewRegistryWith(
//		WithProgramName("prog"),
//		WithUsage("prog [options]"),
//		WithStrictConversion(true),
//		WithOption(func(r *Registry) error {
//			return AddOption[float64](r, "d", "double", "This is a double.")
//		}))
func NewRegistryWith(configs ...ConfigureRegistryFunc) (*Registry, error) {
	r := NewRegistry("", "")

	var err error
	for _, config := range configs {
		config(r, &err)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// AddOption registers an option of type T without a default. Until a matching token is parsed, Value
// reports ErrValueUninitialized for it.
func AddOption[T OptionValue](r *Registry, short, long, description string) error {
	return r.register(newOption(r, new(T), short, long, description))
}

// AddOptionWithDefault registers an option of type T which is initialized with defaultValue
func AddOptionWithDefault[T OptionValue](r *Registry, short, long, description string, defaultValue T) error {
	opt := newOption(r, new(T), short, long, description)
	opt.setDefault(defaultValue)

	return r.register(opt)
}

// BindOption registers an option of type T which stores its value in the variable bindVar points to.
// The current content of *bindVar is not treated as a default.
func BindOption[T OptionValue](r *Registry, bindVar *T, short, long, description string) error {
	if bindVar == nil {
		return errs.ErrNilPointer.WithArgs(long)
	}

	return r.register(newOption(r, bindVar, short, long, description))
}

// BindOptionWithDefault is BindOption with defaultValue written to *bindVar and the option initialized
func BindOptionWithDefault[T OptionValue](r *Registry, bindVar *T, short, long, description string, defaultValue T) error {
	if bindVar == nil {
		return errs.ErrNilPointer.WithArgs(long)
	}
	opt := newOption(r, bindVar, short, long, description)
	opt.setDefault(defaultValue)

	return r.register(opt)
}

// Value returns the value of the option registered under the long name name.
//
// It returns ErrArgumentNotFound when no such option exists and ErrValueUninitialized when the option has
// neither a default nor a parsed value. Asking for a T other than the registered one is a programming
// error and panics.
func Value[T OptionValue](r *Registry, name string) (T, error) {
	var zero T

	h, found := r.options.Get(name)
	if !found {
		return zero, errs.ErrArgumentNotFound.WithArgs(name)
	}

	opt, ok := h.(*Option[T])
	if !ok {
		panic(fmt.Sprintf("goargs: option --%s holds %s, requested %s", name, h.TypeName(), typeName[T]()))
	}
	if !opt.IsInitialized() {
		return zero, errs.ErrValueUninitialized.WithArgs(name)
	}

	return opt.Get(), nil
}

// MustValue is like Value but panics on error
func MustValue[T OptionValue](r *Registry, name string) T {
	v, err := Value[T](r, name)
	if err != nil {
		panic(err)
	}

	return v
}

// Parse scans args once. args[0] is the program name and is skipped. Parse may be called only once per
// Registry; later calls return ErrAlreadyParsed and leave every value untouched.
//
// In the default lenient mode Parse returns nil for any input. With WithStrictConversion or
// WithStrictBundling the errors recorded during the scan are returned joined.
func (r *Registry) Parse(args []string) error {
	if r.parsed {
		return errs.ErrAlreadyParsed
	}
	r.parsed = true

	if r.programName == "" && len(args) > 0 && args[0] != "" {
		r.programName = filepath.Base(args[0])
	}
	r.scan(args)

	return errors.Join(r.errors...)
}

// ParseString splits argString with shell quoting rules and parses the resulting tokens. argString holds
// only the arguments; the program name is prepended.
func (r *Registry) ParseString(argString string) error {
	if r.parsed {
		return errs.ErrAlreadyParsed
	}
	args, err := parse.Split(argString)
	if err != nil {
		return err
	}

	return r.Parse(append([]string{r.programName}, args...))
}

// Parsed reports whether Parse has been called
func (r *Registry) Parsed() bool {
	return r.parsed
}

// Help returns the usage banner followed by one "-<short> --<long>\t<description>" line per option, in
// registration order. Every line ends with a newline.
func (r *Registry) Help() string {
	var sb strings.Builder
	if r.usage != "" {
		sb.WriteString(r.usage)
		sb.WriteByte('\n')
	}
	for _, line := range r.helpLines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ProgramName returns the configured program name, or the base name of args[0] after Parse
func (r *Registry) ProgramName() string {
	return r.programName
}

// Lookup returns the option registered under the long name
func (r *Registry) Lookup(long string) (Handle, bool) {
	return r.options.Get(long)
}

// LookupShort returns the option registered under the short name. It is the same object Lookup returns
// for the option's long name.
func (r *Registry) LookupShort(short string) (Handle, bool) {
	h, found := r.shorts[short]
	return h, found
}

// PositionOf returns the index in the argument vector of the token which last set the option registered
// under the long name, or 0 when no token matched it
func (r *Registry) PositionOf(name string) (int, error) {
	h, found := r.options.Get(name)
	if !found {
		return 0, errs.ErrArgumentNotFound.WithArgs(name)
	}

	return h.Position(), nil
}

// Options returns every option in registration order
func (r *Registry) Options() []Handle {
	handles := make([]Handle, 0, r.options.Count())
	r.options.Range(func(_ string, h Handle) bool {
		handles = append(handles, h)
		return true
	})

	return handles
}

// Positional returns the i-th token found after the "--" separator
func (r *Registry) Positional(i int) (string, error) {
	if i < 0 || i >= len(r.positionals) {
		return "", errs.ErrIndexOutOfBounds.WithArgs(i, len(r.positionals))
	}

	return r.positionals[i], nil
}

// PositionalCount returns the number of tokens found after the "--" separator
func (r *Registry) PositionalCount() int {
	return len(r.positionals)
}

// Positionals returns a copy of the tokens found after the "--" separator
func (r *Registry) Positionals() []string {
	return append([]string{}, r.positionals...)
}

// Warnings returns the diagnostics recorded by a lenient Parse: values which could not be converted,
// value options found inside a bundle and tokens which matched nothing
func (r *Registry) Warnings() []string {
	return append([]string{}, r.warnings...)
}

// Errors returns the errors recorded by Parse in strict mode
func (r *Registry) Errors() []error {
	return append([]error{}, r.errors...)
}

// PrintWarnings writes every warning on its own line to the configured stderr writer
func (r *Registry) PrintWarnings() {
	for _, w := range r.warnings {
		fmt.Fprintln(r.stderr, w)
	}
}
