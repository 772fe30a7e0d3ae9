package goargs

import (
	"io"

	"github.com/napalu/goargs/i18n"
	"github.com/napalu/goargs/types"
	"golang.org/x/text/language"
)

// WithProgramName sets the program name shown in help output. When left empty, Parse takes it from args[0].
func WithProgramName(name string) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.programName = name
	}
}

// WithUsage sets the banner printed before the option lines by Help and PrintHelp
func WithUsage(usage string) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.usage = usage
	}
}

// WithStrictConversion makes Parse report values which cannot be converted to their option's type as
// errors. The option then keeps its previous value instead of falling back to the zero value.
func WithStrictConversion(value bool) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.conv.strict = value
	}
}

// WithStrictBundling makes Parse report value options found inside a short flag bundle (-abc) as errors.
// Such options are then skipped instead of reading the token after the bundle.
func WithStrictBundling(value bool) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.strictBundling = value
	}
}

// WithListDelimiterFunc replaces the function deciding which runes separate list elements (default ',')
func WithListDelimiterFunc(delimiterFunc types.ListDelimiterFunc) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		if delimiterFunc != nil {
			r.conv.delimiterFunc = delimiterFunc
		}
	}
}

// WithLanguage selects the language of warnings, help headings and error messages. The selection applies
// to the shared default bundle and therefore to every Registry in the process.
func WithLanguage(lang language.Tag) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		i18n.Default().SetLanguage(lang)
	}
}

// WithStdout sets the writer PrintHelp writes to
func WithStdout(w io.Writer) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.stdout = w
	}
}

// WithStderr sets the writer PrintWarnings writes to
func WithStderr(w io.Writer) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		r.stderr = w
	}
}

// WithOption runs a registration (AddOption, BindOption, ...) while the Registry is being configured.
// Configuration stops at the first registration error.
func WithOption(register func(r *Registry) error) ConfigureRegistryFunc {
	return func(r *Registry, err *error) {
		*err = register(r)
	}
}
