package goargs

import (
	"strings"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/i18n"
	"github.com/napalu/goargs/parse"
	"github.com/napalu/goargs/types"
	"github.com/napalu/goargs/util"
)

const separator = "--"

func (r *Registry) register(h Handle) error {
	if r.parsed {
		return errs.ErrAlreadyParsed
	}
	if h.Long() == "" {
		return errs.ErrEmptyOptionName
	}
	if r.options.Has(h.Long()) {
		return errs.ErrOptionAlreadyExists.WithArgs(h.Long())
	}
	if h.Short() != "" {
		if other, found := r.shorts[h.Short()]; found {
			return errs.ErrShortOptionConflict.WithArgs(h.Short(), h.Long(), other.Long())
		}
	}

	r.options.Set(h.Long(), h)
	if h.Short() != "" {
		r.shorts[h.Short()] = h
	}
	r.helpLines = append(r.helpLines, h.Help())

	return nil
}

// scan walks args[1:] once. Each token is classified in this order: exact long flag, exact short flag,
// bundle of short flags, --long=value, the "--" separator. Anything else is dropped.
func (r *Registry) scan(args []string) {
	state := parse.NewState(args)
	if !state.Advance() {
		return
	}

	for state.Advance() {
		token := state.CurrentArg()

		if h, found := r.matchLong(token); found {
			r.parseOne(state, h)
			continue
		}
		if h, found := r.matchShort(token); found {
			r.parseOne(state, h)
			continue
		}
		if isBundle(token) {
			r.parseBundle(state, token)
			continue
		}
		if key, value, found := strings.Cut(token, "="); found {
			if h, ok := r.matchLong(key); ok {
				r.recordConversion(h.ParseValue(value, state.Pos()))
			} else {
				r.warn(types.WarnUnknownTokenKey, token)
			}
			continue
		}
		if token == separator {
			r.positionals = append(r.positionals, state.Rest()...)
			return
		}

		r.warn(types.WarnUnknownTokenKey, token)
	}
}

func (r *Registry) parseOne(state parse.State, h Handle) {
	consumed, err := h.ParseOne(state)
	r.recordConversion(err)
	if consumed {
		state.Skip()
	}
}

// parseBundle handles -abc. Every rune naming a short option is parsed at the position of the bundle
// token itself, so value options in a bundle all read the same following token; it is consumed once.
func (r *Registry) parseBundle(state parse.State, token string) {
	var matched, consumed bool
	for _, c := range token[1:] {
		h, found := r.shorts[string(c)]
		if !found {
			continue
		}
		matched = true

		if h.Kind() != types.Toggle {
			if r.strictBundling {
				r.errors = append(r.errors, errs.ErrBundledValueOption.WithArgs(string(c), token))
				continue
			}
			r.warn(types.WarnBundledValueKey, string(c), token)
		}

		took, err := h.ParseOne(state)
		r.recordConversion(err)
		consumed = consumed || took
	}

	if !matched {
		r.warn(types.WarnUnknownTokenKey, token)
	}
	if consumed {
		state.Skip()
	}
}

func (r *Registry) recordConversion(err error) {
	if err == nil {
		return
	}
	if r.conv.strict {
		r.errors = append(r.errors, err)
		return
	}

	if te, ok := err.(i18n.TranslatableError); ok {
		r.warn(types.WarnConversionKey, te.Args()...)
		return
	}
	r.warnings = append(r.warnings, err.Error())
}

func (r *Registry) warn(key string, args ...any) {
	r.warnings = append(r.warnings, r.bundle.T(key, args...))
}

func (r *Registry) matchLong(token string) (Handle, bool) {
	if !strings.HasPrefix(token, "--") {
		return nil, false
	}

	return r.options.Get(token[2:])
}

func (r *Registry) matchShort(token string) (Handle, bool) {
	if len(token) < 2 || token[0] != '-' || token[1] == '-' {
		return nil, false
	}
	h, found := r.shorts[token[1:]]

	return h, found
}

func isBundle(token string) bool {
	return len(token) > 1 && token[0] == '-' && token[1] != '-'
}

func matchListSeparator(r rune) bool {
	return r == ','
}

func typeName[T OptionValue]() string {
	return util.TypeName(new(T))
}
