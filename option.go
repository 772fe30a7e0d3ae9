package goargs

import (
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/parse"
	"github.com/napalu/goargs/types"
	"github.com/napalu/goargs/util"
)

// Option is a typed option. It is created by AddOption, AddOptionWithDefault, BindOption or
// NewRegistryFromStruct and reached through the Registry as a Handle.
type Option[T OptionValue] struct {
	short       string
	long        string
	description string
	help        string
	value       *T
	kind        types.OptionKind
	initialized bool
	defaultText string
	hasDefault  bool
	position    int
	conv        *conversion
}

func newOption[T OptionValue](r *Registry, value *T, short, long, description string) *Option[T] {
	o := &Option[T]{
		short:       short,
		long:        long,
		description: description,
		value:       value,
		kind:        types.KindOf(value),
		conv:        r.conv,
	}
	o.help = "--" + long + "\t" + description
	if short != "" {
		o.help = "-" + short + " " + o.help
	}

	return o
}

func (o *Option[T]) setDefault(value T) {
	*o.value = value
	o.initialized = true
	o.hasDefault = true
	o.defaultText = util.FormatValue(value)
}

// Get returns the current value. It is the zero value of T while the option is uninitialized.
func (o *Option[T]) Get() T {
	return *o.value
}

func (o *Option[T]) Short() string {
	return o.short
}

func (o *Option[T]) Long() string {
	return o.long
}

func (o *Option[T]) Description() string {
	return o.description
}

func (o *Option[T]) Help() string {
	return o.help
}

func (o *Option[T]) Kind() types.OptionKind {
	return o.kind
}

func (o *Option[T]) TypeName() string {
	return util.TypeName(o.value)
}

func (o *Option[T]) IsInitialized() bool {
	return o.initialized
}

func (o *Option[T]) Default() (string, bool) {
	return o.defaultText, o.hasDefault
}

func (o *Option[T]) Position() int {
	return o.position
}

// ParseOne handles a match of the option's flag at the current position of state.
//
// Toggles never consume a value: the first match of an uninitialized toggle sets it to true, every other
// match inverts it, so n matches leave it at initial XOR (n mod 2).
func (o *Option[T]) ParseOne(state parse.State) (bool, error) {
	if o.kind == types.Toggle {
		o.toggle(state.Pos())
		return false, nil
	}

	raw, ok := state.Peek()
	if !ok {
		return false, nil
	}

	return true, o.ParseValue(raw, state.Pos())
}

// ParseValue converts raw into the option's value. For a toggle raw is read as a boolean and assigned.
//
// When conversion fails in lenient mode (the default) the value becomes the zero value of T (lists keep
// their well-formed elements and zero the others) and the option counts as initialized; in strict mode the
// value is left unchanged. Either way the conversion error is returned.
func (o *Option[T]) ParseValue(raw string, pos int) error {
	err := util.ConvertString(raw, o.value, o.conv.delimiterFunc, !o.conv.strict)
	if err != nil {
		err = errs.ErrConversion.WithArgs(raw, o.long).Wrap(err)
		if o.conv.strict {
			return err
		}
	}
	o.initialized = true
	o.position = pos

	return err
}

func (o *Option[T]) toggle(pos int) {
	b := any(o.value).(*bool)
	if o.initialized {
		*b = !*b
	} else {
		*b = true
	}
	o.initialized = true
	o.position = pos
}
