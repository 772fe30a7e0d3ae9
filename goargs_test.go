package goargs

import (
	"errors"
	"testing"
	"time"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry("prog", "")
	require.NoError(t, AddOption[float64](r, "d", "double", "This is a double."))
	require.NoError(t, AddOption[bool](r, "gz", "gzip", "This is a boolean toggle."))
	require.NoError(t, AddOption[string](r, "s", "string", "This is a string."))
	require.NoError(t, AddOption[[]int](r, "l", "list", "This is a list of integers."))
	require.NoError(t, AddOption[bool](r, "a", "all", "bundle member a"))
	require.NoError(t, AddOption[bool](r, "b", "brief", "bundle member b"))
	require.NoError(t, AddOption[int](r, "n", "count", "a value option"))

	return r
}

func TestRegistry_DefaultWhenNotMatched(t *testing.T) {
	r := NewRegistry("prog", "")
	require.NoError(t, AddOptionWithDefault(r, "d", "double", "", 1.5))
	require.NoError(t, AddOptionWithDefault(r, "s", "string", "", "fallback"))
	require.NoError(t, AddOptionWithDefault(r, "l", "list", "", []int{4, 5}))
	require.NoError(t, AddOptionWithDefault(r, "v", "verbose", "", true))
	require.NoError(t, AddOptionWithDefault(r, "t", "timeout", "", 3*time.Second))

	assert.NoError(t, r.Parse([]string{"prog", "--unrelated"}))

	assert.Equal(t, 1.5, MustValue[float64](r, "double"))
	assert.Equal(t, "fallback", MustValue[string](r, "string"))
	assert.Equal(t, []int{4, 5}, MustValue[[]int](r, "list"))
	assert.Equal(t, true, MustValue[bool](r, "verbose"))
	assert.Equal(t, 3*time.Second, MustValue[time.Duration](r, "timeout"))
}

func TestRegistry_ValueUninitialized(t *testing.T) {
	r := newTestRegistry(t)
	assert.NoError(t, r.Parse([]string{"prog"}))

	_, err := Value[float64](r, "double")
	assert.ErrorIs(t, err, errs.ErrValueUninitialized)
	assert.Equal(t, "Value of --double has not been set.", err.Error())

	_, err = Value[bool](r, "gzip")
	assert.ErrorIs(t, err, errs.ErrValueUninitialized)
}

func TestRegistry_ArgumentNotFound(t *testing.T) {
	r := newTestRegistry(t)

	_, err := Value[float64](r, "missing")
	assert.ErrorIs(t, err, errs.ErrArgumentNotFound)
	assert.False(t, errors.Is(err, errs.ErrValueUninitialized))

	assert.NoError(t, r.Parse([]string{"prog", "--missing", "1"}))
	_, err = Value[float64](r, "missing")
	assert.ErrorIs(t, err, errs.ErrArgumentNotFound)
	assert.Equal(t, "Argument --missing is not defined.", err.Error())

	// short names are not retrieval keys
	_, err = Value[float64](r, "d")
	assert.ErrorIs(t, err, errs.ErrArgumentNotFound)
}

func TestRegistry_ToggleXor(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		hasDefault bool
		def        bool
		want       bool
		wantErr    bool
	}{
		{name: "no match no default", args: []string{"prog"}, wantErr: true},
		{name: "one match", args: []string{"prog", "-v"}, want: true},
		{name: "two matches", args: []string{"prog", "-v", "-v"}, want: false},
		{name: "three matches mixed forms", args: []string{"prog", "-v", "--verbose", "-v"}, want: true},
		{name: "four matches", args: []string{"prog", "-v", "-v", "--verbose", "--verbose"}, want: false},
		{name: "default false no match", args: []string{"prog"}, hasDefault: true, def: false, want: false},
		{name: "default false one match", args: []string{"prog", "-v"}, hasDefault: true, def: false, want: true},
		{name: "default false two matches", args: []string{"prog", "-v", "-v"}, hasDefault: true, def: false, want: false},
		{name: "default true one match", args: []string{"prog", "-v"}, hasDefault: true, def: true, want: false},
		{name: "default true two matches", args: []string{"prog", "-v", "-v"}, hasDefault: true, def: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry("prog", "")
			if tt.hasDefault {
				require.NoError(t, AddOptionWithDefault(r, "v", "verbose", "", tt.def))
			} else {
				require.NoError(t, AddOption[bool](r, "v", "verbose", ""))
			}
			require.NoError(t, r.Parse(tt.args))

			got, err := Value[bool](r, "verbose")
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueUninitialized)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_ToggleDoesNotConsumeNextToken(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "--gzip", "--double", "2"}))

	assert.True(t, MustValue[bool](r, "gzip"))
	assert.Equal(t, 2.0, MustValue[float64](r, "double"))
}

func TestRegistry_ToggleKeyValue(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "-gz", "--gzip=false", "--all=true", "--brief=nope"}))

	assert.False(t, MustValue[bool](r, "gzip"), "key=value assigns instead of toggling")
	assert.True(t, MustValue[bool](r, "all"))
	assert.False(t, MustValue[bool](r, "brief"), "malformed boolean falls back to false")
	assert.Len(t, r.Warnings(), 1)
}

func TestRegistry_List(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		want         []int
		wantWarnings int
	}{
		{name: "round trip", args: []string{"prog", "--list", "1,2,3"}, want: []int{1, 2, 3}},
		{name: "short name", args: []string{"prog", "-l", "7"}, want: []int{7}},
		{name: "key value", args: []string{"prog", "--list=4,5"}, want: []int{4, 5}},
		{name: "spaces around elements", args: []string{"prog", "--list", "1, 2 ,3"}, want: []int{1, 2, 3}},
		{name: "malformed element is zeroed", args: []string{"prog", "--list", "1,x,3"}, want: []int{1, 0, 3}, wantWarnings: 1},
		{name: "empty element is zeroed", args: []string{"prog", "--list", "1,,3"}, want: []int{1, 0, 3}, wantWarnings: 1},
		{name: "empty value", args: []string{"prog", "--list", ""}, want: []int{}},
		{name: "trailing comma", args: []string{"prog", "--list", "1,2,3,"}, want: []int{1, 2, 3}},
		{name: "last occurrence replaces", args: []string{"prog", "--list", "1,2", "-l", "9"}, want: []int{9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t)
			require.NoError(t, r.Parse(tt.args))

			got, err := Value[[]int](r, "list")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, r.Warnings(), tt.wantWarnings)
		})
	}
}

func TestRegistry_StringListTrailingComma(t *testing.T) {
	r := NewRegistry("prog", "")
	require.NoError(t, AddOption[[]int](r, "l", "list", ""))
	require.NoError(t, AddOption[[]string](r, "", "strs", ""))
	require.NoError(t, r.Parse([]string{"prog", "--list", "1,2,3,", "--strs", "a,b,"}))

	assert.Equal(t, []int{1, 2, 3}, MustValue[[]int](r, "list"))
	assert.Equal(t, []string{"a", "b"}, MustValue[[]string](r, "strs"))
	assert.Empty(t, r.Warnings())
}

func TestRegistry_KeyValue(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "--double=3.5", "--string=a=b", "--unknown=1"}))

	assert.Equal(t, 3.5, MustValue[float64](r, "double"))
	assert.Equal(t, "a=b", MustValue[string](r, "string"), "only the first '=' splits")
	assert.Equal(t, []string{"ignoring unrecognized argument '--unknown=1'"}, r.Warnings())
}

func TestRegistry_ScalarLastOccurrenceWins(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "--double", "1", "-d", "2", "--double=3"}))

	assert.Equal(t, 3.0, MustValue[float64](r, "double"))
}

func TestRegistry_ValueConsumesNextToken(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "--string", "-gz", "-gz", "--double", "-1.5", "--count", "--"}))

	assert.Equal(t, "-gz", MustValue[string](r, "string"))
	assert.True(t, MustValue[bool](r, "gzip"), "only the second -gz is a flag")
	assert.Equal(t, -1.5, MustValue[float64](r, "double"))
	assert.Equal(t, 0, MustValue[int](r, "count"), "a token that is not a number is still consumed")
	assert.Equal(t, 0, r.PositionalCount(), "the separator was consumed as a value")
	assert.Equal(t, []string{"value '--' for --count could not be converted, using zero value"}, r.Warnings())
}

func TestRegistry_MissingValueIsSilent(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "--double"}))

	_, err := Value[float64](r, "double")
	assert.ErrorIs(t, err, errs.ErrValueUninitialized)
	assert.Empty(t, r.Warnings())
}

func TestRegistry_MalformedScalarLenient(t *testing.T) {
	r := NewRegistry("prog", "")
	require.NoError(t, AddOptionWithDefault(r, "d", "double", "", 9.0))
	require.NoError(t, r.Parse([]string{"prog", "--double", "abc"}))

	got, err := Value[float64](r, "double")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, []string{"value 'abc' for --double could not be converted, using zero value"}, r.Warnings())
	assert.Empty(t, r.Errors())
}

func TestRegistry_StrictConversion(t *testing.T) {
	r, err := NewRegistryWith(WithStrictConversion(true))
	require.NoError(t, err)
	require.NoError(t, AddOptionWithDefault(r, "d", "double", "", 9.0))
	require.NoError(t, AddOptionWithDefault(r, "l", "list", "", []int{1}))

	err = r.Parse([]string{"prog", "--double", "abc", "--list", "1,x"})
	assert.ErrorIs(t, err, errs.ErrConversion)
	assert.ErrorIs(t, err, errs.ErrParseFloat)
	assert.ErrorIs(t, err, errs.ErrParseInt)
	assert.Len(t, r.Errors(), 2)
	assert.Empty(t, r.Warnings())

	assert.Equal(t, 9.0, MustValue[float64](r, "double"), "strict mode keeps the previous value")
	assert.Equal(t, []int{1}, MustValue[[]int](r, "list"))
}

func TestRegistry_Positionals(t *testing.T) {
	t.Run("flag registered", func(t *testing.T) {
		r := NewRegistry("prog", "")
		require.NoError(t, AddOption[string](r, "f", "flag", ""))
		require.NoError(t, r.Parse([]string{"prog", "--flag", "x", "--", "a", "b"}))

		assert.Equal(t, []string{"a", "b"}, r.Positionals())
		assert.Equal(t, "x", MustValue[string](r, "flag"))
	})

	t.Run("flag unknown", func(t *testing.T) {
		r := NewRegistry("prog", "")
		require.NoError(t, r.Parse([]string{"prog", "--flag", "x", "--", "a", "b"}))

		assert.Equal(t, []string{"a", "b"}, r.Positionals())
		assert.Len(t, r.Warnings(), 2)
	})

	t.Run("tokens after separator are verbatim", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Parse([]string{"prog", "--", "--double", "1", "-gz", "--", "x=y"}))

		assert.Equal(t, []string{"--double", "1", "-gz", "--", "x=y"}, r.Positionals())
		_, err := Value[float64](r, "double")
		assert.ErrorIs(t, err, errs.ErrValueUninitialized)
	})

	t.Run("leading tokens are not positionals", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Parse([]string{"prog", "file.txt", "other"}))

		assert.Equal(t, 0, r.PositionalCount())
		assert.Equal(t, []string{
			"ignoring unrecognized argument 'file.txt'",
			"ignoring unrecognized argument 'other'",
		}, r.Warnings())
	})

	t.Run("index access", func(t *testing.T) {
		r := NewRegistry("prog", "")
		require.NoError(t, r.Parse([]string{"prog", "--", "a", "b"}))

		assert.Equal(t, 2, r.PositionalCount())
		p, err := r.Positional(1)
		assert.NoError(t, err)
		assert.Equal(t, "b", p)

		_, err = r.Positional(2)
		assert.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
		_, err = r.Positional(-1)
		assert.ErrorIs(t, err, errs.ErrIndexOutOfBounds)
	})

	t.Run("copy is detached", func(t *testing.T) {
		r := NewRegistry("prog", "")
		require.NoError(t, r.Parse([]string{"prog", "--", "a"}))

		p := r.Positionals()
		p[0] = "changed"
		got, _ := r.Positional(0)
		assert.Equal(t, "a", got)
	})
}

func TestRegistry_DiagnosticsAreCopies(t *testing.T) {
	r, err := NewRegistryWith(WithStrictConversion(true))
	require.NoError(t, err)
	require.NoError(t, AddOption[int](r, "n", "count", ""))
	require.Error(t, r.Parse([]string{"prog", "stray", "--count", "x"}))

	warnings := r.Warnings()
	require.Len(t, warnings, 1)
	warnings[0] = "changed"
	assert.Equal(t, []string{"ignoring unrecognized argument 'stray'"}, r.Warnings())

	recorded := r.Errors()
	require.Len(t, recorded, 1)
	recorded[0] = nil
	assert.ErrorIs(t, r.Errors()[0], errs.ErrConversion)
}

func TestRegistry_Bundles(t *testing.T) {
	t.Run("booleans", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Parse([]string{"prog", "-ab"}))

		assert.True(t, MustValue[bool](r, "all"))
		assert.True(t, MustValue[bool](r, "brief"))
		assert.Empty(t, r.Warnings())
	})

	t.Run("repeated letters toggle", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Parse([]string{"prog", "-aab"}))

		assert.False(t, MustValue[bool](r, "all"))
		assert.True(t, MustValue[bool](r, "brief"))
	})

	t.Run("unknown letters are skipped", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Parse([]string{"prog", "-axb"}))

		assert.True(t, MustValue[bool](r, "all"))
		assert.True(t, MustValue[bool](r, "brief"))
	})

	t.Run("nothing matched", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Parse([]string{"prog", "-xyz"}))

		assert.Equal(t, []string{"ignoring unrecognized argument '-xyz'"}, r.Warnings())
	})

	t.Run("value option reads the token after the bundle", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Parse([]string{"prog", "-an", "5", "-b"}))

		assert.True(t, MustValue[bool](r, "all"))
		assert.Equal(t, 5, MustValue[int](r, "count"))
		assert.True(t, MustValue[bool](r, "brief"))
		assert.Equal(t, []string{"option -n takes a value but was bundled in '-an'"}, r.Warnings())
	})

	t.Run("value options share the token", func(t *testing.T) {
		r := NewRegistry("prog", "")
		require.NoError(t, AddOption[int](r, "x", "x-axis", ""))
		require.NoError(t, AddOption[int](r, "y", "y-axis", ""))
		require.NoError(t, r.Parse([]string{"prog", "-xy", "3", "--", "p"}))

		assert.Equal(t, 3, MustValue[int](r, "x-axis"))
		assert.Equal(t, 3, MustValue[int](r, "y-axis"))
		assert.Equal(t, []string{"p"}, r.Positionals(), "the shared token is consumed once")
	})

	t.Run("strict bundling", func(t *testing.T) {
		r, err := NewRegistryWith(WithStrictBundling(true))
		require.NoError(t, err)
		require.NoError(t, AddOption[bool](r, "a", "all", ""))
		require.NoError(t, AddOption[int](r, "n", "count", ""))

		err = r.Parse([]string{"prog", "-an", "5"})
		assert.ErrorIs(t, err, errs.ErrBundledValueOption)
		assert.True(t, MustValue[bool](r, "all"))
		_, err = Value[int](r, "count")
		assert.ErrorIs(t, err, errs.ErrValueUninitialized)
	})

	t.Run("registered multi-letter short wins over bundling", func(t *testing.T) {
		r := NewRegistry("prog", "")
		require.NoError(t, AddOption[bool](r, "gz", "gzip", ""))
		require.NoError(t, AddOption[bool](r, "g", "global", ""))
		require.NoError(t, r.Parse([]string{"prog", "-gz"}))

		assert.True(t, MustValue[bool](r, "gzip"))
		_, err := Value[bool](r, "global")
		assert.ErrorIs(t, err, errs.ErrValueUninitialized)
	})
}

func TestRegistry_SharedAlias(t *testing.T) {
	r := newTestRegistry(t)

	byLong, found := r.Lookup("gzip")
	require.True(t, found)
	byShort, found := r.LookupShort("gz")
	require.True(t, found)
	assert.Same(t, byLong, byShort)

	require.NoError(t, r.Parse([]string{"prog", "-gz"}))
	assert.True(t, byLong.IsInitialized())
	assert.True(t, MustValue[bool](r, "gzip"))

	_, found = r.LookupShort("zz")
	assert.False(t, found)
	assert.Len(t, r.Options(), 7)
}

func TestRegistry_Idempotence(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "-l", "1,2", "-gz"}))

	first, err1 := Value[[]int](r, "list")
	second, err2 := Value[[]int](r, "list")
	assert.Equal(t, first, second)
	assert.Equal(t, err1, err2)
	assert.Equal(t, MustValue[bool](r, "gzip"), MustValue[bool](r, "gzip"))
}

func TestRegistry_ParseOnce(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "-gz"}))
	assert.True(t, r.Parsed())

	err := r.Parse([]string{"prog", "-gz"})
	assert.ErrorIs(t, err, errs.ErrAlreadyParsed)
	assert.True(t, MustValue[bool](r, "gzip"), "a second parse must not toggle again")

	assert.ErrorIs(t, r.ParseString("-gz"), errs.ErrAlreadyParsed)
	assert.ErrorIs(t, AddOption[int](r, "z", "late", ""), errs.ErrAlreadyParsed)
}

func TestRegistry_RegistrationErrors(t *testing.T) {
	r := NewRegistry("prog", "")
	require.NoError(t, AddOption[int](r, "n", "count", ""))

	assert.ErrorIs(t, AddOption[string](r, "c", "count", ""), errs.ErrOptionAlreadyExists)
	err := AddOption[string](r, "n", "name", "")
	assert.ErrorIs(t, err, errs.ErrShortOptionConflict)
	assert.Equal(t, "short name -n of --name is already used by --count", err.Error())
	assert.ErrorIs(t, AddOption[string](r, "e", "", ""), errs.ErrEmptyOptionName)
	assert.ErrorIs(t, BindOption[string](r, nil, "x", "nil", ""), errs.ErrNilPointer)

	_, found := r.Lookup("name")
	assert.False(t, found, "a failed registration leaves no trace")
	assert.Len(t, r.Options(), 1)
}

func TestRegistry_TypeMismatchPanics(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "--double", "1"}))

	assert.PanicsWithValue(t, "goargs: option --double holds float64, requested float32", func() {
		_, _ = Value[float32](r, "double")
	})
	assert.Panics(t, func() {
		_ = MustValue[[]float64](r, "double")
	})
}

func TestRegistry_MustValuePanicsOnError(t *testing.T) {
	r := newTestRegistry(t)
	assert.Panics(t, func() {
		_ = MustValue[float64](r, "double")
	})
}

func TestRegistry_Help(t *testing.T) {
	r := NewRegistry("prog", "usage: prog [options]")
	require.NoError(t, AddOption[float64](r, "d", "double", "This is a double."))
	require.NoError(t, AddOption[bool](r, "gz", "gzip", "This is a boolean toggle."))
	require.NoError(t, AddOption[string](r, "", "name", "No short form."))

	assert.Equal(t, "usage: prog [options]\n"+
		"-d --double\tThis is a double.\n"+
		"-gz --gzip\tThis is a boolean toggle.\n"+
		"--name\tNo short form.\n", r.Help())

	h, _ := r.Lookup("double")
	assert.Equal(t, "-d --double\tThis is a double.", h.Help())

	empty := NewRegistry("prog", "")
	assert.Equal(t, "", empty.Help())
}

func TestRegistry_Position(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Parse([]string{"prog", "--double", "1", "-gz", "--string=x", "-gz", "-ab"}))

	positions := map[string]int{
		"double": 1,
		"gzip":   5,
		"string": 4,
		"all":    6,
		"brief":  6,
		"count":  0,
		"list":   0,
	}
	for name, want := range positions {
		h, found := r.Lookup(name)
		require.True(t, found)
		assert.Equal(t, want, h.Position(), name)

		pos, err := r.PositionOf(name)
		assert.NoError(t, err)
		assert.Equal(t, want, pos, name)
	}

	_, err := r.PositionOf("missing")
	assert.ErrorIs(t, err, errs.ErrArgumentNotFound)
}

func TestRegistry_Kinds(t *testing.T) {
	r := newTestRegistry(t)
	kinds := map[string]types.OptionKind{
		"double": types.Scalar,
		"gzip":   types.Toggle,
		"string": types.Scalar,
		"list":   types.List,
	}
	for name, want := range kinds {
		h, _ := r.Lookup(name)
		assert.Equal(t, want, h.Kind(), name)
	}
}

func TestRegistry_TimeValues(t *testing.T) {
	r := NewRegistry("prog", "")
	require.NoError(t, AddOption[time.Time](r, "", "since", ""))
	require.NoError(t, AddOption[time.Duration](r, "", "timeout", ""))
	require.NoError(t, AddOption[[]time.Duration](r, "", "backoff", ""))
	require.NoError(t, r.Parse([]string{"prog", "--since", "2024-03-01", "--timeout=1m30s", "--backoff", "1s,2s"}))

	since := MustValue[time.Time](r, "since")
	assert.Equal(t, 2024, since.Year())
	assert.Equal(t, time.March, since.Month())
	assert.Equal(t, 1, since.Day())
	assert.Equal(t, 90*time.Second, MustValue[time.Duration](r, "timeout"))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, MustValue[[]time.Duration](r, "backoff"))
}

func TestRegistry_BindOption(t *testing.T) {
	r := NewRegistry("prog", "")
	var (
		level   int
		verbose bool
		names   []string
	)
	require.NoError(t, BindOptionWithDefault(r, &level, "L", "level", "", 3))
	require.NoError(t, BindOption(r, &verbose, "v", "verbose", ""))
	require.NoError(t, BindOption(r, &names, "", "names", ""))
	assert.Equal(t, 3, level, "the default is written to the bound variable")

	require.NoError(t, r.Parse([]string{"prog", "-L", "7", "-v", "--names", "a,b"}))
	assert.Equal(t, 7, level)
	assert.True(t, verbose)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, 7, MustValue[int](r, "level"))
}

func TestRegistry_ParseString(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.ParseString(`--string "hello world" -ab --list 1,2 -- "x y" z`))

	assert.Equal(t, "hello world", MustValue[string](r, "string"))
	assert.True(t, MustValue[bool](r, "all"))
	assert.Equal(t, []int{1, 2}, MustValue[[]int](r, "list"))
	assert.Equal(t, []string{"x y", "z"}, r.Positionals())

	bad := newTestRegistry(t)
	assert.Error(t, bad.ParseString(`--string "unterminated`))
	assert.False(t, bad.Parsed())
}

func TestRegistry_ProgramName(t *testing.T) {
	r := NewRegistry("", "")
	require.NoError(t, r.Parse([]string{"/usr/local/bin/tool", "-x"}))
	assert.Equal(t, "tool", r.ProgramName())

	named := NewRegistry("given", "")
	require.NoError(t, named.Parse([]string{"/usr/local/bin/tool"}))
	assert.Equal(t, "given", named.ProgramName())

	empty := NewRegistry("", "")
	assert.NoError(t, empty.Parse(nil))
	assert.Equal(t, 0, empty.PositionalCount())

	unnamed := NewRegistry("", "")
	require.NoError(t, AddOption[bool](unnamed, "v", "verbose", ""))
	require.NoError(t, unnamed.ParseString("-v"))
	assert.Equal(t, "", unnamed.ProgramName())
	assert.True(t, MustValue[bool](unnamed, "verbose"))
}
