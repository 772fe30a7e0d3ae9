package goargs

import (
	"reflect"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/parse"
	"github.com/napalu/goargs/types"
	"github.com/napalu/goargs/util"
)

// NewRegistryFromStruct creates a Registry with one option per field of structWithTags carrying a goargs
// tag. Parsed values are written straight into the fields.
//
//	type Config struct {
//		Double  float64 `goargs:"short:d;desc:This is a double.;default:1.5"`
//		Gzip    bool    `goargs:"short:gz;long:gzip;desc:This is a boolean toggle."`
//		List    []int   `goargs:"short:l;desc:This is a list of integers."`
//		Skipped string  `goargs:"-"`
//	}
//
// The long name defaults to the field name in kebab case (DryRun becomes dry-run). A default is
// converted strictly; a malformed default fails registration.
func NewRegistryFromStruct[T any](structWithTags *T, configs ...ConfigureRegistryFunc) (*Registry, error) {
	r, err := NewRegistryWith(configs...)
	if err != nil {
		return nil, err
	}
	if err := r.bindStruct(reflect.ValueOf(structWithTags)); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Registry) bindStruct(v reflect.Value) error {
	if v.Kind() != reflect.Ptr {
		return errs.ErrNotAPointer.WithArgs(v.Type().String())
	}
	elem, err := util.UnwrapValue(v)
	if err != nil {
		return err
	}
	if elem.Kind() != reflect.Struct {
		return errs.ErrNotAPointer.WithArgs(v.Type().String())
	}

	typ := elem.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		config, err := parse.UnmarshalTagFormat(field)
		if err != nil {
			return errs.ErrInvalidTag.WithArgs(field.Name, err.Error())
		}
		if config == nil {
			continue
		}
		if config.Long == "" {
			config.Long = strcase.ToKebab(field.Name)
		}

		if err := r.bindField(elem.Field(i).Addr().Interface(), config); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) bindField(ptr any, config *types.TagConfig) error {
	switch p := ptr.(type) {
	case *string:
		return bindTagged(r, p, config)
	case *bool:
		return bindTagged(r, p, config)
	case *int:
		return bindTagged(r, p, config)
	case *int8:
		return bindTagged(r, p, config)
	case *int16:
		return bindTagged(r, p, config)
	case *int32:
		return bindTagged(r, p, config)
	case *int64:
		return bindTagged(r, p, config)
	case *uint:
		return bindTagged(r, p, config)
	case *uint8:
		return bindTagged(r, p, config)
	case *uint16:
		return bindTagged(r, p, config)
	case *uint32:
		return bindTagged(r, p, config)
	case *uint64:
		return bindTagged(r, p, config)
	case *float32:
		return bindTagged(r, p, config)
	case *float64:
		return bindTagged(r, p, config)
	case *time.Time:
		return bindTagged(r, p, config)
	case *time.Duration:
		return bindTagged(r, p, config)
	case *[]string:
		return bindTagged(r, p, config)
	case *[]bool:
		return bindTagged(r, p, config)
	case *[]int:
		return bindTagged(r, p, config)
	case *[]int8:
		return bindTagged(r, p, config)
	case *[]int16:
		return bindTagged(r, p, config)
	case *[]int32:
		return bindTagged(r, p, config)
	case *[]int64:
		return bindTagged(r, p, config)
	case *[]uint:
		return bindTagged(r, p, config)
	case *[]uint8:
		return bindTagged(r, p, config)
	case *[]uint16:
		return bindTagged(r, p, config)
	case *[]uint32:
		return bindTagged(r, p, config)
	case *[]uint64:
		return bindTagged(r, p, config)
	case *[]float32:
		return bindTagged(r, p, config)
	case *[]float64:
		return bindTagged(r, p, config)
	case *[]time.Time:
		return bindTagged(r, p, config)
	case *[]time.Duration:
		return bindTagged(r, p, config)
	}

	return errs.ErrUnsupportedType.WithArgs(util.TypeName(ptr))
}

func bindTagged[T OptionValue](r *Registry, bindVar *T, config *types.TagConfig) error {
	if !config.HasDefault {
		return BindOption(r, bindVar, config.Short, config.Long, config.Description)
	}

	var defaultValue T
	if err := util.ConvertString(config.Default, &defaultValue, r.conv.delimiterFunc, false); err != nil {
		return errs.ErrInvalidDefault.WithArgs(config.Default, config.Long).Wrap(err)
	}

	return BindOptionWithDefault(r, bindVar, config.Short, config.Long, config.Description, defaultValue)
}
