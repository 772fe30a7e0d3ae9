package parse

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/napalu/goargs/types"
)

// TagName is the struct tag key read by UnmarshalTagFormat
const TagName = "goargs"

// UnmarshalTagFormat reads the goargs tag of field. The tag is a ';' separated list of key:value pairs:
//
//	Verbose bool `goargs:"short:v;long:verbose;desc:print more;default:false"`
//
// It returns nil, nil when the field carries no goargs tag or the tag is "-".
func UnmarshalTagFormat(field reflect.StructField) (*types.TagConfig, error) {
	tag, ok := field.Tag.Lookup(TagName)
	if !ok || tag == "-" {
		return nil, nil
	}

	config := &types.TagConfig{}
	for _, part := range strings.Split(tag, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("expected key:value in %q", part)
		}

		switch strings.TrimSpace(key) {
		case "long":
			config.Long = value
		case "short":
			config.Short = value
		case "desc":
			config.Description = value
		case "default":
			config.Default = value
			config.HasDefault = true
		default:
			return nil, fmt.Errorf("unrecognized key %q", key)
		}
	}

	return config, nil
}
