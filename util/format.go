package util

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FormatValue renders a supported option value the way it would be written on the command line:
// list elements are joined with ',' and times use RFC 3339.
func FormatValue(data any) string {
	switch t := data.(type) {
	case time.Time:
		return t.Format(time.RFC3339)
	case string:
		return t
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Slice {
		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts[i] = FormatValue(v.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}

	return fmt.Sprint(data)
}

// TypeName returns the name of the type data points to, or of data itself when it is not a pointer
func TypeName(data any) string {
	if data == nil {
		return "nil"
	}

	return UnwrapType(reflect.TypeOf(data)).String()
}
