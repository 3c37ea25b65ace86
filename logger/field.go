package logger

import (
	"reflect"
	"time"

	"github.com/philipp01105/applog/core"
)

// Item helpers for ConsoleLog. Keyed items render as key=value.

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return core.Field{Key: key, Type: core.BoolType, Int64: int64Val}
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an error field
func Err(err error) core.Field {
	if err == nil {
		return core.Field{Key: "error", Type: core.ErrorType, Str: ""}
	}
	return core.Field{Key: "error", Type: core.ErrorType, Str: errorText(err)}
}

// errorText returns err.Error(), or "<nil>" for a typed nil error such
// as (*os.PathError)(nil)
func errorText(err error) string {
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return "<nil>"
		}
	}
	return err.Error()
}

// Any creates a field with any value
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}

// Value creates a keyless item rendered as its bare value
func Value(val interface{}) core.Field {
	switch v := val.(type) {
	case string:
		return core.Field{Type: core.StringType, Str: v}
	case int:
		return core.Field{Type: core.IntType, Int64: int64(v)}
	case int64:
		return core.Field{Type: core.Int64Type, Int64: v}
	case float64:
		return core.Field{Type: core.Float64Type, Float64: v}
	case bool:
		return Bool("", v)
	case time.Time:
		return Time("", v)
	case time.Duration:
		return Duration("", v)
	case error:
		return core.Field{Type: core.ErrorType, Str: errorText(v)}
	default:
		return core.Field{Type: core.AnyType, Any: val}
	}
}

// Values converts each value with Value
func Values(vals ...interface{}) []core.Field {
	items := make([]core.Field, len(vals))
	for i, v := range vals {
		items[i] = Value(v)
	}
	return items
}
