package weak

import (
	"fmt"
	"reflect"
	"time"
)

// Conversion between native Go values and Values.
//
// Lifting never coerces: a Go string becomes Text even when it looks like a
// number, and a Go number becomes a Number. Coercion only happens in NumberOf
// and StringOf, which lift first and then apply ToNumber or ToString.

// LiftError is returned by FromGo and friends when a Go value has no
// counterpart among the Values.
type LiftError struct {
	// Go type of the offending value, as formatted by %T.
	GoType string
	// Path to the offending value inside a container, in the form used by
	// IndexPath. Empty when the offending value is the top-level one.
	Path []string
}

func (err *LiftError) Error() string {
	if len(err.Path) == 0 {
		return fmt.Sprintf("cannot lift value of type %s", err.GoType)
	}
	return fmt.Sprintf("cannot lift value of type %s at %v", err.GoType, err.Path)
}

// FromGo lifts a Go value into a Value. It supports:
//
//   - nil, which becomes Absent;
//   - Values, which are returned unchanged;
//   - string, which becomes Text;
//   - all integer and floating-point types, which become Number;
//   - time.Time, which becomes Text in RFC 3339 format;
//   - maps with string keys, which become Map;
//   - slices and arrays, which become List.
//
// Elements of maps, slices and arrays are lifted recursively. Other types,
// notably bool, result in a *LiftError.
func FromGo(x any) (Value, error) {
	return fromGo(x, nil)
}

func fromGo(x any, path []string) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Absent{}, nil
	case Value:
		return x, nil
	case string:
		return Text(x), nil
	case float64:
		return Number(x), nil
	case int:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case time.Time:
		return Text(x.Format(time.RFC3339Nano)), nil
	}
	return fromReflect(reflect.ValueOf(x), path)
}

func fromReflect(rv reflect.Value, path []string) (Value, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return Absent{}, nil
		}
		return fromGo(rv.Elem().Interface(), path)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List{}, nil
		}
		elems := make([]Value, rv.Len())
		for i := range elems {
			v, err := fromGo(rv.Index(i).Interface(), appendPath(path, fmt.Sprint(i)))
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return List{elems}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		entries := make(map[string]Value, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			k := it.Key().String()
			v, err := fromGo(it.Value().Interface(), appendPath(path, k))
			if err != nil {
				return nil, err
			}
			entries[k] = v
		}
		return Map{entries}, nil
	}
	return nil, &LiftError{GoType: goTypeName(rv), Path: path}
}

func goTypeName(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	return rv.Type().String()
}

func appendPath(path []string, elem string) []string {
	return append(path[:len(path):len(path)], elem)
}

func mustLift(x any) Value {
	v, err := FromGo(x)
	if err != nil {
		panic(err)
	}
	return v
}

// NumberOf lifts x and converts the result to a Number with ToNumber. It
// panics if x cannot be lifted.
func NumberOf(x any) Number { return ToNumber(mustLift(x)) }

// StringOf lifts x and converts the result to Text with ToString. It panics if
// x cannot be lifted.
func StringOf(x any) Text { return ToString(mustLift(x)) }
