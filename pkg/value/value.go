package value

import (
	"fmt"
	"reflect"
	"strconv"
)

// Renderer is implemented by values that produce their own markup.
// Renderers are never escaped by the content rendering path.
type Renderer interface {
	Render() string
}

// Flatten collapses nested sequences into a single ordered sequence of
// leaves, depth-first and left to right. Nil leaves are dropped. Strings
// and Renderers are always leaves even when their dynamic type is a slice.
func Flatten(values ...any) []any {
	out := make([]any, 0, len(values))
	walk(values, func(leaf any) {
		out = append(out, leaf)
	})
	return out
}

// Strings flattens values and coerces every leaf to a string in the same
// pass, so no element is visited twice.
func Strings(values ...any) []string {
	out := make([]string, 0, len(values))
	walk(values, func(leaf any) {
		out = append(out, String(leaf))
	})
	return out
}

// walk visits the leaves of values in order.
func walk(values []any, visit func(any)) {
	for _, v := range values {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			visit(t)
		case Renderer:
			if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
				continue
			}
			visit(t)
		case []byte:
			visit(string(t))
		case []any:
			walk(t, visit)
		case []string:
			for _, s := range t {
				visit(s)
			}
		default:
			rv := reflect.ValueOf(v)
			switch rv.Kind() {
			case reflect.Slice, reflect.Array:
				if rv.Kind() == reflect.Slice && rv.IsNil() {
					continue
				}
				items := make([]any, rv.Len())
				for i := range items {
					items[i] = rv.Index(i).Interface()
				}
				walk(items, visit)
			case reflect.Pointer, reflect.Interface:
				if rv.IsNil() {
					continue
				}
				visit(v)
			default:
				visit(v)
			}
		}
	}
}

// String converts a single leaf to its string representation.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case Renderer:
		return t.Render()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
