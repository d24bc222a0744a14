package monkey

import (
	"fmt"
	"strconv"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindBool:
		return "BOOLEAN"
	case KindInt:
		return "INTEGER"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	case KindFunction:
		return "FUNCTION"
	case KindBuiltin:
		return "BUILTIN"
	case KindError:
		return "ERROR"
	case KindReturn:
		return "RETURN_VALUE"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String renders the value for display: strings verbatim, errors prefixed
// with "ERROR: ".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.Bool())
	case KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case KindString:
		return v.Str()
	case KindArray:
		elems := v.Array()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFunction:
		fn := v.Function()
		return "fn(" + joinIdentifiers(fn.Parameters) + ") " + fn.Body.String()
	case KindBuiltin:
		return "builtin function"
	case KindError:
		return "ERROR: " + v.ErrorMessage()
	case KindReturn:
		return v.unwrapReturn().String()
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Truthy reports how the value behaves as a condition: null and false are
// falsy, everything else (including 0 and "") is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal compares by kind and payload. Functions and builtins are equal only
// to themselves.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindInt:
		return v.Int() == other.Int()
	case KindString:
		return v.Str() == other.Str()
	case KindError:
		return v.ErrorMessage() == other.ErrorMessage()
	case KindArray:
		a, b := v.Array(), other.Array()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindFunction:
		return v.Function() == other.Function()
	case KindBuiltin:
		return v.Builtin() == other.Builtin()
	case KindReturn:
		return v.unwrapReturn().Equal(other.unwrapReturn())
	default:
		return false
	}
}
