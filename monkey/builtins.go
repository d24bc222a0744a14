package monkey

import "unicode/utf8"

// defaultBuiltins is the table every Engine starts from.
var defaultBuiltins = map[string]BuiltinFunc{
	"len":   builtinLen,
	"first": builtinFirst,
	"last":  builtinLast,
	"rest":  builtinRest,
	"push":  builtinPush,
}

func builtinLen(args ...Value) Value {
	if err, ok := checkArity(args, 1); !ok {
		return err
	}
	switch arg := args[0]; arg.Kind() {
	case KindString:
		return NewInt(int64(utf8.RuneCountInString(arg.Str())))
	case KindArray:
		return NewInt(int64(len(arg.Array())))
	default:
		return NewError("argument to `len` not supported, got %s", arg.Kind())
	}
}

func builtinFirst(args ...Value) Value {
	arr, err, ok := arrayArgument("first", args, 1)
	if !ok {
		return err
	}
	if len(arr) == 0 {
		return NewNull()
	}
	return arr[0]
}

func builtinLast(args ...Value) Value {
	arr, err, ok := arrayArgument("last", args, 1)
	if !ok {
		return err
	}
	if len(arr) == 0 {
		return NewNull()
	}
	return arr[len(arr)-1]
}

func builtinRest(args ...Value) Value {
	arr, err, ok := arrayArgument("rest", args, 1)
	if !ok {
		return err
	}
	if len(arr) == 0 {
		return NewNull()
	}
	rest := make([]Value, len(arr)-1)
	copy(rest, arr[1:])
	return NewArray(rest)
}

// builtinPush returns a new array; the argument array is never modified.
func builtinPush(args ...Value) Value {
	arr, err, ok := arrayArgument("push", args, 2)
	if !ok {
		return err
	}
	pushed := make([]Value, len(arr)+1)
	copy(pushed, arr)
	pushed[len(arr)] = args[1]
	return NewArray(pushed)
}

func checkArity(args []Value, want int) (Value, bool) {
	if len(args) != want {
		return NewError("wrong number of arguments. got=%d, want=%d", len(args), want), false
	}
	return Value{}, true
}

// arrayArgument validates arity and that the first argument is an array.
func arrayArgument(name string, args []Value, want int) ([]Value, Value, bool) {
	if err, ok := checkArity(args, want); !ok {
		return nil, err, false
	}
	if args[0].Kind() != KindArray {
		return nil, NewError("argument to `%s` must be ARRAY, got %s", name, args[0].Kind()), false
	}
	return args[0].Array(), Value{}, true
}
