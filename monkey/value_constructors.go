package monkey

import "fmt"

func NewNull() Value           { return Value{kind: KindNull} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewArray(a []Value) Value { return Value{kind: KindArray, data: a} }

func NewFunction(params []*Identifier, body *BlockStatement, env *Env) Value {
	return Value{kind: KindFunction, data: &Function{Parameters: params, Body: body, Env: env}}
}

func NewBuiltin(name string, fn BuiltinFunc) Value {
	return Value{kind: KindBuiltin, data: &Builtin{Name: name, Fn: fn}}
}

func NewError(format string, args ...any) Value {
	return Value{kind: KindError, data: fmt.Sprintf(format, args...)}
}

func newReturn(v Value) Value { return Value{kind: KindReturn, data: v} }
