package monkey

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindString
	KindArray
	KindFunction
	KindBuiltin
	KindError
	KindReturn
)

// Value is a runtime value. The zero Value is null.
type Value struct {
	kind ValueKind
	data any
}

// Function is a closure: a function literal paired with the environment it
// was evaluated in.
type Function struct {
	Parameters []*Identifier
	Body       *BlockStatement
	Env        *Env
}

// BuiltinFunc implements a native function. Failures are reported by
// returning an error value.
type BuiltinFunc func(args ...Value) Value

type Builtin struct {
	Name string
	Fn   BuiltinFunc
}
