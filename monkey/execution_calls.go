package monkey

func (exec *Execution) evalCallExpression(call *CallExpression, env *Env) Value {
	callee := exec.eval(call.Function, env)
	if isAbrupt(callee) {
		return callee
	}
	args, abrupt, ok := exec.evalExpressions(call.Arguments, env)
	if !ok {
		return abrupt
	}
	return exec.applyFunction(callee, args)
}

// applyFunction binds parameters positionally without checking arity:
// parameters beyond the supplied arguments stay unbound and surplus
// arguments are ignored.
func (exec *Execution) applyFunction(callee Value, args []Value) Value {
	switch callee.Kind() {
	case KindFunction:
		fn := callee.Function()
		if exec.recursionLimit > 0 && exec.depth >= exec.recursionLimit {
			return NewError("recursion depth exceeded (limit %d)", exec.recursionLimit)
		}
		exec.depth++
		defer func() { exec.depth-- }()

		callEnv := NewEnv(fn.Env)
		for i, param := range fn.Parameters {
			if i >= len(args) {
				break
			}
			callEnv.Set(param.Value, args[i])
		}
		return exec.eval(fn.Body, callEnv).unwrapReturn()
	case KindBuiltin:
		return callee.Builtin().Fn(args...)
	default:
		return NewError("not a function: %s", callee.Kind())
	}
}
