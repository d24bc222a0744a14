package monkey

import "context"

// Execution holds the state of one evaluation: its context, step count and
// call depth. It is not safe for concurrent use.
type Execution struct {
	engine         *Engine
	ctx            context.Context
	quota          int
	recursionLimit int
	steps          int
	depth          int
}

func (exec *Execution) eval(node Node, env *Env) Value {
	if errVal, ok := exec.step(); !ok {
		return errVal
	}

	switch n := node.(type) {
	case *Program:
		return exec.evalProgram(n, env)
	case *BlockStatement:
		return exec.evalBlockStatement(n, env)
	case *ExpressionStatement:
		return exec.eval(n.Expression, env)
	case *LetStatement:
		val := exec.eval(n.Value, env)
		if isAbrupt(val) {
			return val
		}
		env.Set(n.Name.Value, val)
		return NewNull()
	case *ReturnStatement:
		if n.ReturnValue == nil {
			return newReturn(NewNull())
		}
		val := exec.eval(n.ReturnValue, env)
		if isAbrupt(val) {
			return val
		}
		return newReturn(val)

	case *IntegerLiteral:
		return NewInt(n.Value)
	case *StringLiteral:
		return NewString(n.Value)
	case *BooleanLiteral:
		return NewBool(n.Value)
	case *ArrayLiteral:
		elements, abrupt, ok := exec.evalExpressions(n.Elements, env)
		if !ok {
			return abrupt
		}
		return NewArray(elements)
	case *Identifier:
		return exec.evalIdentifier(n, env)
	case *PrefixExpression:
		right := exec.eval(n.Right, env)
		if isAbrupt(right) {
			return right
		}
		return evalPrefixExpression(n.Operator, right)
	case *InfixExpression:
		left := exec.eval(n.Left, env)
		if isAbrupt(left) {
			return left
		}
		right := exec.eval(n.Right, env)
		if isAbrupt(right) {
			return right
		}
		return evalInfixExpression(n.Operator, left, right)
	case *IfExpression:
		return exec.evalIfExpression(n, env)
	case *IndexExpression:
		return exec.evalIndexExpression(n, env)
	case *FunctionLiteral:
		return NewFunction(n.Parameters, n.Body, env)
	case *CallExpression:
		return exec.evalCallExpression(n, env)
	default:
		return NewError("cannot evaluate %T", node)
	}
}

// evalProgram runs the top level; a return there ends the program with the
// returned value.
func (exec *Execution) evalProgram(program *Program, env *Env) Value {
	result := NewNull()
	for _, stmt := range program.Statements {
		result = exec.eval(stmt, env)
		switch result.Kind() {
		case KindReturn:
			return result.unwrapReturn()
		case KindError:
			return result
		}
	}
	return result
}

// evalBlockStatement keeps return values wrapped so they unwind through
// nested blocks up to the enclosing call.
func (exec *Execution) evalBlockStatement(block *BlockStatement, env *Env) Value {
	result := NewNull()
	for _, stmt := range block.Statements {
		result = exec.eval(stmt, env)
		if isAbrupt(result) {
			return result
		}
	}
	return result
}

func (exec *Execution) evalIfExpression(ie *IfExpression, env *Env) Value {
	condition := exec.eval(ie.Condition, env)
	if isAbrupt(condition) {
		return condition
	}
	switch {
	case condition.Truthy():
		return exec.eval(ie.Consequence, env)
	case ie.Alternative != nil:
		return exec.eval(ie.Alternative, env)
	default:
		return NewNull()
	}
}

func (exec *Execution) evalIdentifier(ident *Identifier, env *Env) Value {
	if val, ok := env.Get(ident.Value); ok {
		return val
	}
	if builtin, ok := exec.engine.builtins[ident.Value]; ok {
		return builtin
	}
	return NewError("identifier not found: %s", ident.Value)
}

func (exec *Execution) evalIndexExpression(ie *IndexExpression, env *Env) Value {
	left := exec.eval(ie.Left, env)
	if isAbrupt(left) {
		return left
	}
	index := exec.eval(ie.Index, env)
	if isAbrupt(index) {
		return index
	}

	if left.Kind() != KindArray {
		return NewError("index operator not supported: %s", left.Kind())
	}
	if index.Kind() != KindInt {
		return NewError("index must be INTEGER, got %s", index.Kind())
	}
	arr := left.Array()
	i := index.Int()
	if i < 0 || i >= int64(len(arr)) {
		return NewNull()
	}
	return arr[i]
}

// evalExpressions evaluates exprs left to right. On the first error or
// return signal it stops and hands that value back with ok == false.
func (exec *Execution) evalExpressions(exprs []Expression, env *Env) ([]Value, Value, bool) {
	values := make([]Value, 0, len(exprs))
	for _, expr := range exprs {
		val := exec.eval(expr, env)
		if isAbrupt(val) {
			return nil, val, false
		}
		values = append(values, val)
	}
	return values, Value{}, true
}

// isAbrupt reports whether v ends the surrounding statement sequence.
func isAbrupt(v Value) bool {
	return v.kind == KindError || v.kind == KindReturn
}
