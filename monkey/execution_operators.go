package monkey

func evalPrefixExpression(operator string, right Value) Value {
	switch operator {
	case "!":
		return NewBool(!right.Truthy())
	case "-":
		// Negating a non-integer is null rather than an error.
		if right.Kind() != KindInt {
			return NewNull()
		}
		return NewInt(-right.Int())
	default:
		return NewError("unknown operator: %s%s", operator, right.Kind())
	}
}

func evalInfixExpression(operator string, left, right Value) Value {
	switch {
	case left.Kind() == KindInt && right.Kind() == KindInt:
		return evalIntegerInfixExpression(operator, left.Int(), right.Int())
	case left.Kind() != right.Kind():
		return NewError("type mismatch: %s %s %s", left.Kind(), operator, right.Kind())
	case left.Kind() == KindString:
		if operator != "+" {
			return unknownOperator(operator, left, right)
		}
		return NewString(left.Str() + right.Str())
	case left.Kind() == KindBool:
		switch operator {
		case "==":
			return NewBool(left.Bool() == right.Bool())
		case "!=":
			return NewBool(left.Bool() != right.Bool())
		default:
			return unknownOperator(operator, left, right)
		}
	default:
		return unknownOperator(operator, left, right)
	}
}

func evalIntegerInfixExpression(operator string, left, right int64) Value {
	switch operator {
	case "+":
		return NewInt(left + right)
	case "-":
		return NewInt(left - right)
	case "*":
		return NewInt(left * right)
	case "/":
		if right == 0 {
			return NewError("division by zero")
		}
		return NewInt(left / right)
	case "<":
		return NewBool(left < right)
	case ">":
		return NewBool(left > right)
	case "==":
		return NewBool(left == right)
	case "!=":
		return NewBool(left != right)
	default:
		return NewError("unknown operator: %s %s %s", KindInt, operator, KindInt)
	}
}

func unknownOperator(operator string, left, right Value) Value {
	return NewError("unknown operator: %s %s %s", left.Kind(), operator, right.Kind())
}
