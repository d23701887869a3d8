package interp

import "github.com/emberlang/ember/lang/token"

// applyBinary implements spec.md §4.3's arithmetic, comparison and equality
// rules for the Binary expression node (Logical's and/or are handled
// separately in interp.go, since they short-circuit).
func applyBinary(op token.Kind, left, right Value, line int, lexeme string) (Value, error) {
	switch op {
	case token.EQ_EQ:
		return Bool(valuesEqual(left, right)), nil
	case token.BANG_EQ:
		return Bool(!valuesEqual(left, right)), nil
	case token.PLUS:
		return applyPlus(left, right, line)
	case token.MINUS:
		l, r, err := bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case token.STAR:
		l, r, err := bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case token.SLASH:
		l, r, err := bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		if r == 0 {
			return nil, runtimeErrf(line, "Can't divide by zero.")
		}
		return l / r, nil
	case token.GT:
		l, r, err := bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return Bool(l > r), nil
	case token.GT_EQ:
		l, r, err := bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return Bool(l >= r), nil
	case token.LT:
		l, r, err := bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return Bool(l < r), nil
	case token.LT_EQ:
		l, r, err := bothNumbers(left, right, line)
		if err != nil {
			return nil, err
		}
		return Bool(l <= r), nil
	}
	return nil, runtimeErrf(line, "Unknown binary operator '%s'.", lexeme)
}

func bothNumbers(left, right Value, line int) (Number, Number, error) {
	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		return 0, 0, runtimeErrf(line, "Operands must be numbers.")
	}
	return l, r, nil
}

// applyPlus implements the '+' coercion rule spec.md §4.3 codifies: both
// numbers sum; otherwise if either operand is a string, both are rendered
// to text and concatenated (this is the rule that lets boolean/string and
// number/string mixes through); any other mix is a type error.
func applyPlus(left, right Value, line int) (Value, error) {
	ln, lIsNum := left.(Number)
	rn, rIsNum := right.(Number)
	if lIsNum && rIsNum {
		return ln + rn, nil
	}

	_, lIsStr := left.(String)
	_, rIsStr := right.(String)
	if lIsStr || rIsStr {
		return String(toText(left) + toText(right)), nil
	}

	return nil, runtimeErrf(line, "Operands must be two numbers or two strings.")
}
