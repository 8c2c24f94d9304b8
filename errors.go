package mal

import (
	"errors"
)

var (
	ErrUnexpectedEOF    = errors.New("unexpected end of input")
	ErrUnbalanced       = errors.New("unbalanced")
	ErrUnbalancedString = errors.New("unbalanced string")
	ErrUnknownToken     = errors.New("unknown token")
	ErrMapKey           = errors.New("map key must be a string or keyword")
	ErrIntRange         = errors.New("integer out of range")
	ErrTooDeep          = errors.New("nesting too deep")

	ErrUnbound      = errors.New("symbol not found")
	ErrSyntax       = errors.New("invalid arguments")
	ErrCondition    = errors.New("if condition must be a boolean")
	ErrNotInvokable = errors.New("head of a list is not invokable")
	ErrArity        = errors.New("wrong number of arguments")
	ErrType         = errors.New("type mismatch")
	ErrDivZero      = errors.New("division by zero")
	ErrDepth        = errors.New("maximum evaluation depth exceeded")
)
