package syntax

import "errors"

var (
	// ErrEndOfBuffer is returned when a scan runs off the end of the buffer
	// before finding a complete form.
	ErrEndOfBuffer = errors.New("syntax: unexpected end of buffer")

	// ErrUnbalancedParentheses is returned when an opener is never matched by
	// a closer before the buffer ends.
	ErrUnbalancedParentheses = errors.New("syntax: unbalanced parentheses")

	// ErrMismatchedParentheses is returned when a closer does not match the
	// opener it is paired against, e.g. "( ]".
	ErrMismatchedParentheses = errors.New("syntax: mismatched parentheses")

	// ErrUnexpectedCloseParen is returned when a closer is seen with no
	// corresponding open group on the scan stack.
	ErrUnexpectedCloseParen = errors.New("syntax: unexpected close paren")

	// ErrUnbalancedString is returned when a string literal's opening quote
	// is never matched by a closing quote before the buffer ends.
	ErrUnbalancedString = errors.New("syntax: unbalanced string literal")

	// ErrInvalidSyntax is returned when an opener byte has no closer
	// registered for it in the table.
	ErrInvalidSyntax = errors.New("syntax: invalid syntax")

	// ErrNotImplemented marks scanner behavior intentionally left unhandled,
	// such as syntax presets this table does not define.
	ErrNotImplemented = errors.New("syntax: not implemented")
)
