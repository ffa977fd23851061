package parser

import "strconv"

// Error is implemented by every parse failure. Offset is the absolute byte
// offset of the offending input.
type Error interface {
	error
	Offset() int
}

// LexError reports a character no lexical rule recognizes.
type LexError struct {
	Char string
	Pos  int
}

func (e *LexError) Error() string {
	return "unrecognized character " + strconv.Quote(e.Char) + " at offset " + strconv.Itoa(e.Pos)
}

func (e *LexError) Offset() int { return e.Pos }

// UnexpectedEOFError reports input that ended where a term was required.
type UnexpectedEOFError struct {
	Pos int
}

func (e *UnexpectedEOFError) Error() string {
	return "unexpected end of input at offset " + strconv.Itoa(e.Pos)
}

func (e *UnexpectedEOFError) Offset() int { return e.Pos }

// UnexpectedTokenError reports a token that cannot occur at its location.
type UnexpectedTokenError struct {
	Found string
	Pos   int
}

func (e *UnexpectedTokenError) Error() string {
	return "unexpected " + strconv.Quote(e.Found) + " at offset " + strconv.Itoa(e.Pos)
}

func (e *UnexpectedTokenError) Offset() int { return e.Pos }

// ExpectedTokenError reports a missing required token, typically a closing
// or matching delimiter.
type ExpectedTokenError struct {
	Expected string
	Found    string
	Pos      int
}

func (e *ExpectedTokenError) Error() string {
	found := e.Found
	if found == "" {
		found = "end of input"
	} else {
		found = strconv.Quote(found)
	}
	return "expected " + strconv.Quote(e.Expected) + " at offset " + strconv.Itoa(e.Pos) + ", found " + found
}

func (e *ExpectedTokenError) Offset() int { return e.Pos }

// UnknownIdentifierError reports a LaTeX command or environment name outside
// every configured set.
type UnknownIdentifierError struct {
	Name string
	Pos  int
}

func (e *UnknownIdentifierError) Error() string {
	return "unknown name " + strconv.Quote(e.Name) + " at offset " + strconv.Itoa(e.Pos)
}

func (e *UnknownIdentifierError) Offset() int { return e.Pos }

// MalformedEnvironmentError reports a matrix-style environment whose body
// does not follow the row/column grammar.
type MalformedEnvironmentError struct {
	Env string
	Pos int
}

func (e *MalformedEnvironmentError) Error() string {
	return "malformed environment " + strconv.Quote(e.Env) + " at offset " + strconv.Itoa(e.Pos)
}

func (e *MalformedEnvironmentError) Offset() int { return e.Pos }

// DepthError reports input nested beyond the configured recursion budget.
type DepthError struct {
	Pos int
}

func (e *DepthError) Error() string {
	return "expression nested too deeply at offset " + strconv.Itoa(e.Pos)
}

func (e *DepthError) Offset() int { return e.Pos }
