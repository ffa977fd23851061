package parser

import (
	"regexp"
	"unicode/utf8"
)

// Rule is one entry of an ordered lexical table. Pattern is anchored to the
// head of the unconsumed input; the first rule whose pattern matches wins.
// A non-empty Literal replaces the matched text in the produced token, which
// canonicalizes Unicode variants and alternate spellings of an operator.
// When Resolve is set it classifies the matched text instead, supplying both
// kind and token text; one pattern can then cover a whole family of lexemes.
type Rule struct {
	Pattern *regexp.Regexp
	Kind    TokenKind
	Literal string
	Resolve func(text string) (TokenKind, string)
}

// NewRule compiles a head-anchored lexical rule.
func NewRule(pattern string, kind TokenKind) Rule {
	return Rule{Pattern: regexp.MustCompile(`^(?:` + pattern + `)`), Kind: kind}
}

// NewRuleLit is NewRule with a canonical literal override.
func NewRuleLit(pattern string, kind TokenKind, literal string) Rule {
	r := NewRule(pattern, kind)
	r.Literal = literal
	return r
}

// NewRuleFunc compiles a rule whose matches are classified after lexing:
// resolve maps the matched text to the token kind and canonical text.
func NewRuleFunc(pattern string, resolve func(text string) (TokenKind, string)) Rule {
	r := NewRule(pattern, TokenInvalid)
	r.Resolve = resolve
	return r
}

// Tokenizer owns the unconsumed input and a running byte offset. It is
// driven by an ordered rule table and a whitespace pattern, both supplied by
// the dialect.
type Tokenizer struct {
	rules  []Rule
	ws     *regexp.Regexp
	input  string
	offset int
}

// NewTokenizer builds a tokenizer over the given rule table. whitespace is a
// pattern (unanchored source form) consumed silently between tokens; LaTeX
// supplies control-sequence whitespace like \, and \quad here.
func NewTokenizer(rules []Rule, whitespace string) *Tokenizer {
	return &Tokenizer{
		rules: rules,
		ws:    regexp.MustCompile(`^(?:` + whitespace + `)+`),
	}
}

// SetInput resets the tokenizer over a fresh input string.
func (t *Tokenizer) SetInput(input string) {
	t.input = input
	t.offset = 0
}

// Advance skips leading whitespace and returns the next token. It returns an
// EOF token once the input is exhausted and an Invalid token carrying the
// offending character when no rule matches.
func (t *Tokenizer) Advance() Token {
	if m := t.ws.FindString(t.input); m != "" {
		t.consume(len(m))
	}
	if t.input == "" {
		return Token{Kind: TokenEOF, Pos: t.offset}
	}
	for _, r := range t.rules {
		m := r.Pattern.FindString(t.input)
		if m == "" {
			continue
		}
		tok := Token{Kind: r.Kind, Text: m, Pos: t.offset}
		if r.Literal != "" {
			tok.Text = r.Literal
		}
		if r.Resolve != nil {
			tok.Kind, tok.Text = r.Resolve(m)
		}
		t.consume(len(m))
		return tok
	}
	r, size := utf8.DecodeRuneInString(t.input)
	tok := Token{Kind: TokenInvalid, Text: string(r), Pos: t.offset}
	t.consume(size)
	return tok
}

// Unput prepends text to the unconsumed input and rewinds the offset. The
// symbol-splitting feature uses this to re-lex a multi-character identifier
// one character at a time.
func (t *Tokenizer) Unput(text string) {
	t.input = text + t.input
	t.offset -= len(text)
}

func (t *Tokenizer) consume(n int) {
	t.input = t.input[n:]
	t.offset += n
}
