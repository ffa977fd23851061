package parser

import (
	"strconv"
	"strings"

	"github.com/XimeraProject/math-convert/ast"
)

// dialect supplies the notation-specific surface of the grammar: the token
// rule table lives in the Tokenizer it builds, and primary handles the leaf
// productions only one notation has (\frac, matrix environments, set braces).
type dialect interface {
	// primary parses notation-specific base factors. ok reports whether the
	// dialect recognized the current token; when false the shared grammar
	// handles it.
	primary(p *Parser) (n *ast.Node, ok bool, err error)
	// startsFactor reports notation-specific tokens that may begin a factor,
	// extending the shared set used for implicit multiplication.
	startsFactor(kind TokenKind) bool
	// symbolName canonicalizes the lexed spelling of a variable token.
	symbolName(text string) string
}

// Parser is one configured instance of the grammar engine. It is not safe
// for concurrent use during a Convert call; distinct instances share
// nothing.
type Parser struct {
	cfg     config
	dialect dialect
	tok     *Tokenizer
	cur     Token
	depth   int
}

// Convert parses input and returns the canonical (normalized) tree, or a
// structured parse error carrying the byte offset of the offending token.
func (p *Parser) Convert(input string) (*ast.Node, error) {
	p.tok.SetInput(input)
	p.depth = 0
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseStatementList()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenEOF {
		return nil, &UnexpectedTokenError{Found: p.cur.Text, Pos: p.cur.Pos}
	}
	return ast.Flatten(n), nil
}

func (p *Parser) advance() error {
	p.cur = p.tok.Advance()
	if p.cur.Kind == TokenInvalid {
		return &LexError{Char: p.cur.Text, Pos: p.cur.Pos}
	}
	return nil
}

func (p *Parser) foundText() string {
	if p.cur.Kind == TokenEOF {
		return ""
	}
	return p.cur.Text
}

func (p *Parser) expect(kind TokenKind) error {
	if p.cur.Kind != kind {
		return &ExpectedTokenError{Expected: kind.String(), Found: p.foundText(), Pos: p.cur.Pos}
	}
	return p.advance()
}

// enter guards every self-recursive production: input nested beyond the
// configured depth fails instead of overflowing the stack. Each enter pairs
// with a leave.
func (p *Parser) enter() error {
	if p.depth >= p.cfg.maxDepth {
		return &DepthError{Pos: p.cur.Pos}
	}
	p.depth++
	return nil
}

func (p *Parser) leave() { p.depth-- }

// statement-list: statement { "," statement }
func (p *Parser) parseStatementList() (*ast.Node, error) {
	first, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	items := []*ast.Node{first}
	for p.cur.Kind == TokenComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return ast.MustApply(ast.TagList, items...), nil
}

// statement: statement2 { "or" statement2 }
func (p *Parser) parseStatement() (*ast.Node, error) {
	n, err := p.parseStatement2()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseStatement2()
		if err != nil {
			return nil, err
		}
		n = ast.MustApply(ast.TagOr, n, rhs)
	}
	return n, nil
}

// statement2: relation { "and" relation }
func (p *Parser) parseStatement2() (*ast.Node, error) {
	n, err := p.parseRelation()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == TokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseRelation()
		if err != nil {
			return nil, err
		}
		n = ast.MustApply(ast.TagAnd, n, rhs)
	}
	return n, nil
}

var binaryRelTags = map[TokenKind]ast.Tag{
	TokenNe:          ast.TagNe,
	TokenIn:          ast.TagIn,
	TokenNotIn:       ast.TagNotIn,
	TokenNi:          ast.TagNi,
	TokenNotNi:       ast.TagNotNi,
	TokenSubset:      ast.TagSubset,
	TokenNotSubset:   ast.TagNotSubset,
	TokenSuperset:    ast.TagSuperset,
	TokenNotSuperset: ast.TagNotSuperset,
}

// relation: "not" relation | expression { relational-op expression }
//
// Runs of "=" collapse into one n-ary equality; runs of "<"/"<=" (or
// ">"/">=") of one direction collapse into a chained relation with a
// parallel strictness vector. Mixing directions does not chain: the second
// run starts from the node the first run produced, so x<y>z becomes
// (x<y)>z.
func (p *Parser) parseRelation() (*ast.Node, error) {
	if p.cur.Kind == TokenNot {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseRelation()
		if err != nil {
			return nil, err
		}
		return ast.MustApply(ast.TagNot, operand), nil
	}
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Kind {
		case TokenEq:
			operands := []*ast.Node{n}
			for p.cur.Kind == TokenEq {
				if err := p.advance(); err != nil {
					return nil, err
				}
				rhs, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				operands = append(operands, rhs)
			}
			n = ast.MustApply(ast.TagEq, operands...)
		case TokenLt, TokenLe:
			n, err = p.parseChain(n, TokenLt, TokenLe, ast.TagLt, ast.TagLe, ast.TagLts)
			if err != nil {
				return nil, err
			}
		case TokenGt, TokenGe:
			n, err = p.parseChain(n, TokenGt, TokenGe, ast.TagGt, ast.TagGe, ast.TagGts)
			if err != nil {
				return nil, err
			}
		default:
			tag, ok := binaryRelTags[p.cur.Kind]
			if !ok {
				return n, nil
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(tag, n, rhs)
		}
	}
}

func (p *Parser) parseChain(lhs *ast.Node, strictKind, slackKind TokenKind, strictTag, slackTag, chainTag ast.Tag) (*ast.Node, error) {
	operands := []*ast.Node{lhs}
	var strict []bool
	for p.cur.Kind == strictKind || p.cur.Kind == slackKind {
		strict = append(strict, p.cur.Kind == strictKind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		operands = append(operands, rhs)
	}
	if len(operands) == 2 {
		tag := slackTag
		if strict[0] {
			tag = strictTag
		}
		return ast.MustApply(tag, operands[0], operands[1]), nil
	}
	return ast.Chain(chainTag, operands, strict)
}

// expression: ["+"] term { ("+" | "-" | "union" | "intersect") term }
//
// Subtraction builds "+" over a negated operand so that the normalizer can
// flatten mixed sums.
func (p *Parser) parseExpression() (*ast.Node, error) {
	if p.cur.Kind == TokenPlus {
		// Leading unary plus is dropped.
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Kind {
		case TokenPlus:
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(ast.TagAdd, n, rhs)
		case TokenMinus:
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(ast.TagAdd, n, ast.MustApply(ast.TagNeg, rhs))
		case TokenUnion:
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(ast.TagUnion, n, rhs)
		case TokenIntersect:
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(ast.TagIntersect, n, rhs)
		default:
			return n, nil
		}
	}
}

// term: factor { ("*" | "/") factor | factor }
//
// The bare-factor alternative is implicit multiplication: any token that can
// begin a factor, adjacent to a parsed one, multiplies in.
func (p *Parser) parseTerm() (*ast.Node, error) {
	n, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.cur.Kind == TokenStar:
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(ast.TagMul, n, rhs)
		case p.cur.Kind == TokenSlash:
			if err := p.advance(); err != nil {
				return nil, err
			}
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(ast.TagDiv, n, rhs)
		case p.startsFactor(p.cur.Kind):
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			n = ast.MustApply(ast.TagMul, n, rhs)
		default:
			return n, nil
		}
	}
}

func (p *Parser) startsFactor(kind TokenKind) bool {
	switch kind {
	case TokenNumber, TokenVar, TokenVarMulti, TokenInfinity, TokenLParen, TokenLBracket:
		return true
	}
	return p.dialect.startsFactor(kind)
}

// factor: "-" factor | "|" statement "|" | non-minus-factor
func (p *Parser) parseFactor() (*ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur.Kind {
	case TokenMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.MustApply(ast.TagNeg, operand), nil
	case TokenPipe:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenPipe); err != nil {
			return nil, err
		}
		return ast.MustApply(ast.TagApply, ast.Symbol("abs"), inner), nil
	}
	return p.parseNonMinusFactor()
}

// non-minus-factor: base-factor { "!" | "'" | "_" base-factor } ["^" factor]
//
// Postfix marks and subscripts bind tighter than exponentiation; the
// exponent recurses through factor, making "^" right-associative.
func (p *Parser) parseNonMinusFactor() (*ast.Node, error) {
	base, err := p.parseBaseFactor()
	if err != nil {
		return nil, err
	}
loop:
	for {
		switch p.cur.Kind {
		case TokenBang:
			if err := p.advance(); err != nil {
				return nil, err
			}
			base = ast.MustApply(ast.TagApply, ast.Symbol("factorial"), base)
		case TokenPrimeMark:
			if err := p.advance(); err != nil {
				return nil, err
			}
			base = ast.MustApply(ast.TagPrime, base)
		case TokenUnderscore:
			if err := p.advance(); err != nil {
				return nil, err
			}
			sub, err := p.parseBaseFactor()
			if err != nil {
				return nil, err
			}
			base = ast.MustApply(ast.TagSubscript, base, sub)
		default:
			break loop
		}
	}
	if p.cur.Kind == TokenCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exp, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		base = ast.MustApply(ast.TagPow, base, exp)
	}
	return base, nil
}

func (p *Parser) parseBaseFactor() (*ast.Node, error) {
	if n, ok, err := p.dialect.primary(p); ok || err != nil {
		return n, err
	}
	tok := p.cur
	switch tok.Kind {
	case TokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &UnexpectedTokenError{Found: tok.Text, Pos: tok.Pos}
		}
		return ast.Number(v), nil
	case TokenInfinity:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Symbol("infinity"), nil
	case TokenVar, TokenVarMulti:
		return p.parseSymbol(tok)
	case TokenLParen, TokenLBracket:
		return p.parseBracketGroup()
	case TokenEOF:
		return nil, &UnexpectedEOFError{Pos: tok.Pos}
	default:
		return nil, &UnexpectedTokenError{Found: tok.Text, Pos: tok.Pos}
	}
}

// parseSymbol classifies a lexed identifier. Function names parse their
// application forms; other multi-letter identifiers may be split into
// single-letter factors by pushing the characters back onto the tokenizer
// with synthetic spaces and re-lexing.
func (p *Parser) parseSymbol(tok Token) (*ast.Node, error) {
	name := p.dialect.symbolName(tok.Text)
	function := p.cfg.applied[name] || p.cfg.bare[name]
	if !function && p.cfg.splitSymbols && tok.Kind != TokenVarMulti && p.splittable(name) {
		var b strings.Builder
		for i, r := range name {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
		}
		p.tok.Unput(b.String())
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseBaseFactor()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if function {
		return p.parseFunction(name)
	}
	return ast.Symbol(name), nil
}

func (p *Parser) splittable(name string) bool {
	if len(name) < 2 || p.cfg.unsplit[name] {
		return false
	}
	for _, r := range name {
		if r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}

// parseFunction parses the application forms of a function name: an
// optional subscript and prime marks decorating the name, an optional
// superscript applied to the name pending application, then either a
// parenthesized argument list or, for applied functions with simplified
// application enabled, a single juxtaposed factor.
func (p *Parser) parseFunction(name string) (*ast.Node, error) {
	head := ast.Symbol(name)
	if p.cur.Kind == TokenUnderscore {
		if err := p.advance(); err != nil {
			return nil, err
		}
		sub, err := p.parseBaseFactor()
		if err != nil {
			return nil, err
		}
		head = ast.MustApply(ast.TagSubscript, head, sub)
	}
	for p.cur.Kind == TokenPrimeMark {
		if err := p.advance(); err != nil {
			return nil, err
		}
		head = ast.MustApply(ast.TagPrime, head)
	}
	var exp *ast.Node
	if p.cur.Kind == TokenCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		exp = e
	}
	var result *ast.Node
	switch {
	case p.cur.Kind == TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		first, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		args := []*ast.Node{first}
		for p.cur.Kind == TokenComma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			next, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		arg := args[0]
		if len(args) > 1 {
			arg = ast.MustApply(ast.TagTuple, args...)
		}
		result = ast.MustApply(ast.TagApply, head, arg)
	case p.cfg.applied[name]:
		if !p.cfg.simplifiedApply {
			return nil, &ExpectedTokenError{Expected: "(", Found: p.foundText(), Pos: p.cur.Pos}
		}
		arg, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		result = ast.MustApply(ast.TagApply, head, arg)
	default:
		// A bare function with no argument is an ordinary variable reference.
		result = head
	}
	if exp != nil {
		result = ast.MustApply(ast.TagPow, result, exp)
	}
	return result, nil
}

// parseBracketGroup parses "(...)" and "[...]" groups: a single element
// unwraps, matching brackets with several elements build a tuple or array,
// and the two mixed-bracket forms (a,b] and [a,b) build half-open
// intervals. Every other mismatch is an error.
func (p *Parser) parseBracketGroup() (*ast.Node, error) {
	open := p.cur
	if err := p.advance(); err != nil {
		return nil, err
	}
	first, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	items := []*ast.Node{first}
	for p.cur.Kind == TokenComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	matching := TokenRParen
	if open.Kind == TokenLBracket {
		matching = TokenRBracket
	}
	closeTok := p.cur
	if closeTok.Kind != TokenRParen && closeTok.Kind != TokenRBracket {
		return nil, &ExpectedTokenError{Expected: matching.String(), Found: p.foundText(), Pos: closeTok.Pos}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if closeTok.Kind == matching {
		if len(items) == 1 {
			return items[0], nil
		}
		tag := ast.TagTuple
		if open.Kind == TokenLBracket {
			tag = ast.TagArray
		}
		return ast.MustApply(tag, items...), nil
	}
	if len(items) != 2 {
		return nil, &ExpectedTokenError{Expected: matching.String(), Found: closeTok.Text, Pos: closeTok.Pos}
	}
	closedLo := open.Kind == TokenLBracket
	closedHi := closeTok.Kind == TokenRBracket
	return ast.Interval(items[0], items[1], closedLo, closedHi), nil
}

// parseSetGroup parses a brace-delimited comma list into a set. A single
// element stays a singleton set.
func (p *Parser) parseSetGroup(closeKind TokenKind) (*ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	first, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	items := []*ast.Node{first}
	for p.cur.Kind == TokenComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	if err := p.expect(closeKind); err != nil {
		return nil, err
	}
	return ast.MustApply(ast.TagSet, items...), nil
}
