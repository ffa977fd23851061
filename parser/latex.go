package parser

import (
	"strings"

	"github.com/XimeraProject/math-convert/ast"
)

// latexWhitespace is consumed silently between tokens. Spacing control
// sequences and \left/\right sizing carry no meaning for the tree.
const latexWhitespace = `\s|\\[,;:!]|\\ |\\quad\b|\\qquad\b|\\left\b|\\right\b|\\limits\b|\\displaystyle\b|\\textstyle\b`

// latexRules is the LaTeX rule table. A single rule lexes every control
// sequence and resolveCommand classifies the spelled name afterwards; a
// trailing pattern like \b cannot end a command before a digit or an
// underscore (both are word characters), so \frac1x and \theta_0 must not
// depend on boundary matching. Only the \not pairs, which span two control
// sequences, keep dedicated rules.
var latexRules = []Rule{
	NewRule(`(?:\d+\.\d*|\.\d+|\d+)(?:[eE][+-]?\d+)?`, TokenNumber),

	NewRule(`\\\\`, TokenRowSep),
	NewRuleLit(`\\\{`, TokenSetLBrace, `\{`),
	NewRuleLit(`\\\}`, TokenSetRBrace, `\}`),
	NewRule(`\\begin\{[a-zA-Z]+\*?\}`, TokenBeginEnv),
	NewRule(`\\end\{[a-zA-Z]+\*?\}`, TokenEndEnv),
	NewRule(`\\var\{[a-zA-Z][a-zA-Z0-9]*\}`, TokenVarMulti),

	NewRuleLit(`\\not\s*\\ni`, TokenNotNi, "notni"),
	NewRuleLit(`\\not\s*\\in`, TokenNotIn, "notin"),
	NewRuleLit(`\\not\s*\\subset(?:eq)?`, TokenNotSubset, "notsubset"),
	NewRuleLit(`\\not\s*\\supset(?:eq)?`, TokenNotSuperset, "notsuperset"),

	NewRuleFunc(`\\[a-zA-Z]+`, resolveCommand),

	NewRuleLit(`∞`, TokenInfinity, "infinity"),
	NewRuleLit(`·|×`, TokenStar, "*"),
	NewRuleLit(`≠`, TokenNe, "!="),
	NewRuleLit(`≤`, TokenLe, "<="),
	NewRuleLit(`≥`, TokenGe, ">="),
	NewRuleLit(`∧`, TokenAnd, "and"),
	NewRuleLit(`∨`, TokenOr, "or"),
	NewRuleLit(`¬`, TokenNot, "not"),
	NewRuleLit(`∉`, TokenNotIn, "notin"),
	NewRuleLit(`∌`, TokenNotNi, "notni"),
	NewRuleLit(`⊄`, TokenNotSubset, "notsubset"),
	NewRuleLit(`⊅`, TokenNotSuperset, "notsuperset"),
	NewRuleLit(`∈`, TokenIn, "in"),
	NewRuleLit(`∋`, TokenNi, "ni"),
	NewRuleLit(`⊂`, TokenSubset, "subset"),
	NewRuleLit(`⊃`, TokenSuperset, "superset"),
	NewRuleLit(`∪`, TokenUnion, "union"),
	NewRuleLit(`∩`, TokenIntersect, "intersect"),

	NewRule(`[a-zA-Z]`, TokenVar),
	NewRule(`[\x{0391}-\x{03C9}]`, TokenVarMulti),

	NewRule(`<`, TokenLt),
	NewRule(`>`, TokenGt),
	NewRule(`=`, TokenEq),
	NewRule(`\+`, TokenPlus),
	NewRuleLit(`-|−`, TokenMinus, "-"),
	NewRule(`\*`, TokenStar),
	NewRule(`/`, TokenSlash),
	NewRule(`\^`, TokenCaret),
	NewRule(`_`, TokenUnderscore),
	NewRule(`!`, TokenBang),
	NewRule(`'`, TokenPrimeMark),
	NewRule(`,`, TokenComma),
	NewRule(`\|`, TokenPipe),
	NewRule(`&`, TokenAmp),
	NewRule(`\(`, TokenLParen),
	NewRule(`\)`, TokenRParen),
	NewRule(`\[`, TokenLBracket),
	NewRule(`\]`, TokenRBracket),
	NewRule(`\{`, TokenLBrace),
	NewRule(`\}`, TokenRBrace),
}

// latexOperators classifies the control sequences that lex as operator
// tokens, keyed by the spelled name without its backslash.
var latexOperators = map[string]struct {
	Kind TokenKind
	Text string
}{
	"frac":  {TokenFrac, `\frac`},
	"dfrac": {TokenFrac, `\frac`},
	"tfrac": {TokenFrac, `\frac`},
	"sqrt":  {TokenSqrt, `\sqrt`},
	"infty": {TokenInfinity, "infinity"},

	"cdot":  {TokenStar, "*"},
	"times": {TokenStar, "*"},
	"div":   {TokenSlash, "/"},

	"ne":  {TokenNe, "!="},
	"neq": {TokenNe, "!="},
	"le":  {TokenLe, "<="},
	"leq": {TokenLe, "<="},
	"ge":  {TokenGe, ">="},
	"geq": {TokenGe, ">="},
	"lt":  {TokenLt, "<"},
	"gt":  {TokenGt, ">"},

	"wedge": {TokenAnd, "and"},
	"land":  {TokenAnd, "and"},
	"vee":   {TokenOr, "or"},
	"lor":   {TokenOr, "or"},
	"neg":   {TokenNot, "not"},
	"lnot":  {TokenNot, "not"},

	"in":        {TokenIn, "in"},
	"notin":     {TokenNotIn, "notin"},
	"ni":        {TokenNi, "ni"},
	"subset":    {TokenSubset, "subset"},
	"subseteq":  {TokenSubset, "subset"},
	"nsubseteq": {TokenNotSubset, "notsubset"},
	"supset":    {TokenSuperset, "superset"},
	"supseteq":  {TokenSuperset, "superset"},
	"nsupseteq": {TokenNotSuperset, "notsuperset"},
	"cup":       {TokenUnion, "union"},
	"cap":       {TokenIntersect, "intersect"},
	"mid":       {TokenPipe, "|"},
}

// latexGreek names the Greek-letter control sequences lexed as indivisible
// identifiers.
var latexGreek = stringSet([]string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi", "rho",
	"sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
	"varepsilon", "vartheta", "varsigma", "varphi", "varrho", "varpi",
	"Gamma", "Delta", "Theta", "Lambda", "Xi", "Pi", "Sigma", "Upsilon",
	"Phi", "Psi", "Omega",
})

func resolveCommand(text string) (TokenKind, string) {
	name := text[1:]
	if op, ok := latexOperators[name]; ok {
		return op.Kind, op.Text
	}
	if latexGreek[name] {
		return TokenVarMulti, text
	}
	return TokenLatexCommand, text
}

// matrixEnvs maps the accepted matrix environments. All three build the same
// tree; the delimiters are presentation only.
var matrixEnvs = map[string]bool{
	"matrix":  true,
	"pmatrix": true,
	"bmatrix": true,
}

type latexDialect struct{}

func (d latexDialect) primary(p *Parser) (*ast.Node, bool, error) {
	switch p.cur.Kind {
	case TokenFrac:
		n, err := d.parseFrac(p)
		return n, true, err
	case TokenSqrt:
		n, err := d.parseSqrt(p)
		return n, true, err
	case TokenBeginEnv:
		n, err := d.parseEnvironment(p)
		return n, true, err
	case TokenSetLBrace:
		n, err := p.parseSetGroup(TokenSetRBrace)
		return n, true, err
	case TokenLBrace:
		n, err := d.parseBraceGroup(p)
		return n, true, err
	case TokenLatexCommand:
		n, err := d.parseCommand(p)
		return n, true, err
	}
	return nil, false, nil
}

func (latexDialect) startsFactor(kind TokenKind) bool {
	switch kind {
	case TokenFrac, TokenSqrt, TokenBeginEnv, TokenSetLBrace, TokenLBrace, TokenLatexCommand:
		return true
	}
	return false
}

func (latexDialect) symbolName(text string) string {
	if name, ok := greekGlyphNames[text]; ok {
		return name
	}
	if rest, ok := strings.CutPrefix(text, `\var{`); ok {
		return strings.TrimSuffix(rest, "}")
	}
	return strings.TrimPrefix(text, `\`)
}

// parseGroupArg parses one macro argument: a braced statement, a single
// digit as in \frac12, or a single base factor. The number rule lexes "12"
// as one token, so an unbraced numeric argument is cut back to its first
// digit and the rest is pushed onto the tokenizer again.
func (d latexDialect) parseGroupArg(p *Parser) (*ast.Node, error) {
	if p.cur.Kind == TokenNumber && len(p.cur.Text) > 1 && p.cur.Text[0] >= '0' && p.cur.Text[0] <= '9' {
		arg := ast.Number(float64(p.cur.Text[0] - '0'))
		p.tok.Unput(p.cur.Text[1:])
		if err := p.advance(); err != nil {
			return nil, err
		}
		return arg, nil
	}
	if p.cur.Kind != TokenLBrace {
		return p.parseBaseFactor()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return n, nil
}

func (d latexDialect) parseFrac(p *Parser) (*ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	num, err := d.parseGroupArg(p)
	if err != nil {
		return nil, err
	}
	den, err := d.parseGroupArg(p)
	if err != nil {
		return nil, err
	}
	return ast.MustApply(ast.TagDiv, num, den), nil
}

// parseSqrt parses \sqrt{a} into an application of sqrt, and the indexed
// form \sqrt[n]{a} into a^(1/n).
func (d latexDialect) parseSqrt(p *Parser) (*ast.Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var index *ast.Node
	if p.cur.Kind == TokenLBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		idx, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRBracket); err != nil {
			return nil, err
		}
		index = idx
	}
	arg, err := d.parseGroupArg(p)
	if err != nil {
		return nil, err
	}
	if index == nil {
		return ast.MustApply(ast.TagApply, ast.Symbol("sqrt"), arg), nil
	}
	exp := ast.MustApply(ast.TagDiv, ast.Number(1), index)
	return ast.MustApply(ast.TagPow, arg, exp), nil
}

// parseBraceGroup parses a bare {...} group. Like parentheses, a single
// element unwraps and a comma list builds a tuple.
func (d latexDialect) parseBraceGroup(p *Parser) (*ast.Node, error) {
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
	if err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return ast.MustApply(ast.TagTuple, items...), nil
}

// parseCommand resolves a control sequence against the configured
// vocabulary: function names parse their application forms, allowed bare
// commands become symbols, anything else is unknown.
func (d latexDialect) parseCommand(p *Parser) (*ast.Node, error) {
	tok := p.cur
	name := strings.TrimPrefix(tok.Text, `\`)
	switch {
	case p.cfg.applied[name] || p.cfg.bare[name]:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseFunction(name)
	case p.cfg.commands[name]:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.Symbol(name), nil
	}
	return nil, &UnknownIdentifierError{Name: tok.Text, Pos: tok.Pos}
}

func envName(text string) string {
	open := strings.IndexByte(text, '{')
	return strings.TrimSuffix(text[open+1:], "}")
}

// parseEnvironment parses a matrix environment. Cells separate on "&", rows
// on "\\"; a separator with nothing before it yields a zero cell. The body
// must be rectangular and the closing environment name must match.
func (d latexDialect) parseEnvironment(p *Parser) (*ast.Node, error) {
	begin := p.cur
	env := envName(begin.Text)
	if !matrixEnvs[env] {
		return nil, &UnknownIdentifierError{Name: env, Pos: begin.Pos}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var rows [][]*ast.Node
	var row []*ast.Node
	for {
		var cell *ast.Node
		switch p.cur.Kind {
		case TokenAmp, TokenRowSep, TokenEndEnv:
			cell = ast.Number(0)
		default:
			c, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			cell = c
		}
		row = append(row, cell)
		switch p.cur.Kind {
		case TokenAmp:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenRowSep:
			rows = append(rows, row)
			row = nil
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenEndEnv:
			rows = append(rows, row)
			end := p.cur
			if envName(end.Text) != env {
				return nil, &MalformedEnvironmentError{Env: env, Pos: end.Pos}
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return buildMatrix(env, begin.Pos, rows)
		default:
			return nil, &MalformedEnvironmentError{Env: env, Pos: p.cur.Pos}
		}
	}
}

func buildMatrix(env string, pos int, rows [][]*ast.Node) (*ast.Node, error) {
	cols := len(rows[0])
	cells := make([]*ast.Node, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, &MalformedEnvironmentError{Env: env, Pos: pos}
		}
		cells = append(cells, row...)
	}
	m, err := ast.Matrix(len(rows), cols, cells)
	if err != nil {
		return nil, &MalformedEnvironmentError{Env: env, Pos: pos}
	}
	return m, nil
}

// NewLaTeXParser builds a parser for LaTeX notation.
func NewLaTeXParser(opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		cfg:     cfg,
		dialect: latexDialect{},
		tok:     NewTokenizer(latexRules, latexWhitespace),
	}
}
