package parser

import "github.com/XimeraProject/math-convert/ast"

// textRules is the plain-text rule table. Order matters: the tokenizer
// takes the first matching rule, so multi-character operators precede their
// prefixes and word operators precede the generic identifier rule.
var textRules = []Rule{
	NewRule(`(?:\d+\.\d*|\.\d+|\d+)(?:[eE][+-]?\d+)?`, TokenNumber),

	NewRuleLit(`infinity\b|oo\b|∞`, TokenInfinity, "infinity"),
	NewRule(`and\b|∧`, TokenAnd),
	NewRule(`or\b|∨`, TokenOr),
	NewRule(`not\b|¬`, TokenNot),
	NewRule(`notelementof\b|notin\b|∉`, TokenNotIn),
	NewRule(`elementof\b|in\b|∈`, TokenIn),
	NewRule(`notcontainselement\b|notni\b|∌`, TokenNotNi),
	NewRule(`containselement\b|ni\b|∋`, TokenNi),
	NewRule(`notsubset\b|⊄`, TokenNotSubset),
	NewRule(`subset\b|⊂`, TokenSubset),
	NewRule(`notsuperset\b|⊅`, TokenNotSuperset),
	NewRule(`superset\b|⊃`, TokenSuperset),
	NewRule(`union\b|∪`, TokenUnion),
	NewRule(`intersect\b|∩`, TokenIntersect),

	NewRule(`[a-zA-Z][a-zA-Z0-9]*`, TokenVar),
	NewRule(`[\x{0391}-\x{03C9}]`, TokenVarMulti),

	NewRuleLit(`\*\*`, TokenCaret, "^"),
	NewRuleLit(`!=|≠`, TokenNe, "!="),
	NewRuleLit(`<=|≤`, TokenLe, "<="),
	NewRuleLit(`>=|≥`, TokenGe, ">="),
	NewRule(`<`, TokenLt),
	NewRule(`>`, TokenGt),
	NewRule(`=`, TokenEq),
	NewRule(`\+`, TokenPlus),
	NewRuleLit(`-|−`, TokenMinus, "-"),
	NewRuleLit(`\*|·|×`, TokenStar, "*"),
	NewRule(`/`, TokenSlash),
	NewRule(`\^`, TokenCaret),
	NewRule(`_`, TokenUnderscore),
	NewRule(`!`, TokenBang),
	NewRule(`'`, TokenPrimeMark),
	NewRule(`,`, TokenComma),
	NewRule(`\|`, TokenPipe),
	NewRule(`\(`, TokenLParen),
	NewRule(`\)`, TokenRParen),
	NewRule(`\[`, TokenLBracket),
	NewRule(`\]`, TokenRBracket),
	NewRule(`\{`, TokenLBrace),
	NewRule(`\}`, TokenRBrace),
}

// greekGlyphNames maps Greek letters lexed as single-glyph identifiers to
// their spelled-out symbol names.
var greekGlyphNames = map[string]string{
	"α": "alpha", "β": "beta", "γ": "gamma", "δ": "delta",
	"ε": "epsilon", "ζ": "zeta", "η": "eta", "θ": "theta",
	"ι": "iota", "κ": "kappa", "λ": "lambda", "μ": "mu",
	"ν": "nu", "ξ": "xi", "ο": "omicron", "π": "pi",
	"ρ": "rho", "σ": "sigma", "τ": "tau", "υ": "upsilon",
	"φ": "phi", "χ": "chi", "ψ": "psi", "ω": "omega",
	"Γ": "Gamma", "Δ": "Delta", "Θ": "Theta", "Λ": "Lambda",
	"Ξ": "Xi", "Π": "Pi", "Σ": "Sigma", "Υ": "Upsilon",
	"Φ": "Phi", "Ψ": "Psi", "Ω": "Omega",
}

// greekNames marks spelled-out Greek letters so the text notation treats
// them as indivisible identifiers rather than splitting them letter by
// letter.
var greekNames = func() map[string]bool {
	set := make(map[string]bool, 2*len(greekGlyphNames))
	for _, name := range greekGlyphNames {
		set[name] = true
	}
	for extra := range map[string]bool{
		"alpha": true, "Alpha": true, "Beta": true, "Epsilon": true,
		"Zeta": true, "Eta": true, "Iota": true, "Kappa": true,
		"Mu": true, "Nu": true, "Omicron": true, "Rho": true,
		"Sigma": true, "Tau": true, "Chi": true, "varepsilon": true,
		"vartheta": true, "varpi": true, "varrho": true,
		"varsigma": true, "varphi": true,
	} {
		set[extra] = true
	}
	return set
}()

type textDialect struct{}

func (textDialect) primary(p *Parser) (*ast.Node, bool, error) {
	if p.cur.Kind != TokenLBrace {
		return nil, false, nil
	}
	n, err := p.parseSetGroup(TokenRBrace)
	return n, true, err
}

func (textDialect) startsFactor(kind TokenKind) bool {
	return kind == TokenLBrace
}

func (textDialect) symbolName(text string) string {
	if name, ok := greekGlyphNames[text]; ok {
		return name
	}
	return text
}

// NewTextParser builds a parser for the plain-text notation.
func NewTextParser(opts ...Option) *Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for name := range greekNames {
		cfg.unsplit[name] = true
	}
	return &Parser{
		cfg:     cfg,
		dialect: textDialect{},
		tok:     NewTokenizer(textRules, `\s`),
	}
}
