package format

import "github.com/XimeraProject/math-convert/ast"

// textOpsASCII and textOpsUnicode spell the infix operators of the text
// notation. Both spellings re-lex to the same token kind.
var textOpsASCII = map[ast.Tag]string{
	ast.TagEq:          "=",
	ast.TagNe:          "!=",
	ast.TagLt:          "<",
	ast.TagGt:          ">",
	ast.TagLe:          "<=",
	ast.TagGe:          ">=",
	ast.TagAnd:         "and",
	ast.TagOr:          "or",
	ast.TagIn:          "in",
	ast.TagNotIn:       "notin",
	ast.TagNi:          "ni",
	ast.TagNotNi:       "notni",
	ast.TagSubset:      "subset",
	ast.TagNotSubset:   "notsubset",
	ast.TagSuperset:    "superset",
	ast.TagNotSuperset: "notsuperset",
	ast.TagUnion:       "union",
	ast.TagIntersect:   "intersect",
}

var textOpsUnicode = map[ast.Tag]string{
	ast.TagEq:          "=",
	ast.TagNe:          "≠",
	ast.TagLt:          "<",
	ast.TagGt:          ">",
	ast.TagLe:          "≤",
	ast.TagGe:          "≥",
	ast.TagAnd:         "and",
	ast.TagOr:          "or",
	ast.TagIn:          "∈",
	ast.TagNotIn:       "∉",
	ast.TagNi:          "∋",
	ast.TagNotNi:       "∌",
	ast.TagSubset:      "⊂",
	ast.TagNotSubset:   "⊄",
	ast.TagSuperset:    "⊃",
	ast.TagNotSuperset: "⊅",
	ast.TagUnion:       "∪",
	ast.TagIntersect:   "∩",
}

var latexOps = map[ast.Tag]string{
	ast.TagEq:          "=",
	ast.TagNe:          `\ne`,
	ast.TagLt:          "<",
	ast.TagGt:          ">",
	ast.TagLe:          `\le`,
	ast.TagGe:          `\ge`,
	ast.TagAnd:         `\wedge`,
	ast.TagOr:          `\vee`,
	ast.TagIn:          `\in`,
	ast.TagNotIn:       `\notin`,
	ast.TagNi:          `\ni`,
	ast.TagNotNi:       `\not\ni`,
	ast.TagSubset:      `\subset`,
	ast.TagNotSubset:   `\not\subset`,
	ast.TagSuperset:    `\supset`,
	ast.TagNotSuperset: `\not\supset`,
	ast.TagUnion:       `\cup`,
	ast.TagIntersect:   `\cap`,
}

// greekGlyphs maps spelled-out Greek names onto their glyphs, used by the
// text printer in Unicode mode. The LaTeX printer prefixes the same names
// with a backslash instead.
var greekGlyphs = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ",
	"nu": "ν", "xi": "ξ", "omicron": "ο", "pi": "π",
	"rho": "ρ", "sigma": "σ", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
	"Xi": "Ξ", "Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ",
	"Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",
}

// greekName reports whether name spells a Greek letter, including the
// variant forms that have no single glyph entry above.
func greekName(name string) bool {
	if _, ok := greekGlyphs[name]; ok {
		return true
	}
	switch name {
	case "varepsilon", "vartheta", "varpi", "varrho", "varsigma", "varphi":
		return true
	}
	return false
}
