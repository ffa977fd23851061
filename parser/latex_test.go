package parser

import "testing"

func TestParseLaTeX(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\frac{1}{2}`, "(/ 1 2)"},
		{`\frac 1 2`, "(/ 1 2)"},
		{`\frac1x`, "(/ 1 x)"},
		{`\frac12`, "(/ 1 2)"},
		{`\frac12x`, "(* (/ 1 2) x)"},
		{`\dfrac{a}{b}`, "(/ a b)"},
		{`\frac{x+1}{x-1}`, "(/ (+ x 1) (+ x (- 1)))"},
		{`\sqrt{x}`, "(apply sqrt x)"},
		{`\sqrt2`, "(apply sqrt 2)"},
		{`\sqrt[3]{x}`, "(^ x (/ 1 3))"},

		{`x^{n+1}`, "(^ x (+ n 1))"},
		{`x^2`, "(^ x 2)"},
		{`x_{10}`, "(_ x 10)"},
		{`x_i`, "(_ x i)"},

		{`2\cdot 3`, "(* 2 3)"},
		{`2\times x`, "(* 2 x)"},
		{`xy`, "(* x y)"},
		{`2x`, "(* 2 x)"},
		{`\frac{a}{b}c`, "(* (/ a b) c)"},
		{`a\div b`, "(/ a b)"},

		{`\sin x`, "(apply sin x)"},
		{`\sin\left(x\right)`, "(apply sin x)"},
		{`\sin^2 x`, "(^ (apply sin x) 2)"},
		{`\ln x`, "(apply ln x)"},
		{`f(x, y)`, "(apply f (tuple x y))"},

		{`\theta`, "theta"},
		{`\theta_0`, "(_ theta 0)"},
		{`\alpha\beta`, "(* alpha beta)"},
		{`\var{speed}`, "speed"},
		{`\infty`, "infinity"},
		{`\pi r^2`, "(* pi (^ r 2))"},

		{`x \le y`, "(le x y)"},
		{`x\le5`, "(le x 5)"},
		{`\sin2`, "(apply sin 2)"},
		{`x \le y < z`, "(lts (tuple x y z) (tuple false true))"},
		{`x \ne y`, "(ne x y)"},
		{`x \in A`, "(in x A)"},
		{`x \notin A`, "(notin x A)"},
		{`A \subseteq B`, "(subset A B)"},
		{`A \cup B`, "(union A B)"},
		{`x = 1 \wedge y = 2`, "(and (= x 1) (= y 2))"},
		{`\neg x = y`, "(not (= x y))"},

		{`\{1, 2\}`, "(set 1 2)"},
		{`\{x\}`, "(set x)"},
		{`{x+1}`, "(+ x 1)"},
		{`\left(1, 2\right]`, "(interval 1 2 (tuple false true))"},
		{`\left[1, 2\right]`, "(array 1 2)"},
		{`\left|x\right|`, "(apply abs x)"},

		{`\begin{pmatrix}1 & 2 \\ 3 & 4\end{pmatrix}`, "(matrix (tuple 2 2) (tuple 1 2) (tuple 3 4))"},
		{`\begin{matrix}1\end{matrix}`, "(matrix (tuple 1 1) (tuple 1))"},
		{`\begin{bmatrix}1 & \\ 3 & 4\end{bmatrix}`, "(matrix (tuple 2 2) (tuple 1 0) (tuple 3 4))"},
		{`\begin{pmatrix}x+1 & 2x \\ 0 & 1\end{pmatrix}`, "(matrix (tuple 2 2) (tuple (+ x 1) (* 2 x)) (tuple 0 1))"},
	}

	p := NewLaTeXParser()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.Convert(tt.input)
			if err != nil {
				t.Fatalf("Convert(%q): %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("Convert(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLaTeXErrors(t *testing.T) {
	tests := []struct {
		input  string
		target error
	}{
		{`\foo`, &UnknownIdentifierError{}},
		{`\begin{align}x\end{align}`, &UnknownIdentifierError{}},
		{`\begin{pmatrix}1 \\ 2 & 3\end{pmatrix}`, &MalformedEnvironmentError{}},
		{`\begin{pmatrix}1\end{bmatrix}`, &MalformedEnvironmentError{}},
		{`\frac{1}`, &UnexpectedEOFError{}},
		{`{x`, &ExpectedTokenError{}},
		{`\{1, 2}`, &ExpectedTokenError{}},
	}

	p := NewLaTeXParser()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := p.Convert(tt.input)
			if err == nil {
				t.Fatalf("Convert(%q) succeeded, want error", tt.input)
			}
			if !asTarget(err, tt.target) {
				t.Errorf("Convert(%q) error = %T %v, want %T", tt.input, err, err, tt.target)
			}
		})
	}
}

func TestParseLaTeXAllowedCommands(t *testing.T) {
	p := NewLaTeXParser(WithAllowedCommands("hbar"))
	got, err := p.Convert(`\hbar`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "hbar" {
		t.Errorf("got %s, want hbar", got)
	}
}
