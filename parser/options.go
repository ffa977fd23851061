package parser

// DefaultAppliedFunctions lists the function names that must take an
// argument. DefaultBareFunctions lists names that may be applied or used as
// ordinary variables.
var (
	DefaultAppliedFunctions = []string{
		"sin", "cos", "tan", "sec", "csc", "cot",
		"asin", "acos", "atan", "arcsin", "arccos", "arctan",
		"sinh", "cosh", "tanh",
		"log", "ln", "exp", "sqrt", "abs", "floor", "ceil", "gamma", "factorial",
	}
	DefaultBareFunctions = []string{"f", "g", "h"}
)

// DefaultMaxDepth bounds grammar recursion; inputs nested deeper fail with a
// DepthError instead of overflowing the stack.
const DefaultMaxDepth = 256

type config struct {
	applied         map[string]bool
	bare            map[string]bool
	simplifiedApply bool
	splitSymbols    bool
	unsplit         map[string]bool
	commands        map[string]bool
	maxDepth        int
}

func defaultConfig() config {
	return config{
		applied:         stringSet(DefaultAppliedFunctions),
		bare:            stringSet(DefaultBareFunctions),
		simplifiedApply: true,
		splitSymbols:    true,
		unsplit:         map[string]bool{},
		commands:        map[string]bool{},
		maxDepth:        DefaultMaxDepth,
	}
}

func stringSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

type Option func(*config)

// WithAppliedFunctions replaces the set of function names that must take an
// argument.
func WithAppliedFunctions(names ...string) Option {
	return func(c *config) {
		c.applied = stringSet(names)
	}
}

// WithBareFunctions replaces the set of names that may be applied or act as
// ordinary variables.
func WithBareFunctions(names ...string) Option {
	return func(c *config) {
		c.bare = stringSet(names)
	}
}

// WithSimplifiedApply controls whether an applied function accepts its
// argument by juxtaposition, as in "sin x". When disabled, an applied
// function name not followed by "(" is a parse error.
func WithSimplifiedApply(enabled bool) Option {
	return func(c *config) {
		c.simplifiedApply = enabled
	}
}

// WithSymbolSplitting controls whether a multi-letter identifier such as
// "xyz" is re-lexed into the product x*y*z.
func WithSymbolSplitting(enabled bool) Option {
	return func(c *config) {
		c.splitSymbols = enabled
	}
}

// WithUnsplitExceptions names identifiers exempt from symbol splitting.
func WithUnsplitExceptions(names ...string) Option {
	return func(c *config) {
		c.unsplit = stringSet(names)
	}
}

// WithAllowedCommands names bare LaTeX commands accepted as plain symbols in
// addition to the built-in vocabulary.
func WithAllowedCommands(names ...string) Option {
	return func(c *config) {
		c.commands = stringSet(names)
	}
}

// WithMaxDepth overrides the recursion budget.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}
