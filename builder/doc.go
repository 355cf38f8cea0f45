// Package builder provides deterministic, functional-options-style graph
// constructors for fixtures, benchmarks and the `lvlpath gen` command.
//
// A Network wraps core.Graph[string] with a name → vertex index so that
// constructors composed in one BuildGraph call share vertices by name.
//
// Constructors:
//
//	Path(n)            0–1–…–(n-1)
//	Cycle(n)           Path plus (n-1)–0
//	Star(n)            center 0 joined to 1..n-1
//	Complete(n)        every pair
//	Grid(rows, cols)   4-neighborhood lattice, names "r,c"
//	RandomSparse(n, p) each pair independently with probability p
//
// Options:
//
//	WithIDScheme(fn)   vertex naming (DefaultIDFn, ExcelColumnIDFn, PrefixIDFn)
//	WithSeed(s)        deterministic RNG
//	WithRand(r)        caller-owned RNG
//	WithWeightFn(fn)   edge weights (DefaultWeightFn, ConstantWeightFn,
//	                   UniformWeightFn, IntWeightFn)
//
// Errors (wrapped with the method tag, branch with errors.Is):
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed
//
// Example:
//
//	net, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
//	    builder.RandomSparse(8, 0.4),
//	)
package builder
