// Package builder generates deterministic edge lists for core.Graph:
// paths, rings, complete digraphs and Erdős–Rényi-like random graphs.
//
// Builders exist so that the solver can be checked against brute force on
// many small graphs without hand-writing each one:
//
//	g, err := builder.Build(6,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
//	    builder.Path(), builder.RandomSparse(0.3),
//	)
//
// Constructors run in argument order and their edges are concatenated, so
// the resulting neighbor order is reproducible for a fixed seed.
//
// Components:
//
//   - Constructor: func(n, cfg) ([]core.Edge, error).
//   - BuilderOption: WithSeed, WithRand, WithWeightFn, WithBidirectional,
//     WithLoops, WithLabelScheme.
//   - WeightFn: ConstantWeightFn, UniformWeightFn.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed; core construction errors are passed through wrapped.
// Option constructors panic on meaningless input; constructors never panic.
package builder
