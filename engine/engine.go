// Package engine defines the encoding engine facade consumed by the
// encoder handle, plus a built-in reference engine.
//
// An Engine turns one pseudo-boolean or cardinality constraint into a CNF
// formula. Each call is self-contained: the engine receives the first free
// auxiliary variable it may use and reports the next free variable after
// every auxiliary it introduced. Callers thread that watermark through
// successive calls to keep auxiliary variable ranges disjoint.
//
// External engines (e.g. bindings to PBLib-class libraries) plug in by
// implementing Engine; the marshalling layer treats every implementation
// as an opaque collaborator.
package engine

import "github.com/arloliu/pbcnf/cnf"

// Engine encodes pseudo-boolean and cardinality constraints into CNF.
//
// Contract for every method:
//   - inputs are read-only; the engine must not retain or mutate them
//   - the returned formula's NextFreeVar is >= firstFreeVar, and greater
//     than every variable referenced in the returned clauses
//   - a trivially unsatisfiable constraint is encoded as a single empty
//     clause, a trivially satisfied one as zero clauses
type Engine interface {
	// EncodeLeq encodes sum(weights[i] * literals[i]) <= leq.
	EncodeLeq(weights []cnf.Weight, literals []cnf.Literal, leq cnf.Weight, firstFreeVar cnf.Variable) (cnf.Formula, error)

	// EncodeGeq encodes sum(weights[i] * literals[i]) >= geq.
	EncodeGeq(weights []cnf.Weight, literals []cnf.Literal, geq cnf.Weight, firstFreeVar cnf.Variable) (cnf.Formula, error)

	// EncodeBoth encodes geq <= sum(weights[i] * literals[i]) <= leq.
	// The engine may share auxiliary structure between the two directions.
	EncodeBoth(weights []cnf.Weight, literals []cnf.Literal, leq, geq cnf.Weight, firstFreeVar cnf.Variable) (cnf.Formula, error)

	// EncodeAtMostK encodes "at most k of literals are true".
	EncodeAtMostK(literals []cnf.Literal, k int64, firstFreeVar cnf.Variable) (cnf.Formula, error)

	// EncodeAtLeastK encodes "at least k of literals are true".
	EncodeAtLeastK(literals []cnf.Literal, k int64, firstFreeVar cnf.Variable) (cnf.Formula, error)
}

// Default returns the built-in reference engine.
//
// Cardinality constraints use the Sinz sequential counter; weighted
// constraints use a reduced ordered BDD with one-sided Tseitin clauses.
// The engine is stateless and safe for concurrent use.
func Default() Engine {
	return builtinEngine{}
}

type builtinEngine struct{}

var _ Engine = builtinEngine{}
