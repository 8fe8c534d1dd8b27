package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/errs"
)

// EncodeLeq encodes sum(weights[i] * literals[i]) <= leq through a reduced
// ordered BDD over the normalized constraint, with one auxiliary variable
// per internal node and one-sided Tseitin clauses asserting the root.
func (builtinEngine) EncodeLeq(weights []cnf.Weight, literals []cnf.Literal, leq cnf.Weight, firstFreeVar cnf.Variable) (cnf.Formula, error) {
	return encodeLeqBDD(weights, literals, leq, firstFreeVar)
}

// EncodeGeq encodes sum(weights[i] * literals[i]) >= geq by the complement
// transform: the constraint holds exactly when
// sum(weights[i] * !literals[i]) <= sum(weights) - geq.
func (builtinEngine) EncodeGeq(weights []cnf.Weight, literals []cnf.Literal, geq cnf.Weight, firstFreeVar cnf.Variable) (cnf.Formula, error) {
	total, err := sumWeights(weights)
	if err != nil {
		return cnf.Formula{}, err
	}

	bound, ok := subInt64(total, geq)
	if !ok {
		return cnf.Formula{}, fmt.Errorf("%w: bound %d against weight sum %d",
			errs.ErrWeightOverflow, geq, total)
	}

	return encodeLeqBDD(weights, cnf.NegateAll(literals), bound, firstFreeVar)
}

// EncodeBoth encodes geq <= sum(weights[i] * literals[i]) <= leq as the
// conjunction of the two one-sided encodings, threading the watermark so
// their auxiliary variable ranges stay disjoint.
func (e builtinEngine) EncodeBoth(weights []cnf.Weight, literals []cnf.Literal, leq, geq cnf.Weight, firstFreeVar cnf.Variable) (cnf.Formula, error) {
	upper, err := e.EncodeLeq(weights, literals, leq, firstFreeVar)
	if err != nil {
		return cnf.Formula{}, err
	}

	lower, err := e.EncodeGeq(weights, literals, geq, upper.NextFreeVar)
	if err != nil {
		return cnf.Formula{}, err
	}

	return cnf.Formula{
		Clauses:     append(upper.Clauses, lower.Clauses...),
		NextFreeVar: lower.NextFreeVar,
	}, nil
}

// bddTerm is one normalized constraint term: a strictly positive weight on
// a (possibly flipped) literal.
type bddTerm struct {
	weight cnf.Weight
	lit    cnf.Literal
}

// bddKey memoizes BDD nodes on (term index, remaining bound). Bounds are
// clamped against the suffix sums before lookup, so equivalent subproblems
// share one node.
type bddKey struct {
	idx   int
	bound cnf.Weight
}

// bddRef identifies a BDD node: refFalse, refTrue, or the auxiliary
// variable of an internal node.
type bddRef int64

const (
	refFalse bddRef = -1
	refTrue  bddRef = -2
)

type bddBuilder struct {
	terms   []bddTerm
	suffix  []cnf.Weight // suffix[i] = sum of term weights i..n-1
	memo    map[bddKey]bddRef
	clauses []cnf.Clause
	next    cnf.Variable
}

func encodeLeqBDD(weights []cnf.Weight, literals []cnf.Literal, leq cnf.Weight, firstFreeVar cnf.Variable) (cnf.Formula, error) {
	terms, bound, err := normalizeTerms(weights, literals, leq)
	if err != nil {
		return cnf.Formula{}, err
	}

	if bound < 0 {
		return unsatFormula(firstFreeVar), nil
	}

	// Descending weights maximize node sharing in the BDD.
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].weight > terms[j].weight })

	n := len(terms)
	suffix := make([]cnf.Weight, n+1)
	for i := n - 1; i >= 0; i-- {
		// Safe: normalizeTerms verified the full sum fits int64.
		suffix[i] = suffix[i+1] + terms[i].weight
	}

	b := &bddBuilder{
		terms:  terms,
		suffix: suffix,
		memo:   make(map[bddKey]bddRef),
		next:   firstFreeVar,
	}

	root, err := b.build(0, bound)
	if err != nil {
		return cnf.Formula{}, err
	}

	switch root {
	case refTrue:
		return cnf.Formula{NextFreeVar: b.next}, nil
	case refFalse:
		return unsatFormula(firstFreeVar), nil
	}

	b.clauses = append(b.clauses, cnf.Clause{cnf.Literal(root)})

	return cnf.Formula{Clauses: b.clauses, NextFreeVar: b.next}, nil
}

// build returns the node deciding sum of terms idx..n-1 <= bound.
func (b *bddBuilder) build(idx int, bound cnf.Weight) (bddRef, error) {
	if bound < 0 {
		return refFalse, nil
	}
	if b.suffix[idx] <= bound {
		return refTrue, nil
	}

	key := bddKey{idx: idx, bound: bound}
	if ref, ok := b.memo[key]; ok {
		return ref, nil
	}

	term := b.terms[idx]
	hi, err := b.build(idx+1, bound-term.weight)
	if err != nil {
		return refFalse, err
	}
	lo, err := b.build(idx+1, bound)
	if err != nil {
		return refFalse, err
	}

	if hi == lo {
		b.memo[key] = hi
		return hi, nil
	}

	if int64(b.next) >= math.MaxInt32 {
		return refFalse, fmt.Errorf("%w: auxiliary variables exhausted at %d",
			errs.ErrFormulaTooLarge, b.next)
	}
	v := cnf.Literal(b.next)
	b.next++

	// One-sided Tseitin: v implies the decision below it. Asserting the
	// root as a unit clause then forces every path to a true terminal.
	x := term.lit
	switch hi {
	case refFalse:
		b.clauses = append(b.clauses, cnf.Clause{-v, -x})
	case refTrue:
		// No constraint on the high branch.
	default:
		b.clauses = append(b.clauses, cnf.Clause{-v, -x, cnf.Literal(hi)})
	}
	switch lo {
	case refFalse:
		b.clauses = append(b.clauses, cnf.Clause{-v, x})
	case refTrue:
		// No constraint on the low branch.
	default:
		b.clauses = append(b.clauses, cnf.Clause{-v, x, cnf.Literal(lo)})
	}

	ref := bddRef(v)
	b.memo[key] = ref

	return ref, nil
}

// normalizeTerms rewrites the constraint so every weight is strictly
// positive: a term w*lit with w < 0 becomes (-w)*(-lit) and the bound
// grows by -w; zero-weight terms are dropped. The returned bound is the
// normalized right-hand side.
func normalizeTerms(weights []cnf.Weight, literals []cnf.Literal, bound cnf.Weight) ([]bddTerm, cnf.Weight, error) {
	terms := make([]bddTerm, 0, len(weights))
	var total cnf.Weight

	for i, w := range weights {
		lit := literals[i]
		switch {
		case w == 0:
			continue
		case w < 0:
			nw, ok := negInt64(w)
			if !ok {
				return nil, 0, fmt.Errorf("%w: weight %d", errs.ErrWeightOverflow, w)
			}
			adjusted, ok := addInt64(bound, nw)
			if !ok {
				return nil, 0, fmt.Errorf("%w: bound adjustment for weight %d", errs.ErrWeightOverflow, w)
			}
			bound = adjusted
			w, lit = nw, -lit
		}

		sum, ok := addInt64(total, w)
		if !ok {
			return nil, 0, errs.ErrWeightOverflow
		}
		total = sum

		terms = append(terms, bddTerm{weight: w, lit: lit})
	}

	return terms, bound, nil
}

// sumWeights returns the signed sum of the weights, failing on int64
// overflow.
func sumWeights(weights []cnf.Weight) (cnf.Weight, error) {
	var total cnf.Weight
	for _, w := range weights {
		sum, ok := addInt64(total, w)
		if !ok {
			return 0, errs.ErrWeightOverflow
		}
		total = sum
	}

	return total, nil
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}

	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	if b == -b && b != 0 { // b == math.MinInt64
		return 0, false
	}

	return addInt64(a, -b)
}

func negInt64(a int64) (int64, bool) {
	if a == -a && a != 0 { // a == math.MinInt64
		return 0, false
	}

	return -a, true
}
