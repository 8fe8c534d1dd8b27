package engine

import (
	"testing"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/stretchr/testify/require"
)

// evalClause reports whether the clause holds under the assignment, where
// bit v-1 of assignment is the truth value of variable v.
func evalClause(clause cnf.Clause, assignment uint32) bool {
	for _, lit := range clause {
		v := lit
		if v < 0 {
			v = -v
		}
		truth := assignment&(1<<uint(v-1)) != 0
		if (lit > 0) == truth {
			return true
		}
	}

	return false
}

func evalFormula(f cnf.Formula, assignment uint32) bool {
	for _, clause := range f.Clauses {
		if !evalClause(clause, assignment) {
			return false
		}
	}

	return true
}

// projectedModels enumerates every assignment over all variables of the
// formula (original and auxiliary) and collects the satisfying ones
// projected onto the first numOrig variables. This is the ground truth for
// checking that an encoding is exact: the projection must equal the set of
// assignments satisfying the source constraint.
func projectedModels(t *testing.T, f cnf.Formula, numOrig int) map[uint32]bool {
	t.Helper()

	totalVars := int(f.MaxVar())
	if f.NextFreeVar > 0 && int(f.NextFreeVar-1) > totalVars {
		totalVars = int(f.NextFreeVar - 1)
	}
	if totalVars < numOrig {
		totalVars = numOrig
	}
	require.LessOrEqual(t, totalVars, 20, "instance too large for exhaustive check")

	models := make(map[uint32]bool)
	mask := uint32(1)<<uint(numOrig) - 1
	for assignment := uint32(0); assignment < 1<<uint(totalVars); assignment++ {
		if evalFormula(f, assignment) {
			models[assignment&mask] = true
		}
	}

	return models
}

// requireExactEncoding checks that the formula's projection onto the first
// numOrig variables is exactly the set of assignments where holds is true.
func requireExactEncoding(t *testing.T, f cnf.Formula, numOrig int, holds func(assignment uint32) bool) {
	t.Helper()

	models := projectedModels(t, f, numOrig)
	for assignment := uint32(0); assignment < 1<<uint(numOrig); assignment++ {
		if holds(assignment) {
			require.True(t, models[assignment],
				"assignment %0*b should be allowed", numOrig, assignment)
		} else {
			require.False(t, models[assignment],
				"assignment %0*b should be forbidden", numOrig, assignment)
		}
	}
}

// popcount of the first numOrig assignment bits restricted to the given
// literals (which may be negated).
func countTrue(lits []cnf.Literal, assignment uint32) int64 {
	var n int64
	for _, lit := range lits {
		v := lit
		if v < 0 {
			v = -v
		}
		truth := assignment&(1<<uint(v-1)) != 0
		if (lit > 0) == truth {
			n++
		}
	}

	return n
}

func weightedSum(weights []cnf.Weight, lits []cnf.Literal, assignment uint32) int64 {
	var sum int64
	for i, lit := range lits {
		v := lit
		if v < 0 {
			v = -v
		}
		truth := assignment&(1<<uint(v-1)) != 0
		if (lit > 0) == truth {
			sum += weights[i]
		}
	}

	return sum
}

func TestDefault_WatermarkMonotonicity(t *testing.T) {
	eng := Default()
	lits := []cnf.Literal{1, 2, 3, 4}
	weights := []cnf.Weight{2, 3, 5, 7}
	const firstAux = cnf.Variable(5)

	type call struct {
		name string
		run  func() (cnf.Formula, error)
	}

	calls := []call{
		{"AtMostK", func() (cnf.Formula, error) { return eng.EncodeAtMostK(lits, 2, firstAux) }},
		{"AtLeastK", func() (cnf.Formula, error) { return eng.EncodeAtLeastK(lits, 2, firstAux) }},
		{"Leq", func() (cnf.Formula, error) { return eng.EncodeLeq(weights, lits, 9, firstAux) }},
		{"Geq", func() (cnf.Formula, error) { return eng.EncodeGeq(weights, lits, 9, firstAux) }},
		{"Both", func() (cnf.Formula, error) { return eng.EncodeBoth(weights, lits, 12, 5, firstAux) }},
	}

	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			f, err := c.run()
			require.NoError(t, err)
			require.GreaterOrEqual(t, f.NextFreeVar, firstAux)
			require.NoError(t, f.Validate())
		})
	}
}
