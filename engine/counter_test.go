package engine

import (
	"testing"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/stretchr/testify/require"
)

func TestEncodeAtMostK_Exact(t *testing.T) {
	eng := Default()

	cases := []struct {
		name string
		lits []cnf.Literal
		k    int64
	}{
		{"AtMostOneOfThree", []cnf.Literal{1, 2, 3}, 1},
		{"AtMostTwoOfFour", []cnf.Literal{1, 2, 3, 4}, 2},
		{"AtMostOneOfTwo", []cnf.Literal{1, 2}, 1},
		{"MixedPolarity", []cnf.Literal{1, -2, 3}, 1},
		{"AtMostThreeOfFive", []cnf.Literal{1, 2, 3, 4, 5}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			numOrig := len(tc.lits)
			firstAux := cnf.Variable(numOrig + 1)

			f, err := eng.EncodeAtMostK(tc.lits, tc.k, firstAux)
			require.NoError(t, err)
			require.GreaterOrEqual(t, f.NextFreeVar, firstAux)

			requireExactEncoding(t, f, numOrig, func(assignment uint32) bool {
				return countTrue(tc.lits, assignment) <= tc.k
			})
		})
	}
}

func TestEncodeAtMostK_Trivial(t *testing.T) {
	eng := Default()
	lits := []cnf.Literal{1, 2, 3}

	t.Run("Negative bound is unsatisfiable", func(t *testing.T) {
		f, err := eng.EncodeAtMostK(lits, -1, 4)
		require.NoError(t, err)
		require.Equal(t, []cnf.Clause{{}}, f.Clauses)
		require.Equal(t, cnf.Variable(4), f.NextFreeVar)
	})

	t.Run("Bound at size is a tautology", func(t *testing.T) {
		f, err := eng.EncodeAtMostK(lits, 3, 4)
		require.NoError(t, err)
		require.Empty(t, f.Clauses)
		require.Equal(t, cnf.Variable(4), f.NextFreeVar)
	})

	t.Run("Zero bound forces all false", func(t *testing.T) {
		f, err := eng.EncodeAtMostK(lits, 0, 4)
		require.NoError(t, err)
		require.Equal(t, []cnf.Clause{{-1}, {-2}, {-3}}, f.Clauses)
		require.Equal(t, cnf.Variable(4), f.NextFreeVar)
	})
}

func TestEncodeAtLeastK_Exact(t *testing.T) {
	eng := Default()

	cases := []struct {
		name string
		lits []cnf.Literal
		k    int64
	}{
		{"AtLeastOneOfThree", []cnf.Literal{1, 2, 3}, 1},
		{"AtLeastTwoOfFour", []cnf.Literal{1, 2, 3, 4}, 2},
		{"MixedPolarity", []cnf.Literal{-1, 2, -3}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			numOrig := len(tc.lits)
			firstAux := cnf.Variable(numOrig + 1)

			f, err := eng.EncodeAtLeastK(tc.lits, tc.k, firstAux)
			require.NoError(t, err)
			require.GreaterOrEqual(t, f.NextFreeVar, firstAux)

			requireExactEncoding(t, f, numOrig, func(assignment uint32) bool {
				return countTrue(tc.lits, assignment) >= tc.k
			})
		})
	}
}

func TestEncodeAtLeastK_Trivial(t *testing.T) {
	eng := Default()
	lits := []cnf.Literal{1, 2, 3}

	t.Run("Zero bound is a tautology", func(t *testing.T) {
		f, err := eng.EncodeAtLeastK(lits, 0, 4)
		require.NoError(t, err)
		require.Empty(t, f.Clauses)
	})

	t.Run("Bound past size is unsatisfiable", func(t *testing.T) {
		f, err := eng.EncodeAtLeastK(lits, 4, 4)
		require.NoError(t, err)
		require.Equal(t, []cnf.Clause{{}}, f.Clauses)
	})

	t.Run("Bound at size forces all true", func(t *testing.T) {
		f, err := eng.EncodeAtLeastK(lits, 3, 4)
		require.NoError(t, err)
		require.Equal(t, []cnf.Clause{{1}, {2}, {3}}, f.Clauses)
	})
}
