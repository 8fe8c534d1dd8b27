package engine

import (
	"fmt"
	"math"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/errs"
)

// EncodeAtMostK encodes "at most k of literals are true" with the Sinz
// sequential counter: auxiliary register s(i,j) means "at least j of the
// first i literals are true". Uses (n-1)*k auxiliary variables and O(n*k)
// clauses.
func (builtinEngine) EncodeAtMostK(literals []cnf.Literal, k int64, firstFreeVar cnf.Variable) (cnf.Formula, error) {
	n := len(literals)

	switch {
	case k < 0:
		// No assignment satisfies the bound.
		return unsatFormula(firstFreeVar), nil
	case int64(n) <= k:
		// Every assignment satisfies the bound.
		return cnf.Formula{NextFreeVar: firstFreeVar}, nil
	case k == 0:
		clauses := make([]cnf.Clause, n)
		for i, lit := range literals {
			clauses[i] = cnf.Clause{-lit}
		}

		return cnf.Formula{Clauses: clauses, NextFreeVar: firstFreeVar}, nil
	}

	// Here 1 <= k < n, so n >= 2 and the register block is non-empty.
	kk := int(k)
	numAux := int64(n-1) * k
	if int64(firstFreeVar)+numAux > math.MaxInt32 {
		return cnf.Formula{}, fmt.Errorf("%w: %d auxiliary variables from %d",
			errs.ErrFormulaTooLarge, numAux, firstFreeVar)
	}

	// reg(i, j) is the variable of register s(i,j), 1-based in both axes.
	reg := func(i, j int) cnf.Literal {
		return firstFreeVar + cnf.Variable((i-1)*kk+(j-1))
	}

	clauses := make([]cnf.Clause, 0, 2*n*kk)

	clauses = append(clauses, cnf.Clause{-literals[0], reg(1, 1)})
	for j := 2; j <= kk; j++ {
		clauses = append(clauses, cnf.Clause{-reg(1, j)})
	}

	for i := 2; i <= n-1; i++ {
		x := literals[i-1]
		clauses = append(clauses,
			cnf.Clause{-x, reg(i, 1)},
			cnf.Clause{-reg(i-1, 1), reg(i, 1)},
		)
		for j := 2; j <= kk; j++ {
			clauses = append(clauses,
				cnf.Clause{-x, -reg(i-1, j-1), reg(i, j)},
				cnf.Clause{-reg(i-1, j), reg(i, j)},
			)
		}
		clauses = append(clauses, cnf.Clause{-x, -reg(i-1, kk)})
	}

	clauses = append(clauses, cnf.Clause{-literals[n-1], -reg(n-1, kk)})

	return cnf.Formula{
		Clauses:     clauses,
		NextFreeVar: firstFreeVar + cnf.Variable(int(numAux)),
	}, nil
}

// EncodeAtLeastK encodes "at least k of literals are true" as "at most n-k
// of the negated literals are true".
func (e builtinEngine) EncodeAtLeastK(literals []cnf.Literal, k int64, firstFreeVar cnf.Variable) (cnf.Formula, error) {
	n := len(literals)

	switch {
	case k <= 0:
		return cnf.Formula{NextFreeVar: firstFreeVar}, nil
	case k > int64(n):
		return unsatFormula(firstFreeVar), nil
	case k == int64(n):
		clauses := make([]cnf.Clause, n)
		for i, lit := range literals {
			clauses[i] = cnf.Clause{lit}
		}

		return cnf.Formula{Clauses: clauses, NextFreeVar: firstFreeVar}, nil
	}

	return e.EncodeAtMostK(cnf.NegateAll(literals), int64(n)-k, firstFreeVar)
}

// unsatFormula is the canonical encoding of a trivially unsatisfiable
// constraint: a single empty clause.
func unsatFormula(firstFreeVar cnf.Variable) cnf.Formula {
	return cnf.Formula{
		Clauses:     []cnf.Clause{{}},
		NextFreeVar: firstFreeVar,
	}
}
