package encoder

import (
	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/errs"
)

// adaptTerms validates and copies a weighted term sequence into the value
// representation handed to the engine.
//
// The caller's slices are never mutated or retained: the engine receives
// private copies, so the caller may reuse its arrays as soon as the
// operation returns. With validation enabled (the default), mismatched
// lengths and zero literals are rejected before the engine runs.
func (e *Encoder) adaptTerms(weights []cnf.Weight, literals []cnf.Literal) ([]cnf.Weight, []cnf.Literal, error) {
	if e.closed {
		return nil, nil, errs.ErrEncoderClosed
	}

	if e.cfg.validate {
		if err := cnf.ValidateTerms(weights, literals); err != nil {
			return nil, nil, err
		}
	}

	ws := make([]cnf.Weight, len(weights))
	copy(ws, weights)
	lits := make([]cnf.Literal, len(literals))
	copy(lits, literals)

	return ws, lits, nil
}

// adaptLiterals validates and copies a literal sequence for the
// unweighted cardinality operations.
func (e *Encoder) adaptLiterals(literals []cnf.Literal) ([]cnf.Literal, error) {
	if e.closed {
		return nil, errs.ErrEncoderClosed
	}

	if e.cfg.validate {
		if err := cnf.ValidateLiterals(literals); err != nil {
			return nil, err
		}
	}

	lits := make([]cnf.Literal, len(literals))
	copy(lits, literals)

	return lits, nil
}
