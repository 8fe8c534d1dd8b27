// Package encoder provides the encoder handle: the owned, exactly-once
// destroyed boundary object through which callers run encoding operations
// and receive flattened formula buffers.
package encoder

import (
	"fmt"

	"github.com/arloliu/pbcnf/buffer"
	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/errs"
)

// Encoder is an opaque handle over one encoding engine instance.
//
// An Encoder is exclusively owned by its creator from New until Close.
// Using it after Close, or closing it twice, is detected and reported as
// errs.ErrEncoderClosed instead of being undefined.
//
// Note: The Encoder is NOT thread-safe. Concurrent operations on one
// handle require external synchronization; distinct handles are fully
// independent and safe to use concurrently.
type Encoder struct {
	cfg    EncoderConfig
	closed bool
}

// New creates a fresh, independent encoder handle with no prior state.
//
// Parameters:
//   - opts: Optional configuration (see WithEngine, WithValidationDisabled)
//
// Returns:
//   - *Encoder: The created handle; the caller must Close it exactly once
//   - error: An error if the configuration is invalid
func New(opts ...Option) (*Encoder, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Close destroys the handle and releases the resources it owns. After
// Close every operation, including a second Close, returns
// errs.ErrEncoderClosed.
func (e *Encoder) Close() error {
	if e.closed {
		return errs.ErrEncoderClosed
	}

	e.closed = true
	e.cfg.engine = nil

	return nil
}

// EncodeLeq encodes sum(weights[i] * literals[i]) <= leq and returns the
// flattened formula.
//
// firstAuxVar is the first auxiliary variable the engine may introduce;
// pass the watermark returned by the previous call (buffer NextFreeVar) to
// keep auxiliary ranges disjoint across calls.
func (e *Encoder) EncodeLeq(weights []cnf.Weight, literals []cnf.Literal, leq cnf.Weight, firstAuxVar cnf.Variable) (*buffer.FormulaBuffer, error) {
	ws, lits, err := e.adaptTerms(weights, literals)
	if err != nil {
		return nil, err
	}

	return e.encode(firstAuxVar, func() (cnf.Formula, error) {
		return e.cfg.engine.EncodeLeq(ws, lits, leq, firstAuxVar)
	})
}

// EncodeGeq encodes sum(weights[i] * literals[i]) >= geq and returns the
// flattened formula.
func (e *Encoder) EncodeGeq(weights []cnf.Weight, literals []cnf.Literal, geq cnf.Weight, firstAuxVar cnf.Variable) (*buffer.FormulaBuffer, error) {
	ws, lits, err := e.adaptTerms(weights, literals)
	if err != nil {
		return nil, err
	}

	return e.encode(firstAuxVar, func() (cnf.Formula, error) {
		return e.cfg.engine.EncodeGeq(ws, lits, geq, firstAuxVar)
	})
}

// EncodeBoth encodes geq <= sum(weights[i] * literals[i]) <= leq and
// returns the flattened formula.
func (e *Encoder) EncodeBoth(weights []cnf.Weight, literals []cnf.Literal, leq, geq cnf.Weight, firstAuxVar cnf.Variable) (*buffer.FormulaBuffer, error) {
	ws, lits, err := e.adaptTerms(weights, literals)
	if err != nil {
		return nil, err
	}

	return e.encode(firstAuxVar, func() (cnf.Formula, error) {
		return e.cfg.engine.EncodeBoth(ws, lits, leq, geq, firstAuxVar)
	})
}

// EncodeAtMostK encodes "at most k of literals are true" and returns the
// flattened formula.
func (e *Encoder) EncodeAtMostK(literals []cnf.Literal, k int64, firstAuxVar cnf.Variable) (*buffer.FormulaBuffer, error) {
	lits, err := e.adaptLiterals(literals)
	if err != nil {
		return nil, err
	}

	return e.encode(firstAuxVar, func() (cnf.Formula, error) {
		return e.cfg.engine.EncodeAtMostK(lits, k, firstAuxVar)
	})
}

// EncodeAtLeastK encodes "at least k of literals are true" and returns the
// flattened formula.
func (e *Encoder) EncodeAtLeastK(literals []cnf.Literal, k int64, firstAuxVar cnf.Variable) (*buffer.FormulaBuffer, error) {
	lits, err := e.adaptLiterals(literals)
	if err != nil {
		return nil, err
	}

	return e.encode(firstAuxVar, func() (cnf.Formula, error) {
		return e.cfg.engine.EncodeAtLeastK(lits, k, firstAuxVar)
	})
}

// encode is the shared dispatch path of the five operations: handle and
// watermark checks, one engine invocation, one flattening.
//
// Every operation either fully succeeds and transfers a fresh buffer to
// the caller, or fails without returning a partial result.
func (e *Encoder) encode(firstAuxVar cnf.Variable, run func() (cnf.Formula, error)) (*buffer.FormulaBuffer, error) {
	if e.closed {
		return nil, errs.ErrEncoderClosed
	}
	if firstAuxVar < 1 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidWatermark, firstAuxVar)
	}

	formula, err := run()
	if err != nil {
		return nil, err
	}

	if formula.NextFreeVar < firstAuxVar {
		return nil, fmt.Errorf("%w: %d after %d",
			errs.ErrWatermarkRegression, formula.NextFreeVar, firstAuxVar)
	}

	return buffer.Flatten(formula)
}
