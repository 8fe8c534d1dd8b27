package cnf

import (
	"fmt"

	"github.com/arloliu/pbcnf/errs"
)

// ValidateLiterals checks that every literal in the sequence is nonzero.
//
// Returns:
//   - error: ErrZeroLiteral (wrapped with the offending position) if any
//     literal is 0, nil otherwise
func ValidateLiterals(lits []Literal) error {
	for i, lit := range lits {
		if lit == 0 {
			return fmt.Errorf("%w: position %d", errs.ErrZeroLiteral, i)
		}
	}

	return nil
}

// ValidateTerms checks a weighted term sequence: the weight and literal
// slices must have equal length and every literal must be nonzero.
//
// Returns:
//   - error: ErrTermCountMismatch if the lengths differ, ErrZeroLiteral if
//     any literal is 0, nil otherwise
func ValidateTerms(weights []Weight, lits []Literal) error {
	if len(weights) != len(lits) {
		return fmt.Errorf("%w: %d weights, %d literals",
			errs.ErrTermCountMismatch, len(weights), len(lits))
	}

	return ValidateLiterals(lits)
}

// Validate checks the formula's internal consistency: every literal is
// nonzero and no referenced variable reaches the NextFreeVar watermark.
func (f Formula) Validate() error {
	for ci, c := range f.Clauses {
		for _, lit := range c {
			if lit == 0 {
				return fmt.Errorf("%w: clause %d", errs.ErrZeroLiteral, ci)
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v >= f.NextFreeVar {
				return fmt.Errorf("%w: clause %d references variable %d",
					errs.ErrWatermarkRegression, ci, v)
			}
		}
	}

	return nil
}
