package buffer

import (
	"fmt"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/errs"
	"github.com/arloliu/pbcnf/internal/pool"
	"github.com/arloliu/pbcnf/section"
)

// Flatten serializes a formula into one contiguous self-describing buffer.
//
// The operation is deterministic and pure: clauses are written in their
// original order, each prefixed by its literal count, after the two header
// elements. Zero-length clauses are written as a bare 0 prefix so the
// format stays total.
//
// The total length is computed in int64 before any allocation; if it or
// any clause length exceeds the int32 wire width, Flatten fails without
// writing anything rather than truncating. No partial buffer is ever
// returned.
//
// Ownership of the returned buffer transfers to the caller, who must
// Release it exactly once.
func Flatten(f cnf.Formula) (*FormulaBuffer, error) {
	total, err := flattenedLength(f)
	if err != nil {
		return nil, err
	}

	data, cleanup := pool.GetInt32Slice(int(total))

	header := section.NewFormulaHeader(int32(total), f.NextFreeVar)
	header.Put(data)

	i := section.HeaderLength
	for _, clause := range f.Clauses {
		data[i] = int32(len(clause))
		i++
		i += copy(data[i:], clause)
	}

	return newFormulaBuffer(data, len(f.Clauses), cleanup), nil
}

// flattenedLength computes the buffer's total element count in int64,
// rejecting formulas that do not fit the int32 wire representation.
func flattenedLength(f cnf.Formula) (int64, error) {
	total := int64(section.HeaderLength) + int64(len(f.Clauses))
	for ci, clause := range f.Clauses {
		if int64(len(clause)) > section.MaxTotalLength {
			return 0, fmt.Errorf("%w: clause %d has %d literals",
				errs.ErrFormulaTooLarge, ci, len(clause))
		}
		total += int64(len(clause))
		if total > section.MaxTotalLength {
			return 0, fmt.Errorf("%w: total length exceeds %d elements",
				errs.ErrFormulaTooLarge, int64(section.MaxTotalLength))
		}
	}

	return total, nil
}
