package buffer

import (
	"iter"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/section"
)

// Decoder walks a flattened formula buffer by the documented layout.
//
// A Decoder borrows the underlying storage: clauses yielded by All alias
// the buffer and the decoder must not outlive it. Use Formula for a deep
// copy that survives the buffer's release.
type Decoder struct {
	data       []int32
	header     section.FormulaHeader
	numClauses int
}

// NewDecoder creates a decoder over a raw flattened buffer, validating the
// complete layout up front.
//
// Returns:
//   - *Decoder: Decoder positioned at the first clause
//   - error: ErrInvalidBufferLength or ErrInvalidClauseLength if the
//     layout is malformed
func NewDecoder(data []int32) (*Decoder, error) {
	numClauses, err := validateLayout(data)
	if err != nil {
		return nil, err
	}

	header, _ := section.ParseFormulaHeader(data)

	return &Decoder{
		data:       data,
		header:     header,
		numClauses: numClauses,
	}, nil
}

// NewBufferDecoder creates a decoder over a FormulaBuffer.
//
// The decoder borrows the buffer's storage and must not be used after the
// buffer is released.
func NewBufferDecoder(buf *FormulaBuffer) (*Decoder, error) {
	data, err := buf.Int32s()
	if err != nil {
		return nil, err
	}

	// The buffer validated its layout when it was created.
	return &Decoder{
		data:       data,
		header:     section.NewFormulaHeader(int32(len(data)), data[section.NextFreeVarIndex]),
		numClauses: buf.numClauses,
	}, nil
}

// NextFreeVar returns the next-free-variable watermark from the header.
func (d *Decoder) NextFreeVar() int32 {
	return d.header.NextFreeVar
}

// NumClauses returns the number of clauses in the buffer.
func (d *Decoder) NumClauses() int {
	return d.numClauses
}

// All returns an iterator over the clauses in production order.
//
// Yielded clauses are zero-copy subslices of the buffer and must not be
// modified or retained past the buffer's lifetime.
func (d *Decoder) All() iter.Seq[cnf.Clause] {
	return func(yield func(cnf.Clause) bool) {
		total := int(d.header.TotalLength)
		for i := section.HeaderLength; i < total; {
			clauseLen := int(d.data[i])
			i++
			if !yield(cnf.Clause(d.data[i : i+clauseLen : i+clauseLen])) {
				return
			}
			i += clauseLen
		}
	}
}

// Formula reconstructs the formula as an owned deep copy.
func (d *Decoder) Formula() cnf.Formula {
	f := cnf.Formula{
		Clauses:     make([]cnf.Clause, 0, d.numClauses),
		NextFreeVar: d.header.NextFreeVar,
	}

	for clause := range d.All() {
		owned := make(cnf.Clause, len(clause))
		copy(owned, clause)
		f.Clauses = append(f.Clauses, owned)
	}

	return f
}
