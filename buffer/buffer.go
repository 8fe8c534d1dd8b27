package buffer

import (
	"unsafe"

	"github.com/arloliu/pbcnf/errs"
	"github.com/arloliu/pbcnf/section"
)

// FormulaBuffer owns one flattened formula.
//
// A FormulaBuffer is produced by Flatten or Unpack and handed to exactly
// one logical owner, who must call Release exactly once when done. The
// buffer contents are immutable and safe for concurrent reads; Release is
// not synchronized with readers and must be the owner's last use.
type FormulaBuffer struct {
	data       []int32
	numClauses int
	cleanup    func()
	released   bool
}

// newFormulaBuffer wraps flattened data in an owning buffer. cleanup may be
// nil for buffers whose storage is not pooled.
func newFormulaBuffer(data []int32, numClauses int, cleanup func()) *FormulaBuffer {
	return &FormulaBuffer{
		data:       data,
		numClauses: numClauses,
		cleanup:    cleanup,
	}
}

// NewFromInt32s wraps an existing flattened buffer, validating the full
// layout (header, clause length prefixes, total length).
//
// The buffer takes ownership of data; the caller must not modify it and
// should drop its reference. Release on a buffer created this way only
// invalidates the wrapper, it does not reclaim the caller's slice.
//
// Returns:
//   - *FormulaBuffer: Owning wrapper around data
//   - error: ErrInvalidBufferLength or ErrInvalidClauseLength if the
//     layout is malformed
func NewFromInt32s(data []int32) (*FormulaBuffer, error) {
	numClauses, err := validateLayout(data)
	if err != nil {
		return nil, err
	}

	return newFormulaBuffer(data, numClauses, nil), nil
}

// Len returns the buffer length in int32 elements, or 0 after release.
func (b *FormulaBuffer) Len() int {
	if b.released {
		return 0
	}

	return len(b.data)
}

// NumClauses returns the number of clauses in the buffer.
func (b *FormulaBuffer) NumClauses() (int, error) {
	if b.released {
		return 0, errs.ErrBufferReleased
	}

	return b.numClauses, nil
}

// NextFreeVar returns the next-free-variable watermark from the header.
func (b *FormulaBuffer) NextFreeVar() (int32, error) {
	if b.released {
		return 0, errs.ErrBufferReleased
	}

	return b.data[section.NextFreeVarIndex], nil
}

// Int32s returns the raw flattened elements, header included.
//
// The returned slice aliases the buffer's storage: it must not be modified
// and must not be used after Release.
func (b *FormulaBuffer) Int32s() ([]int32, error) {
	if b.released {
		return nil, errs.ErrBufferReleased
	}

	return b.data, nil
}

// Bytes returns the buffer as a byte view in host-native byte order, the
// representation the wire layout specifies for in-process hand-off.
//
// The view is zero-copy: it aliases the buffer's storage and follows the
// same lifetime rules as Int32s.
func (b *FormulaBuffer) Bytes() ([]byte, error) {
	if b.released {
		return nil, errs.ErrBufferReleased
	}

	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(b.data)))

	return unsafe.Slice(ptr, len(b.data)*4), nil
}

// Release reclaims the buffer. The backing storage returns to the internal
// pool and every subsequent accessor, including a second Release, reports
// ErrBufferReleased.
func (b *FormulaBuffer) Release() error {
	if b.released {
		return errs.ErrBufferReleased
	}

	b.released = true
	b.data = nil
	if b.cleanup != nil {
		b.cleanup()
		b.cleanup = nil
	}

	return nil
}

// validateLayout walks a flattened buffer and returns its clause count.
func validateLayout(data []int32) (int, error) {
	header, err := section.ParseFormulaHeader(data)
	if err != nil {
		return 0, err
	}

	total := int(header.TotalLength)
	if total != len(data) {
		return 0, errs.ErrInvalidBufferLength
	}

	numClauses := 0
	for i := section.HeaderLength; i < total; {
		clauseLen := data[i]
		if clauseLen < 0 || i+1+int(clauseLen) > total {
			return 0, errs.ErrInvalidClauseLength
		}
		i += 1 + int(clauseLen)
		numClauses++
	}

	return numClauses, nil
}
