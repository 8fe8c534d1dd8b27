package section

import (
	"fmt"

	"github.com/arloliu/pbcnf/errs"
)

// FormulaHeader is the two-element header leading every flattened formula
// buffer.
type FormulaHeader struct {
	// TotalLength is the length of the whole buffer in int32 elements,
	// header included.
	TotalLength int32
	// NextFreeVar is the next free auxiliary variable after every variable
	// the producing engine introduced.
	NextFreeVar int32
}

// NewFormulaHeader creates a header for a buffer of the given total length
// and watermark.
func NewFormulaHeader(totalLength, nextFreeVar int32) FormulaHeader {
	return FormulaHeader{
		TotalLength: totalLength,
		NextFreeVar: nextFreeVar,
	}
}

// Parse reads the header from the start of a flattened buffer.
//
// Returns:
//   - error: ErrInvalidBufferLength if the buffer is shorter than the
//     header or shorter than its recorded total length
func (h *FormulaHeader) Parse(data []int32) error {
	if len(data) < HeaderLength {
		return fmt.Errorf("%w: %d elements, need at least %d",
			errs.ErrInvalidBufferLength, len(data), HeaderLength)
	}

	h.TotalLength = data[TotalLengthIndex]
	h.NextFreeVar = data[NextFreeVarIndex]

	if h.TotalLength < HeaderLength || int(h.TotalLength) > len(data) {
		return fmt.Errorf("%w: header records %d elements, buffer has %d",
			errs.ErrInvalidBufferLength, h.TotalLength, len(data))
	}

	return nil
}

// Put writes the header into the first two elements of a buffer.
// The buffer must have at least HeaderLength elements.
func (h FormulaHeader) Put(data []int32) {
	data[TotalLengthIndex] = h.TotalLength
	data[NextFreeVarIndex] = h.NextFreeVar
}

// Validate checks that the header fields are internally consistent.
func (h FormulaHeader) Validate() error {
	if h.TotalLength < HeaderLength {
		return fmt.Errorf("%w: total length %d below header size",
			errs.ErrInvalidBufferLength, h.TotalLength)
	}
	if h.NextFreeVar < 0 {
		return fmt.Errorf("%w: negative watermark %d",
			errs.ErrWatermarkRegression, h.NextFreeVar)
	}

	return nil
}

// ParseFormulaHeader parses a FormulaHeader from the start of a flattened
// buffer.
func ParseFormulaHeader(data []int32) (FormulaHeader, error) {
	h := FormulaHeader{}
	if err := h.Parse(data); err != nil {
		return FormulaHeader{}, err
	}

	return h, nil
}
