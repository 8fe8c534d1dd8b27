// Package errs defines the sentinel errors returned by pbcnf packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is, even when they are wrapped with additional context.
package errs

import "errors"

var (
	// ErrEncoderClosed is returned when an encoder handle is used after Close,
	// or when Close is called a second time.
	ErrEncoderClosed = errors.New("encoder is closed")

	// ErrBufferReleased is returned when a formula buffer is accessed after
	// Release, or when Release is called a second time.
	ErrBufferReleased = errors.New("formula buffer is released")

	// ErrTermCountMismatch is returned when a weighted operation receives
	// weight and literal sequences of different lengths.
	ErrTermCountMismatch = errors.New("weights and literals length mismatch")

	// ErrZeroLiteral is returned when a literal sequence contains the value 0,
	// which is reserved as the clause terminator in DIMACS and is not a valid
	// variable reference.
	ErrZeroLiteral = errors.New("literal must be nonzero")

	// ErrFormulaTooLarge is returned when a formula's flattened size, or one
	// of its clause lengths, does not fit the int32 wire representation.
	ErrFormulaTooLarge = errors.New("formula exceeds int32 wire representation")

	// ErrWeightOverflow is returned when normalizing a weighted constraint
	// overflows the int64 weight domain (weight sums or adjusted bounds).
	ErrWeightOverflow = errors.New("weight sum overflows int64")

	// ErrWatermarkRegression is returned when an engine returns a next-free
	// variable watermark smaller than the one passed in.
	ErrWatermarkRegression = errors.New("engine returned regressed variable watermark")

	// ErrInvalidWatermark is returned when an encoding operation receives a
	// non-positive first auxiliary variable.
	ErrInvalidWatermark = errors.New("first auxiliary variable must be positive")

	// ErrInvalidBufferLength is returned when a flattened buffer is shorter
	// than its header, or its header total does not match the data length.
	ErrInvalidBufferLength = errors.New("invalid formula buffer length")

	// ErrInvalidClauseLength is returned when a flattened buffer contains a
	// negative clause length prefix or a clause extending past the buffer.
	ErrInvalidClauseLength = errors.New("invalid clause length in formula buffer")

	// ErrInvalidMagicNumber is returned when a packed envelope does not start
	// with the pbcnf magic number.
	ErrInvalidMagicNumber = errors.New("invalid envelope magic number")

	// ErrInvalidEnvelopeSize is returned when a packed envelope is shorter
	// than its fixed header.
	ErrInvalidEnvelopeSize = errors.New("invalid envelope size")

	// ErrChecksumMismatch is returned when a packed envelope's payload does
	// not match its recorded xxhash64 checksum.
	ErrChecksumMismatch = errors.New("envelope checksum mismatch")

	// ErrInvalidCompression is returned when an envelope references an
	// unknown compression type.
	ErrInvalidCompression = errors.New("invalid envelope compression type")

	// ErrUnsatisfiableBound is returned by engines for bounds that no
	// assignment can satisfy when the engine chooses to reject rather than
	// emit the empty clause. The built-in engine emits the empty clause and
	// never returns this, but external engines may.
	ErrUnsatisfiableBound = errors.New("bound is trivially unsatisfiable")
)
