// Package buffer implements the formula marshalling core of pbcnf: the
// flattener that serializes a formula into one contiguous self-describing
// int32 buffer, the owning FormulaBuffer wrapper with its exactly-once
// release discipline, the decoder that walks a buffer back into clauses,
// and the packed envelope for storing or shipping buffers as bytes.
//
// # Wire layout
//
// A flattened formula is a flat run of int32 elements in host-native byte
// order:
//
//	[0]            totalLength = 2 + numClauses + sum(clauseLengths)
//	[1]            nextFreeVar
//	[2]            clause_0 length
//	[3..2+len0)    clause_0 literals
//	...            repeated per clause, in production order
//
// A caller that knows nothing about the producer can walk the buffer from
// the header alone. An empty formula is exactly [2, nextFreeVar]; a
// zero-length clause contributes a single 0 length prefix.
//
// # Ownership
//
// Flatten transfers ownership of the returned FormulaBuffer to the caller.
// The buffer is immutable and safe for concurrent reads until its one
// logical owner calls Release, after which every accessor reports
// errs.ErrBufferReleased. Release returns the backing storage to an
// internal pool; releasing twice is detected, not undefined.
package buffer
