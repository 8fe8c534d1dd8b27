package buffer

import (
	"testing"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/endian"
	"github.com/arloliu/pbcnf/errs"
	"github.com/stretchr/testify/require"
)

func testBuffer(t *testing.T) *FormulaBuffer {
	t.Helper()

	buf, err := Flatten(cnf.Formula{
		Clauses:     []cnf.Clause{{1, -2}, {3}},
		NextFreeVar: 4,
	})
	require.NoError(t, err)

	return buf
}

func TestFormulaBuffer_ReleaseExactlyOnce(t *testing.T) {
	buf := testBuffer(t)

	require.NoError(t, buf.Release())

	err := buf.Release()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBufferReleased)
}

func TestFormulaBuffer_AccessAfterRelease(t *testing.T) {
	buf := testBuffer(t)
	require.NoError(t, buf.Release())

	_, err := buf.Int32s()
	require.ErrorIs(t, err, errs.ErrBufferReleased)

	_, err = buf.Bytes()
	require.ErrorIs(t, err, errs.ErrBufferReleased)

	_, err = buf.NextFreeVar()
	require.ErrorIs(t, err, errs.ErrBufferReleased)

	_, err = buf.NumClauses()
	require.ErrorIs(t, err, errs.ErrBufferReleased)

	require.Equal(t, 0, buf.Len())

	_, err = NewBufferDecoder(buf)
	require.ErrorIs(t, err, errs.ErrBufferReleased)
}

func TestFormulaBuffer_Bytes(t *testing.T) {
	buf := testBuffer(t)
	defer buf.Release()

	raw, err := buf.Bytes()
	require.NoError(t, err)
	require.Len(t, raw, buf.Len()*4)

	// The byte view is host-native: reading it back with the native engine
	// recovers the first header element.
	engine := endian.NativeEngine()
	require.Equal(t, uint32(buf.Len()), engine.Uint32(raw[:4]))
}

func TestNewFromInt32s(t *testing.T) {
	t.Run("Valid buffer", func(t *testing.T) {
		buf, err := NewFromInt32s([]int32{7, 4, 2, 1, -2, 1, 3})
		require.NoError(t, err)

		numClauses, err := buf.NumClauses()
		require.NoError(t, err)
		require.Equal(t, 2, numClauses)

		require.NoError(t, buf.Release())
	})

	t.Run("Total length mismatch", func(t *testing.T) {
		_, err := NewFromInt32s([]int32{3, 4, 0, 0})
		require.ErrorIs(t, err, errs.ErrInvalidBufferLength)
	})

	t.Run("Negative clause length", func(t *testing.T) {
		_, err := NewFromInt32s([]int32{4, 4, -1, 5})
		require.ErrorIs(t, err, errs.ErrInvalidClauseLength)
	})

	t.Run("Clause past buffer end", func(t *testing.T) {
		_, err := NewFromInt32s([]int32{4, 4, 5, 1})
		require.ErrorIs(t, err, errs.ErrInvalidClauseLength)
	})

	t.Run("Too short", func(t *testing.T) {
		_, err := NewFromInt32s([]int32{2})
		require.ErrorIs(t, err, errs.ErrInvalidBufferLength)
	})
}
