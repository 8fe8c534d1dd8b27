package buffer

import (
	"testing"

	"github.com/arloliu/pbcnf/cnf"
	"github.com/arloliu/pbcnf/errs"
	"github.com/arloliu/pbcnf/format"
	"github.com/arloliu/pbcnf/section"
	"github.com/stretchr/testify/require"
)

func packTestFormula() cnf.Formula {
	clauses := make([]cnf.Clause, 0, 64)
	for i := int32(1); i <= 64; i++ {
		clauses = append(clauses, cnf.Clause{i, -(i + 1), i + 2})
	}

	return cnf.Formula{Clauses: clauses, NextFreeVar: 67}
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			buf, err := Flatten(packTestFormula())
			require.NoError(t, err)
			defer buf.Release()

			packed, err := Pack(buf, ct)
			require.NoError(t, err)

			restored, err := Unpack(packed)
			require.NoError(t, err)
			defer restored.Release()

			want, err := buf.Int32s()
			require.NoError(t, err)
			got, err := restored.Int32s()
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestPack_ReleasedBuffer(t *testing.T) {
	buf, err := Flatten(packTestFormula())
	require.NoError(t, err)
	require.NoError(t, buf.Release())

	_, err = Pack(buf, format.CompressionNone)
	require.ErrorIs(t, err, errs.ErrBufferReleased)
}

func TestPack_InvalidCompression(t *testing.T) {
	buf, err := Flatten(packTestFormula())
	require.NoError(t, err)
	defer buf.Release()

	_, err = Pack(buf, format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestUnpack_Corruption(t *testing.T) {
	buf, err := Flatten(packTestFormula())
	require.NoError(t, err)
	defer buf.Release()

	packed, err := Pack(buf, format.CompressionNone)
	require.NoError(t, err)

	t.Run("Checksum mismatch", func(t *testing.T) {
		corrupted := append([]byte(nil), packed...)
		corrupted[len(corrupted)-1] ^= 0xFF

		_, err := Unpack(corrupted)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("Bad magic", func(t *testing.T) {
		corrupted := append([]byte(nil), packed...)
		corrupted[0] ^= 0xFF

		_, err := Unpack(corrupted)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("Truncated envelope", func(t *testing.T) {
		_, err := Unpack(packed[:section.EnvelopeSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidEnvelopeSize)
	})

	t.Run("Truncated payload", func(t *testing.T) {
		_, err := Unpack(packed[:len(packed)-4])
		require.ErrorIs(t, err, errs.ErrInvalidBufferLength)
	})
}
