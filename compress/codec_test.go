package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/pbcnf/format"
	"github.com/stretchr/testify/require"
)

// testPayload mimics a flattened formula byte run: repetitive small
// integers that every codec should handle.
func testPayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 1024; i++ {
		buf.Write([]byte{byte(i % 7), 0, 0, 0})
	}

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	payload := testPayload()
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, codec := range []Codec{
		NewNoOpCompressor(), NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor(),
	} {
		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCreateCodec(t *testing.T) {
	t.Run("Valid types", func(t *testing.T) {
		for _, ct := range []format.CompressionType{
			format.CompressionNone, format.CompressionZstd,
			format.CompressionS2, format.CompressionLZ4,
		} {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	})

	t.Run("Invalid type", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0xEE), "payload")
		require.Error(t, err)
	})
}

func TestGetCodec_Invalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}
