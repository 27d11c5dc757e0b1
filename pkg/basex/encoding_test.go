package basex_test

import (
	"crypto/rand"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safepwdgen/pkg/basex"
)

const alphabet71 = "!-_?=@/+*0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func TestNewEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		alphabet string
		wantErr  error
	}{
		{"binary", "01", nil},
		{"hex", "0123456789abcdef", nil},
		{"base71", alphabet71, nil},
		{"empty", "", basex.ErrAlphabetTooShort},
		{"single symbol", "a", basex.ErrAlphabetTooShort},
		{"too long", strings.Repeat("a", 257), basex.ErrAlphabetTooLong},
		{"duplicate", "abca", basex.ErrDuplicateSymbol},
		{"space", "ab c", basex.ErrNonASCIISymbol},
		{"non-ascii", "abcä", basex.ErrNonASCIISymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			enc, err := basex.NewEncoding(tt.alphabet)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, enc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.alphabet, enc.Alphabet())
			assert.Equal(t, len(tt.alphabet), enc.Radix())
		})
	}
}

func TestMustNewEncoding(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { basex.MustNewEncoding("01") })
	assert.Panics(t, func() { basex.MustNewEncoding("00") })
}

func TestEncodeToString(t *testing.T) {
	t.Parallel()

	hex := basex.MustNewEncoding("0123456789abcdef")
	bin := basex.MustNewEncoding("01")
	b71 := basex.MustNewEncoding(alphabet71)

	tests := []struct {
		name string
		enc  *basex.Encoding
		src  []byte
		want string
	}{
		{"hex 256", hex, []byte{0x01, 0x00}, "100"},
		{"hex leading zero bytes dropped", hex, []byte{0x00, 0x00, 0xff}, "ff"},
		{"binary 5", bin, []byte{0x05}, "101"},
		{"empty input", hex, nil, "0"},
		{"zero byte", bin, []byte{0x00}, "0"},
		{"base71 zero digest", b71, make([]byte, 32), "!"},
		{"base71 one", b71, []byte{0x01}, "-"},
		{"base71 highest digit", b71, []byte{70}, "z"},
		{"base71 radix", b71, []byte{71}, "-!"},
		{"base71 256", b71, []byte{0x01, 0x00}, "?Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.enc.EncodeToString(tt.src))
		})
	}
}

func TestEncodeBigInt(t *testing.T) {
	t.Parallel()

	hex := basex.MustNewEncoding("0123456789abcdef")

	assert.Equal(t, "0", hex.EncodeBigInt(new(big.Int)))
	assert.Equal(t, "ff", hex.EncodeBigInt(big.NewInt(255)))
	assert.Equal(t, "ff", hex.EncodeBigInt(big.NewInt(-255)), "negative values use the absolute value")

	n := big.NewInt(4096)
	_ = hex.EncodeBigInt(n)
	assert.Equal(t, int64(4096), n.Int64(), "input must not be modified")
}

func TestDecodeString(t *testing.T) {
	t.Parallel()

	b71 := basex.MustNewEncoding(alphabet71)

	t.Run("known values", func(t *testing.T) {
		t.Parallel()
		n, err := b71.DecodeString("?Y")
		require.NoError(t, err)
		assert.Equal(t, int64(256), n.Int64())

		n, err = b71.DecodeString("!")
		require.NoError(t, err)
		assert.Zero(t, n.Sign())

		n, err = b71.DecodeString("")
		require.NoError(t, err)
		assert.Zero(t, n.Sign())
	})

	t.Run("invalid character", func(t *testing.T) {
		t.Parallel()
		_, err := b71.DecodeString("abc#")
		require.ErrorIs(t, err, basex.ErrInvalidCharacter)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		for range 64 {
			src := make([]byte, 32)
			_, err := rand.Read(src)
			require.NoError(t, err)

			encoded := b71.EncodeToString(src)
			decoded, err := b71.DecodeString(encoded)
			require.NoError(t, err)
			assert.Zero(t, new(big.Int).SetBytes(src).Cmp(decoded), "round trip mismatch for %x", src)
		}
	})
}

func TestEncodeToString_Length(t *testing.T) {
	t.Parallel()

	b71 := basex.MustNewEncoding(alphabet71)

	// 71^42 > 2^256, so a 32-byte value never needs more than 42 digits.
	ones := make([]byte, 32)
	for i := range ones {
		ones[i] = 0xff
	}
	assert.Len(t, b71.EncodeToString(ones), 42)
}

func BenchmarkEncodeToString(b *testing.B) {
	b71 := basex.MustNewEncoding(alphabet71)
	src := make([]byte, 32)
	_, _ = rand.Read(src)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = b71.EncodeToString(src)
	}
}
