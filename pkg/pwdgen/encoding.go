package pwdgen

import (
	"encoding/base64"

	"github.com/dmitrymomot/safepwdgen/pkg/basex"
)

const (
	// Alphabet64 is the standard base64 symbol table. Encoded output may also
	// end with PaddingChar.
	Alphabet64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Alphabet71 holds alphanumerics and the special characters !-_?=@/+*.
	// The order defines digit values and must never change.
	Alphabet71 = "!-_?=@/+*0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// PaddingChar pads base64 output to a multiple of 4 symbols.
	PaddingChar = '='
)

// Encoder turns a digest into printable text.
// Both *base64.Encoding and *basex.Encoding satisfy it.
type Encoder interface {
	EncodeToString(src []byte) string
}

var (
	// byteBlockEncoder maps every 6 bits of input to one symbol.
	byteBlockEncoder Encoder = base64.StdEncoding

	// radixEncoder writes the digest as a base-71 number.
	radixEncoder Encoder = basex.MustNewEncoding(Alphabet71)
)

// EncoderFor returns the base-71 encoder when useSpecialChars is set and the
// standard base64 encoder otherwise.
func EncoderFor(useSpecialChars bool) Encoder {
	if useSpecialChars {
		return radixEncoder
	}
	return byteBlockEncoder
}

// Encode returns the full, untruncated encoding of d.
func Encode(d Digest, useSpecialChars bool) string {
	return EncoderFor(useSpecialChars).EncodeToString(d[:])
}

// Alphabet returns every symbol that may appear in output of the given mode,
// including the padding symbol for base64.
func Alphabet(useSpecialChars bool) string {
	if useSpecialChars {
		return Alphabet71
	}
	return Alphabet64 + string(PaddingChar)
}
