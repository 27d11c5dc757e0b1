// Package basex encodes byte strings and non-negative big integers in an
// arbitrary radix defined by a caller-supplied alphabet.
//
// Unlike encoding/base64 or encoding/base32, which regroup input bits into
// fixed-width symbols, basex treats the whole input as one big-endian number
// and writes it in base len(alphabet) by repeated division. This works for
// radices that are not a power of two, such as the 71-symbol alphabet used by
// pkg/pwdgen.
//
// # Usage
//
//	import "github.com/dmitrymomot/safepwdgen/pkg/basex"
//
//	enc, err := basex.NewEncoding("0123456789abcdef")
//	if err != nil {
//	    // handle error
//	}
//	s := enc.EncodeToString([]byte{0x01, 0x00}) // "100"
//	n, _ := enc.DecodeString(s)                 // 256
//
// # Encoding Rules
//
//   - Output is most significant digit first.
//   - Leading zero bytes of the input carry no weight and are not preserved.
//   - A zero value (including empty input) encodes to the single symbol at
//     index 0, never to an empty string.
//
// # Error Handling
//
// NewEncoding rejects alphabets shorter than 2 or longer than 256 symbols,
// alphabets with non-ASCII symbols and alphabets with repeated symbols.
// DecodeString fails with ErrInvalidCharacter on symbols outside the
// alphabet. All errors wrap package sentinels; match them with errors.Is.
package basex
