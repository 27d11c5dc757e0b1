// Package pwdgen deterministically derives per-service passwords from a
// secret seed password and a public service identifier.
//
// Nothing is stored. The same seed and identifier always yield the same
// password, so a user only has to remember the seed and can regenerate any
// service password on demand.
//
// # Architecture
//
// Derivation is a pipeline of three pure steps:
//
//  1. Hash – SHA-256 over the UTF-8 bytes of seed directly followed by the
//     service identifier (no separator). See Hash.
//  2. Encode – the 32-byte Digest is rendered either as standard base64
//     (byte-oriented, 44 symbols including one "=") or as a base-71 number
//     over Alphabet71 using pkg/basex. See Encode and EncoderFor.
//  3. Truncate – the first min(length, len(encoded)) characters are
//     returned. Output is never padded to the requested length.
//
// MaxLength64 and MaxLength71 are advisory limits for user-facing layers; the
// derivation itself never fails because a length is too large.
//
// # Usage
//
//	import "github.com/dmitrymomot/safepwdgen/pkg/pwdgen"
//
//	pwd, err := pwdgen.CreatePassword("correct horse", "example.com", 20, true)
//	if err != nil {
//	    // handle error
//	}
//
//	// Same thing with functional options and defaults
//	pwd, err = pwdgen.Generate("correct horse", "example.com")
//
// # Error Handling
//
// Failures wrap one of the package sentinels ErrAlgorithmUnavailable,
// ErrEncoding or ErrInvalidLength and can be matched with errors.Is. There is
// no partial success.
//
// # Security Considerations
//
// Derivation is one fast SHA-256 call, not a key derivation function. Anyone holding the seed can recompute every password,
// and a weak seed can be brute forced from one leaked password.
//
// All functions are safe for concurrent use.
package pwdgen
