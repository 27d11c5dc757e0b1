package pwdgen

import (
	"crypto"
	_ "crypto/sha256" // registers crypto.SHA256
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// DigestSize is the size of a Digest in bytes.
const DigestSize = 32

// Digest is the SHA-256 sum of a seed password directly followed by a
// service identifier.
type Digest [DigestSize]byte

// Hash returns the SHA-256 digest of seed||service.
// There is no separator and no length prefix between the two parts.
func Hash(seed, service string) (Digest, error) {
	return hashWith(crypto.SHA256, seed, service)
}

func hashWith(h crypto.Hash, seed, service string) (Digest, error) {
	var d Digest

	if err := validateText(seed, service); err != nil {
		return d, err
	}
	if !h.Available() {
		return d, errors.Join(ErrAlgorithmUnavailable, fmt.Errorf("%s is not linked into the binary", h))
	}
	if h.Size() != DigestSize {
		return d, errors.Join(ErrAlgorithmUnavailable, fmt.Errorf("%s produces %d-byte digests, need %d", h, h.Size(), DigestSize))
	}

	hh := h.New()
	// hash.Hash writes never fail
	_, _ = io.WriteString(hh, seed)
	_, _ = io.WriteString(hh, service)
	copy(d[:], hh.Sum(nil))

	return d, nil
}

func validateText(parts ...string) error {
	for i, s := range parts {
		if !utf8.ValidString(s) {
			return errors.Join(ErrEncoding, fmt.Errorf("argument %d", i))
		}
	}
	return nil
}
