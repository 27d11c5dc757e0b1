package basex

import (
	"errors"
	"fmt"
	"math/big"
)

// Encoding is a radix-N encoding defined by an ordered alphabet of N distinct
// symbols. The symbol at index i stands for digit value i.
// An Encoding is immutable and safe for concurrent use.
type Encoding struct {
	alphabet string
	radix    *big.Int
	// decodeMap maps a symbol byte to its digit value; only meaningful where
	// member is set.
	decodeMap [256]byte
	member    [256]bool
}

// NewEncoding validates the alphabet and returns an Encoding over it.
func NewEncoding(alphabet string) (*Encoding, error) {
	if len(alphabet) < 2 {
		return nil, ErrAlphabetTooShort
	}
	if len(alphabet) > 256 {
		return nil, ErrAlphabetTooLong
	}

	e := &Encoding{
		alphabet: alphabet,
		radix:    big.NewInt(int64(len(alphabet))),
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c < 0x21 || c > 0x7E {
			return nil, errors.Join(ErrNonASCIISymbol, fmt.Errorf("symbol %q at position %d", c, i))
		}
		if e.member[c] {
			return nil, errors.Join(ErrDuplicateSymbol, fmt.Errorf("symbol %q at position %d", c, i))
		}
		e.member[c] = true
		e.decodeMap[c] = byte(i)
	}

	return e, nil
}

// MustNewEncoding is like NewEncoding but panics on an invalid alphabet.
// Meant for package-level variables with constant alphabets.
func MustNewEncoding(alphabet string) *Encoding {
	e, err := NewEncoding(alphabet)
	if err != nil {
		panic(fmt.Sprintf("basex: invalid alphabet: %v", err))
	}
	return e
}

// Alphabet returns the symbols of the encoding in digit order.
func (e *Encoding) Alphabet() string {
	return e.alphabet
}

// Radix returns the number of symbols in the alphabet.
func (e *Encoding) Radix() int {
	return len(e.alphabet)
}

// EncodeToString interprets src as a big-endian unsigned integer and returns
// its representation in the alphabet's radix.
func (e *Encoding) EncodeToString(src []byte) string {
	return e.EncodeBigInt(new(big.Int).SetBytes(src))
}

// EncodeBigInt returns the representation of n in the alphabet's radix.
// Negative values are encoded by their absolute value.
func (e *Encoding) EncodeBigInt(n *big.Int) string {
	if n.Sign() == 0 {
		return e.alphabet[:1]
	}

	num := new(big.Int).Abs(n)
	rem := new(big.Int)

	// Least significant digit first, reversed below.
	digits := make([]byte, 0, e.maxDigits(num))
	for num.Sign() > 0 {
		num.QuoRem(num, e.radix, rem)
		digits = append(digits, e.alphabet[rem.Int64()])
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}

// DecodeString reconstructs the integer represented by s.
// An empty string decodes to zero.
func (e *Encoding) DecodeString(s string) (*big.Int, error) {
	n := new(big.Int)
	digit := new(big.Int)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !e.member[c] {
			return nil, errors.Join(ErrInvalidCharacter, fmt.Errorf("character %q at position %d", c, i))
		}
		n.Mul(n, e.radix)
		n.Add(n, digit.SetInt64(int64(e.decodeMap[c])))
	}

	return n, nil
}

// maxDigits estimates an upper bound on the number of digits of n, used only
// to size the output buffer.
func (e *Encoding) maxDigits(n *big.Int) int {
	bitsPerDigit := 1
	for r := len(e.alphabet); r > 3; r >>= 1 {
		bitsPerDigit++
	}
	return n.BitLen()/bitsPerDigit + 1
}
