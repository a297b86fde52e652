package numeral

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

const (
	// MinBase is the smallest supported numeral base.
	MinBase = 2
	// MaxBase is the largest supported numeral base (digits 0-9 and a-z).
	MaxBase = 36
)

var (
	// ErrInvalidBase is returned when the base is outside [MinBase, MaxBase]
	// or is not a decimal number.
	ErrInvalidBase = errors.New("invalid base")

	// ErrInvalidDigit is returned for characters other than 0-9, a-z and A-Z.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrDigitOutOfRange is returned when a digit value is not below the base.
	ErrDigitOutOfRange = errors.New("digit out of base range")
)

// Decode converts digits written in the given base into an exact integer.
// Digits are read most significant first and letters are case-insensitive.
// A letter in a base up to 10 is an invalid digit, any other digit not below
// the base is out of range. An empty digit string decodes to zero.
func Decode(base int, digits string) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}

	bigBase := big.NewInt(int64(base))
	digit := new(big.Int)
	res := new(big.Int)
	for i := 0; i < len(digits); i++ {
		ch := digits[i]
		value, ok := digitValue(ch)
		// Letters are not digits at all in bases without letter digits.
		if !ok || (value >= 10 && base <= 10) {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, ch, i)
		}
		if value >= base {
			return nil, fmt.Errorf("%w: %q in base %d", ErrDigitOutOfRange, ch, base)
		}

		res.Mul(res, bigBase)
		res.Add(res, digit.SetInt64(int64(value)))
	}

	return res, nil
}

// ParseBase parses a base written as decimal text, as found in share documents.
func ParseBase(s string) (int, error) {
	base, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBase, s)
	}
	if base < MinBase || base > MaxBase {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	return base, nil
}

// DecodeString decodes digits in a base given as decimal text.
func DecodeString(base, digits string) (*big.Int, error) {
	b, err := ParseBase(base)
	if err != nil {
		return nil, err
	}
	return Decode(b, digits)
}

func digitValue(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, true
	default:
		return 0, false
	}
}
