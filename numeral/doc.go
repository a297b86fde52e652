// Package numeral decodes share values written in positional numeral systems
// with bases from 2 to 36 into exact integers.
//
// Digits 0-9 map to 0..9 and letters (either case) map to 10..35, the same
// alphabet strconv uses. Unlike strconv and big.Int.SetString the decoder
// reports why a digit string was rejected, which lets callers log and skip
// individual shares:
//
//	y, err := numeral.DecodeString("16", "ff") // 255
//	if errors.Is(err, numeral.ErrDigitOutOfRange) {
//	    // the share was written in a smaller base than declared
//	}
//
// Values have no length limit; arithmetic is done with math/big.
package numeral
