// Package checksum verifies weighted positional check digits used by carrier
// tracking numbers.
package checksum

// Supported moduli.
const (
	Mod10 = 10
	Mod11 = 11
)

// Verify reports whether the last character of digits is the check digit of
// the preceding ones. Weights are applied cyclically from the first digit.
//
// For Mod11 the check digit is sum%11, with a remainder of 10 treated as 0.
// For Mod10 the check digit is (10 - sum%10) % 10.
//
// digits must consist of ASCII numerals; anything else yields false.
func Verify(digits string, weights []int, modulus int) bool {
	if len(digits) < 2 || len(weights) == 0 {
		return false
	}

	sum := 0
	for i := 0; i < len(digits)-1; i++ {
		d := digits[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * weights[i%len(weights)]
	}

	last := digits[len(digits)-1]
	if last < '0' || last > '9' {
		return false
	}

	var check int
	switch modulus {
	case Mod11:
		check = sum % Mod11
		if check == 10 {
			check = 0
		}
	case Mod10:
		check = (Mod10 - sum%Mod10) % Mod10
	default:
		return false
	}

	return check == int(last-'0')
}
