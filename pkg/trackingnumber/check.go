package trackingnumber

import (
	"tracker/pkg/checksum"
)

// Check verifies the check digit of a normalized tracking number that
// already matched its format pattern.
type Check interface {
	Valid(number string) bool
}

// Weighted verifies a weighted mod-10 or mod-11 check digit over a window of
// the number. Offset characters are stripped from the front before the
// checksum runs; Length limits the window, zero meaning the rest of the number.
type Weighted struct {
	Offset  int
	Length  int
	Weights []int
	Modulus int
	// Transcode maps letters to digits as (ASCII - 63) mod 10 before verifying.
	Transcode bool
}

// Valid implements Check.
func (w Weighted) Valid(number string) bool {
	if w.Offset >= len(number) {
		return false
	}
	window := number[w.Offset:]
	if w.Length > 0 {
		if w.Length > len(window) {
			return false
		}
		window = window[:w.Length]
	}
	if w.Transcode {
		window = transcode(window)
	}

	return checksum.Verify(window, w.Weights, w.Modulus)
}

func transcode(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = '0' + (c-63)%10
		}
	}

	return string(b)
}

// AnyOf accepts the number when at least one of its checks does. It models
// formats whose payload may start at more than one offset.
type AnyOf []Check

// Valid implements Check.
func (a AnyOf) Valid(number string) bool {
	for _, c := range a {
		if c.Valid(number) {
			return true
		}
	}

	return false
}

// S10 verifies the UPU S10 check digit of international postal items such as
// "EA123456785US": two letters, eight serial digits, a check digit and a
// two-letter country code.
type S10 struct{}

var s10Weights = [8]int{8, 6, 4, 2, 3, 5, 9, 7} //nolint: gochecknoglobals

// Valid implements Check.
func (S10) Valid(number string) bool {
	if len(number) != 13 {
		return false
	}
	serial := number[2:11]

	sum := 0
	for i := 0; i < 8; i++ {
		d := serial[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += int(d-'0') * s10Weights[i]
	}

	check := 11 - sum%11
	switch check {
	case 10:
		check = 0
	case 11:
		check = 5
	}

	return serial[8] >= '0' && serial[8] <= '9' && check == int(serial[8]-'0')
}

// Mod7 verifies DHL Express waybills: the leading digits read as an integer,
// modulo 7, equal the final digit.
type Mod7 struct{}

// Valid implements Check.
func (Mod7) Valid(number string) bool {
	if len(number) < 2 {
		return false
	}

	rem := 0
	for i := 0; i < len(number)-1; i++ {
		d := number[i]
		if d < '0' || d > '9' {
			return false
		}
		rem = (rem*10 + int(d-'0')) % 7
	}

	last := number[len(number)-1]

	return last >= '0' && last <= '9' && rem == int(last-'0')
}
