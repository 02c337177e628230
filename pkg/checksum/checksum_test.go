package checksum_test

import (
	"testing"
	"tracker/pkg/checksum"

	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		digits  string
		weights []int
		modulus int
		want    bool
	}{
		{name: "mod10 valid", digits: "03071900000000000015", weights: []int{3, 1}, modulus: checksum.Mod10, want: true},
		{name: "mod10 altered", digits: "03071900000000000016", weights: []int{3, 1}, modulus: checksum.Mod10, want: false},
		{name: "mod10 zero check", digits: "9200190330100000000004", weights: []int{3, 1}, modulus: checksum.Mod10, want: true},
		{name: "mod11 valid", digits: "123456789012", weights: []int{3, 1, 7}, modulus: checksum.Mod11, want: true},
		{name: "mod11 altered", digits: "123456789013", weights: []int{3, 1, 7}, modulus: checksum.Mod11, want: false},
		// 1*3+2*1+3*7+4*3+5*1+6*7+7*3+8*1+9*7+0*3+9*1 = 186, 186%11 = 10 -> 0
		{name: "mod11 remainder ten maps to zero", digits: "123456789090", weights: []int{3, 1, 7}, modulus: checksum.Mod11, want: true},
		{name: "non digit", digits: "12A4", weights: []int{3, 1}, modulus: checksum.Mod10, want: false},
		{name: "too short", digits: "1", weights: []int{3, 1}, modulus: checksum.Mod10, want: false},
		{name: "no weights", digits: "1234", weights: nil, modulus: checksum.Mod10, want: false},
		{name: "unsupported modulus", digits: "1234", weights: []int{1}, modulus: 7, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, checksum.Verify(tt.digits, tt.weights, tt.modulus))
		})
	}
}

func TestVerify_Mod11MatchesRemainder(t *testing.T) {
	weights := []int{3, 1, 7}
	base := "12345678901"

	sum := 0
	for i, c := range base {
		sum += int(c-'0') * weights[i%len(weights)]
	}
	want := sum % 11
	if want == 10 {
		want = 0
	}

	for d := 0; d <= 9; d++ {
		digits := base + string(rune('0'+d))
		require.Equal(t, d == want, checksum.Verify(digits, weights, checksum.Mod11), "check digit %d", d)
	}
}
