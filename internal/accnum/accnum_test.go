package accnum

import (
	"errors"
	"strconv"
	"testing"

	"github.com/theplant/luhn"
)

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{10, 11, 12, 16} {
		number, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d) err=%v", length, err)
		}
		if len(number) != length {
			t.Fatalf("Generate(%d) returned %q, len=%d", length, number, len(number))
		}
	}
}

func TestGenerateFirstDigitNonZero(t *testing.T) {
	for i := 0; i < 100; i++ {
		number, err := Generate(12)
		if err != nil {
			t.Fatal(err)
		}
		if number[0] == '0' {
			t.Fatalf("leading zero in %q", number)
		}
	}
}

func TestGenerateLuhnValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		number, err := Generate(12)
		if err != nil {
			t.Fatal(err)
		}
		if !Valid(number) {
			t.Fatalf("Valid(%q) = false", number)
		}

		// cross-check against an independent implementation
		n, err := strconv.Atoi(number)
		if err != nil {
			t.Fatalf("non-numeric account number %q", number)
		}
		if !luhn.Valid(n) {
			t.Fatalf("luhn.Valid(%q) = false", number)
		}
	}
}

func TestGenerateTooShort(t *testing.T) {
	for _, length := range []int{0, 1, 9} {
		if _, err := Generate(length); !errors.Is(err, ErrLengthTooShort) {
			t.Fatalf("Generate(%d): want ErrLengthTooShort, got %v", length, err)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"79927398713", true},  // classic Luhn test number
		{"79927398710", false},
		{"", false},
		{"7992739871a", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.number); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}
