// Package accnum generates syntactically valid bank account numbers.
// A generated number has a non-zero first digit and ends with a mod-10
// checksum digit so that the full string passes the Luhn check.
// Uniqueness against existing accounts is the caller's responsibility.
package accnum

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
)

// MinLength is the shortest account number this package will produce.
const MinLength = 10

var ErrLengthTooShort = errors.New("account number length must be at least 10 digits")

func Generate(length int) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}

	var sb strings.Builder
	sb.Grow(length)

	sb.WriteByte(byte('1' + rand.Intn(9)))
	for i := 1; i < length-1; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}

	body := sb.String()

	return body + strconv.Itoa(checksumDigit(body)), nil
}

// checksumDigit returns the digit that, appended to body, makes the
// resulting string Luhn-valid.
func checksumDigit(body string) int {
	sum := luhnSum(body + "0")
	return (10 - sum%10) % 10
}

// luhnSum computes the Luhn sum of a digit string: starting from the
// rightmost digit, every second digit moving left is doubled and the
// digits of doubled values are summed along with the rest.
func luhnSum(digits string) int {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum
}

// Valid reports whether the digit string passes the Luhn check.
func Valid(number string) bool {
	if number == "" {
		return false
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
	}

	return luhnSum(number)%10 == 0
}
