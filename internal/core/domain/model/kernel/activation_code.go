package kernel

import (
	"fmt"
	"math/rand/v2"

	"loading/internal/pkg/errs"
	"loading/internal/pkg/guard"
)

const (
	// ActivationCodeLength is the number of digits in every activation code.
	ActivationCodeLength = 5

	activationCodeSpace = 100000
)

// ErrActivationCodeIsNotConstructed is returned when a zero-value ActivationCode is used.
var ErrActivationCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"activation code must be created via NewRandomActivationCode or ActivationCodeFromString")

// ActivationCode links a weighbridge session to an order during the loading window.
// It is always exactly five decimal digits, zero padded ("00042", "99999").
//
// Codes are drawn uniformly from 00000..99999. Uniqueness across orders is not
// checked: two live orders can share a code.
type ActivationCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewRandomActivationCode draws a fresh code.
func NewRandomActivationCode() ActivationCode {
	n := rand.IntN(activationCodeSpace) //nolint:gosec // not a secret, only a session token
	return ActivationCode{
		value: fmt.Sprintf("%0*d", ActivationCodeLength, n),
		guard: guard.NewConstructorGuard(),
	}
}

// ActivationCodeFromString restores a persisted code, rejecting anything that is not
// exactly five ASCII digits.
func ActivationCodeFromString(s string) (ActivationCode, error) {
	if len(s) != ActivationCodeLength {
		return ActivationCode{}, errs.NewValueIsInvalidErrorWithCause(
			"activation code",
			fmt.Errorf("%q must have %d digits", s, ActivationCodeLength),
		)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ActivationCode{}, errs.NewValueIsInvalidErrorWithCause(
				"activation code",
				fmt.Errorf("%q must contain only digits", s),
			)
		}
	}
	return ActivationCode{value: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the code was built through a constructor.
func (c ActivationCode) Validate() error {
	return c.guard.Validate(ErrActivationCodeIsNotConstructed)
}

func (c ActivationCode) String() string {
	return c.value
}
