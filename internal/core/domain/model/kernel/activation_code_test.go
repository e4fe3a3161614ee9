package kernel_test

import (
	"regexp"
	"testing"

	"loading/internal/core/domain/model/kernel"
	"loading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveDigits = regexp.MustCompile(`^[0-9]{5}$`)

func TestNewRandomActivationCode(t *testing.T) {
	t.Run("should always produce five zero padded digits", func(t *testing.T) {
		for range 2000 {
			code := kernel.NewRandomActivationCode()

			require.NoError(t, code.Validate())
			assert.Regexp(t, fiveDigits, code.String())
		}
	})
}

func TestActivationCodeFromString(t *testing.T) {
	t.Run("should accept padded and boundary codes", func(t *testing.T) {
		for _, s := range []string{"00000", "00042", "12345", "99999"} {
			code, err := kernel.ActivationCodeFromString(s)

			require.NoError(t, err)
			assert.Equal(t, s, code.String())
		}
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		for _, s := range []string{"", "42", "123456", "1234a", " 1234", "١٢٣٤٥"} {
			_, err := kernel.ActivationCodeFromString(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "input %q", s)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var code kernel.ActivationCode

		require.ErrorIs(t, code.Validate(), kernel.ErrActivationCodeIsNotConstructed)
	})
}
