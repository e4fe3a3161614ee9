package alarm

import (
	"fmt"
	"math"
	"net/mail"
	"strings"

	"loading/internal/pkg/errs"
)

const (
	// ConfigID is the fixed primary key of the single configuration row.
	ConfigID = 1

	// DefaultThreshold is used until an operator configures one.
	DefaultThreshold = 5.0
)

// ErrNoRecipientsConfigured is returned when a breach must be notified but nobody is
// configured to receive it.
var ErrNoRecipientsConfigured = errs.NewBusinessRuleError("no alert recipients configured")

// Outcome tells the telemetry caller whether this reading triggered a notification.
type Outcome string

const (
	Sent    Outcome = "SENT"
	NotSent Outcome = "NOT_SENT"
)

// AlertConfig is the process-wide temperature alert configuration. EmailAlreadySent is
// the dedup flag: once set, breaches are ignored until it is explicitly reset.
type AlertConfig struct {
	threshold        float64
	recipients       []string
	emailAlreadySent bool
}

// DefaultAlertConfig is the configuration seeded on first access.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{threshold: DefaultThreshold}
}

// NewAlertConfig validates a threshold and a recipient list. Recipients are trimmed,
// de-duplicated case-insensitively and must be valid e-mail addresses.
func NewAlertConfig(threshold float64, recipients []string, emailAlreadySent bool) (AlertConfig, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return AlertConfig{}, errs.NewValueIsInvalidError("threshold")
	}

	seen := make(map[string]struct{}, len(recipients))
	clean := make([]string, 0, len(recipients))
	for _, r := range recipients {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if _, err := mail.ParseAddress(r); err != nil {
			return AlertConfig{}, errs.NewValueIsInvalidErrorWithCause("recipients", fmt.Errorf("%q: %w", r, err))
		}
		key := strings.ToLower(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		clean = append(clean, r)
	}

	return AlertConfig{threshold: threshold, recipients: clean, emailAlreadySent: emailAlreadySent}, nil
}

func (c AlertConfig) Threshold() float64 { return c.threshold }

func (c AlertConfig) Recipients() []string {
	out := make([]string, len(c.recipients))
	copy(out, c.recipients)
	return out
}

func (c AlertConfig) EmailAlreadySent() bool { return c.emailAlreadySent }

// IsBreachedBy reports whether temperature is strictly above the threshold.
func (c AlertConfig) IsBreachedBy(temperature float64) bool {
	return temperature > c.threshold
}

// CheckRecipients fails with ErrNoRecipientsConfigured on an empty list.
func (c AlertConfig) CheckRecipients() error {
	if len(c.recipients) == 0 {
		return ErrNoRecipientsConfigured
	}
	return nil
}
