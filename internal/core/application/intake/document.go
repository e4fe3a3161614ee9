package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"loading/internal/pkg/errs"
)

// Field is a logical field name followed by the keys it may appear under, in priority
// order. Name is used in error messages only.
type Field struct {
	Name    string
	Aliases []string
}

// NewField builds a Field. Aliases are tried in the given order.
func NewField(name string, aliases ...string) Field {
	return Field{Name: name, Aliases: aliases}
}

// Document is a decoded structural payload. Numbers are kept as json.Number when the
// document comes from ParseDocument.
type Document map[string]any

// ParseDocument decodes a JSON object, keeping numbers exact.
func ParseDocument(raw []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("payload", err)
	}
	if doc == nil {
		return nil, errs.NewValueIsRequiredError("payload")
	}
	return doc, nil
}

// Lookup returns the value of the first alias present with a non-nil value.
func (d Document) Lookup(f Field) (any, bool) {
	for _, key := range f.Aliases {
		if v, ok := d[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String returns the trimmed text value of f, or "" when absent. Numbers are
// rendered in their shortest form so that an order number sent as 1001 reads "1001".
func (d Document) String(f Field) (string, error) {
	v, ok := d.Lookup(f)
	if !ok {
		return "", nil
	}

	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(f.Name, fmt.Errorf("unexpected type %T", v))
	}
}

// Float returns the numeric value of f. The boolean is false when the field is absent
// or blank.
func (d Document) Float(f Field) (float64, bool, error) {
	v, ok := d.Lookup(f)
	if !ok {
		return 0, false, nil
	}

	var (
		n   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		n, err = t.Float64()
	case float64:
		n = t
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false, nil
		}
		n, err = strconv.ParseFloat(s, 64)
	default:
		err = fmt.Errorf("unexpected type %T", v)
	}
	if err == nil && (math.IsNaN(n) || math.IsInf(n, 0)) {
		err = fmt.Errorf("%v is not a finite number", v)
	}
	if err != nil {
		return 0, false, errs.NewValueIsInvalidErrorWithCause(f.Name, err)
	}
	return n, true, nil
}

// timeLayouts are tried in order for textual dates.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// Time returns the instant of f. Textual values without a zone are read as UTC and
// numeric values as Unix seconds.
func (d Document) Time(f Field) (time.Time, bool, error) {
	v, ok := d.Lookup(f)
	if !ok {
		return time.Time{}, false, nil
	}

	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false, nil
		}
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UTC(), true, nil
			}
		}
		return time.Time{}, false, errs.NewValueIsInvalidErrorWithCause(f.Name, fmt.Errorf("unrecognized date %q", s))
	case json.Number, float64, int, int64:
		secs, _, err := d.Float(f)
		if err != nil {
			return time.Time{}, false, err
		}
		return time.Unix(int64(secs), 0).UTC(), true, nil
	default:
		return time.Time{}, false, errs.NewValueIsInvalidErrorWithCause(f.Name, fmt.Errorf("unexpected type %T", v))
	}
}

// Sub returns the nested document of f, or nil when absent.
func (d Document) Sub(f Field) (Document, error) {
	v, ok := d.Lookup(f)
	if !ok {
		return nil, nil
	}

	switch t := v.(type) {
	case Document:
		return t, nil
	case map[string]any:
		return t, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(f.Name, fmt.Errorf("expected an object, got %T", v))
	}
}
