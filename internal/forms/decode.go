package forms

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decoded holds the typed values of one validated submission, keyed by
// field name. A key present with a nil value records an explicit unset
// (JSON null), which is how optional references and dates are cleared.
type Decoded map[string]any

// Decode validates a submitted field-value mapping against the declared
// field set. It is all-or-nothing: every failing field is reported, and
// callers must not persist anything when errors come back. Fields not
// declared in the descriptor are ignored.
func Decode(fields []Field, in map[string]any) (Decoded, Errors) {
	d := Decoded{}
	var errs Errors

	for _, f := range fields {
		raw, present := in[f.Name]
		if !present || raw == nil || isBlank(raw) {
			if f.Required {
				errs.AddMissing(f)
				continue
			}
			if present {
				d[f.Name] = nil
			}
			continue
		}

		v, reason := coerce(f, raw)
		if reason != "" {
			errs.AddInvalid(f, reason)
			continue
		}
		d[f.Name] = v
	}

	return d, errs
}

func isBlank(raw any) bool {
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}

func coerce(f Field, raw any) (any, string) {
	switch f.Kind {
	case Text:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a string"
		}
		return strings.TrimSpace(s), ""

	case Email:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a string"
		}
		s = strings.TrimSpace(s)
		if err := validate.Var(s, "email"); err != nil {
			return nil, "must be a well-formed email address"
		}
		return s, ""

	case Decimal:
		n, ok := toFloat(raw)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, "must be a finite number"
		}
		if f.Min != nil && n < *f.Min {
			return nil, fmt.Sprintf("must be at least %g", *f.Min)
		}
		return n, ""

	case Int, IntEnum:
		n, ok := toInt(raw)
		if !ok {
			return nil, "must be an integer"
		}
		if f.Kind == IntEnum && !containsInt(f.IntEnum, n) {
			return nil, "must be one of "+joinInts(f.IntEnum)
		}
		if f.Min != nil && float64(n) < *f.Min {
			return nil, fmt.Sprintf("must be at least %g", *f.Min)
		}
		return n, ""

	case UInt:
		n, ok := toInt(raw)
		if !ok || n < 0 {
			return nil, "must be a non-negative integer"
		}
		return uint(n), ""

	case Bool:
		switch v := raw.(type) {
		case bool:
			return v, ""
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, "must be a boolean"
			}
			return b, ""
		default:
			return nil, "must be a boolean"
		}

	case Enum:
		s, ok := raw.(string)
		if !ok || !containsString(f.Enum, s) {
			return nil, "must be one of "+strings.Join(f.Enum, ", ")
		}
		return s, ""

	case Date:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
		if err != nil {
			return nil, "must be a date in YYYY-MM-DD format"
		}
		return t, ""

	case DateTime:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a timestamp"
		}
		t, err := parseDateTime(strings.TrimSpace(s))
		if err != nil {
			return nil, "must be an RFC 3339 or YYYY-MM-DDTHH:MM timestamp"
		}
		return t, ""

	case Ref:
		n, ok := toInt(raw)
		if !ok || n <= 0 {
			return nil, "must reference an existing record"
		}
		return uint(n), ""
	}

	return nil, "has an unsupported field kind"
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseDateTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}

func containsString(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}

func containsInt(vals []int, n int) bool {
	for _, v := range vals {
		if v == n {
			return true
		}
	}
	return false
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Typed accessors. Apply hooks read validated values through these; the
// zero value comes back for absent keys, so hooks guard with Has where
// absence matters.

func (d Decoded) Has(name string) bool {
	_, ok := d[name]
	return ok
}

func (d Decoded) String(name string) string {
	s, _ := d[name].(string)
	return s
}

func (d Decoded) Float(name string) float64 {
	n, _ := d[name].(float64)
	return n
}

func (d Decoded) Int(name string) int {
	n, _ := d[name].(int)
	return n
}

func (d Decoded) UInt(name string) uint {
	n, _ := d[name].(uint)
	return n
}

func (d Decoded) Bool(name string) bool {
	b, _ := d[name].(bool)
	return b
}

func (d Decoded) Time(name string) time.Time {
	t, _ := d[name].(time.Time)
	return t
}

// TimePtr returns nil for absent or explicitly cleared fields.
func (d Decoded) TimePtr(name string) *time.Time {
	if t, ok := d[name].(time.Time); ok {
		return &t
	}
	return nil
}

// Ref returns nil for absent or explicitly cleared references.
func (d Decoded) Ref(name string) *uint {
	if id, ok := d[name].(uint); ok {
		return &id
	}
	return nil
}
