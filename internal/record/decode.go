package record

import (
	"encoding/json"
	"fmt"
	"math"
)

// MalformedError reports a serialized record that cannot be turned back
// into a Record.
type MalformedError struct {
	Field  string // serialized key, e.g. "salary"
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed record: %s: %s", e.Field, e.Reason)
}

// Deserialize is the inverse of Serialize.
//
// Every key is required. Numbers may arrive as json.Number (decoder with
// UseNumber), float64 (plain decoder) or any Go integer kind. The id must
// be integral; salary accepts any finite number.
func Deserialize(m map[string]any) (Record, error) {
	if m == nil {
		return Record{}, &MalformedError{Field: KeyID, Reason: "record is null"}
	}

	id, err := intField(m, KeyID)
	if err != nil {
		return Record{}, err
	}
	name, err := stringField(m, KeyName)
	if err != nil {
		return Record{}, err
	}
	title, err := stringField(m, KeyTitle)
	if err != nil {
		return Record{}, err
	}
	comp, err := floatField(m, KeyCompensation)
	if err != nil {
		return Record{}, err
	}

	return New(id, name, title, comp), nil
}

func lookup(m map[string]any, key string) (any, error) {
	v, ok := m[key]
	if !ok {
		return nil, &MalformedError{Field: key, Reason: "missing"}
	}
	return v, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, err := lookup(m, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedError{Field: key, Reason: fmt.Sprintf("expected text, got %T", v)}
	}
	return s, nil
}

func intField(m map[string]any, key string) (int64, error) {
	v, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &MalformedError{Field: key, Reason: fmt.Sprintf("%q is not an integer", n.String())}
		}
		return i, nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, &MalformedError{Field: key, Reason: fmt.Sprintf("%v is not an integer", n)}
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return 0, &MalformedError{Field: key, Reason: fmt.Sprintf("expected integer, got %T", v)}
	}
}

func floatField(m map[string]any, key string) (float64, error) {
	v, err := lookup(m, key)
	if err != nil {
		return 0, err
	}
	var f float64
	switch n := v.(type) {
	case json.Number:
		f, err = n.Float64()
		if err != nil {
			return 0, &MalformedError{Field: key, Reason: fmt.Sprintf("%q is not a number", n.String())}
		}
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, &MalformedError{Field: key, Reason: fmt.Sprintf("expected number, got %T", v)}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &MalformedError{Field: key, Reason: "not a finite number"}
	}
	return f, nil
}
