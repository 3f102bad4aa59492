package record

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Serialized field names. Fixed for compatibility with existing roster files.
const (
	KeyID           = "employee_id"
	KeyName         = "name"
	KeyTitle        = "position"
	KeyCompensation = "salary"
)

// Record is a single employee entry.
//
// ID is the caller-supplied key and never changes after creation.
type Record struct {
	ID           int64   `json:"employee_id" yaml:"employee_id"`
	Name         string  `json:"name" yaml:"name"`
	Title        string  `json:"position" yaml:"position"`
	Compensation float64 `json:"salary" yaml:"salary"`
}

// New builds a Record with normalized text fields.
func New(id int64, name, title string, compensation float64) Record {
	return Record{
		ID:           id,
		Name:         Normalize(name),
		Title:        Normalize(title),
		Compensation: compensation,
	}
}

// Normalize returns s in Unicode NFC form.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Serialize returns the record as a map keyed by the roster file field names.
func (r Record) Serialize() map[string]any {
	return map[string]any{
		KeyID:           r.ID,
		KeyName:         r.Name,
		KeyTitle:        r.Title,
		KeyCompensation: r.Compensation,
	}
}

// Render returns the one-line human-readable summary of the record.
func (r Record) Render() string {
	return fmt.Sprintf("ID: %d, Name: %s, Title: %s, Compensation: %s",
		r.ID, r.Name, r.Title, FormatCompensation(r.Compensation))
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return r.Render()
}

// FormatCompensation prints a float the way a desk calculator would show it:
// whole amounts keep a trailing ".0", very large or very small magnitudes
// switch to exponent form.
func FormatCompensation(f float64) string {
	abs := math.Abs(f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
