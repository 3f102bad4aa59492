// Package form turns raw form fields into typed store requests.
//
// Every field arrives as text, exactly as typed. Parsing trims surrounding
// whitespace and reports the first bad field as an INVALID_INPUT store
// error, so callers report form problems and store problems the same way.
package form

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/staffbook/internal/store"
)

// Submission holds the raw text of one employee form.
type Submission struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Compensation string `yaml:"compensation"`
}

// Request is a parsed Submission.
type Request struct {
	ID           int64
	Name         string
	Title        string
	Compensation float64
}

// ParseID parses the employee id field.
func ParseID(text string) (int64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, store.NewInvalidInput("id", "employee ID is required")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, store.NewInvalidInput("id", fmt.Sprintf("employee ID %q is not a whole number", s))
	}
	return id, nil
}

// ParseCompensation parses the compensation field. NaN and infinities are
// rejected; they cannot be written to the roster file.
func ParseCompensation(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, store.NewInvalidInput("compensation", "compensation is required")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, store.NewInvalidInput("compensation", fmt.Sprintf("compensation %q is not a number", s))
	}
	return f, nil
}

// Parse validates every field of the submission.
// Name and title are free text and may be empty.
func (s Submission) Parse() (Request, error) {
	id, err := ParseID(s.ID)
	if err != nil {
		return Request{}, err
	}
	comp, err := ParseCompensation(s.Compensation)
	if err != nil {
		return Request{}, err
	}
	return Request{
		ID:           id,
		Name:         strings.TrimSpace(s.Name),
		Title:        strings.TrimSpace(s.Title),
		Compensation: comp,
	}, nil
}

// Op is the action a batch entry performs.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Apply parses sub according to op and runs it against st.
// Delete only needs the id field.
func Apply(ctx context.Context, st *store.Store, op Op, sub Submission) error {
	if op == OpDelete {
		id, err := ParseID(sub.ID)
		if err != nil {
			return err
		}
		return st.Delete(ctx, id)
	}

	req, err := sub.Parse()
	if err != nil {
		return err
	}
	switch op {
	case OpAdd:
		return st.Add(ctx, req.ID, req.Name, req.Title, req.Compensation)
	case OpUpdate:
		return st.Update(ctx, req.ID, req.Name, req.Title, req.Compensation)
	default:
		return store.NewInvalidInput("op", fmt.Sprintf("unknown operation %q", op))
	}
}
