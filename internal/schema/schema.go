// Package schema validates roster documents against an embedded CUE schema
// before they are decoded into records.
//
// Structural problems (wrong top-level type, missing keys, a string where a
// number belongs) are reported with the file position of the first
// violation, which plain JSON decoding cannot provide.
package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed employees.cue
var schemaCUE string

// ValidationError describes the first schema violation in a document.
type ValidationError struct {
	Message string
	Pos     token.Pos
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Validate checks that data is a JSON roster document.
// name is used only for error positions.
func Validate(name string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("employees.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile roster schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))

	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return formatCUEError(err)
	}
	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return formatCUEError(err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

// formatCUEError reduces a CUE error list to its first entry with a position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	first := errs[0]
	for _, pos := range errors.Positions(first) {
		if pos.Filename() != "employees.cue" {
			return &ValidationError{Message: first.Error(), Pos: pos}
		}
	}
	return &ValidationError{Message: first.Error()}
}
