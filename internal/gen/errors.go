package gen

import (
	"errors"
	"fmt"
)

var (
	ErrUnrepresentable = errors.New("unrepresentable type")
	// ErrFailedDependency is the error of a record that refers to a record
	// no code was generated for.
	ErrFailedDependency = errors.New("refers to failed record")
)

// GenError is a failure to generate code for a record. The record is left
// out of the output.
type GenError struct {
	Record string
	Field  string
	Err    error
}

func (e *GenError) Error() string {
	if len(e.Field) == 0 {
		return fmt.Sprintf(`record "%s": %v`, e.Record, e.Err)
	}

	return fmt.Sprintf(`record "%s", field "%s": %v`, e.Record, e.Field, e.Err)
}

func (e *GenError) Unwrap() error {
	return e.Err
}
