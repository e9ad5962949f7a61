package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("entity not found")
var ErrDuplicateID = errors.New("duplicate entity id")
var ErrSeedFetch = errors.New("seed fixture fetch failed")
var ErrInvalidPasscode = errors.New("invalid passcode")

// ValidationError carries one message per offending form field. An empty
// Fields map is never wrapped in a ValidationError; callers return nil
// instead.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
