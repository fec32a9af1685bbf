package promptengine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnum marks a control enum value that failed strict validation.
	ErrInvalidEnum = errors.New("invalid enum value")
	// ErrAmbiguousClass marks a mask class that must be disambiguated by the caller.
	ErrAmbiguousClass = errors.New("ambiguous mask class")
)

// warningList accumulates non-fatal signals raised while building a prompt.
// Callers may log or ignore them; the engine never acts on them itself.
type warningList []string

func (w *warningList) addf(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}
