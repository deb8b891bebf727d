package ffi

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrLibraryNotFound is the cause reported when no candidate library opened.
var ErrLibraryNotFound = errors.New("openal library not found")

// MissingSymbolsError reports a library that opened but lacks required
// entry points. The loader treats it the same as a missing library.
type MissingSymbolsError struct {
	Path    string
	Missing []string
}

func (e *MissingSymbolsError) Error() string {
	return e.Path + ": missing symbols " + strings.Join(e.Missing, ", ")
}
