package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/agiangrant/alshim/internal/ffi"
)

// ErrUnavailable is returned by commands that need OpenAL when it did not load.
var ErrUnavailable = errors.New("openal unavailable")

// Probe implements the 'alshim probe' command
func Probe(out io.Writer, al *ffi.Loader) error {
	if !al.Found() {
		fmt.Fprintf(out, "openal: unavailable: %v\n", al.LastError())
		return ErrUnavailable
	}
	if al.Static() {
		fmt.Fprintln(out, "openal: available (statically linked)")
		return nil
	}
	fmt.Fprintf(out, "openal: available (%s)\n", al.Path())
	return nil
}
