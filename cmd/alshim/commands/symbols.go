package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agiangrant/alshim/internal/ffi"
)

// Symbols implements the 'alshim symbols' command
func Symbols(out io.Writer, al *ffi.Loader) error {
	r := al.Inspect()
	if r.Err != nil {
		fmt.Fprintf(out, "openal: unavailable: %v\n", r.Err)
		return ErrUnavailable
	}

	switch {
	case r.Static:
		fmt.Fprintln(out, "library: statically linked")
	default:
		fmt.Fprintf(out, "library: %s\n", r.Path)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tSTATUS")
	for _, s := range r.Symbols {
		status := "ok"
		if !s.Found {
			status = "missing"
		}
		fmt.Fprintf(w, "%s\t%s\n", s.Name, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !r.Complete() {
		return ErrUnavailable
	}
	return nil
}
