package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Init implements the 'alshim init' command
func Init(out io.Writer, path string, force bool) error {
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := SaveConfig(path, DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Created %s\n", path)
	return nil
}
