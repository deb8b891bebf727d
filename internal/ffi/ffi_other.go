//go:build !(darwin || linux || freebsd || windows)

package ffi

import (
	"runtime"

	"github.com/pkg/errors"
)

func openLibrary(path string) (Library, error) {
	return nil, errors.Errorf("dynamic loading is not supported on %s", runtime.GOOS)
}

func bindFunc(fptr any, addr uintptr) {
	panic("ffi: dynamic binding is not supported on " + runtime.GOOS)
}
