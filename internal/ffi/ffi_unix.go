//go:build darwin || linux || freebsd

package ffi

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

// dlLibrary is a library opened with dlopen.
type dlLibrary struct {
	handle uintptr
}

// openLibrary loads a dynamic library on Unix-like systems
func openLibrary(path string) (Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY)
	if err != nil {
		return nil, err
	}
	if handle == 0 {
		return nil, errors.Errorf("dlopen %s returned a nil handle", path)
	}
	return &dlLibrary{handle: handle}, nil
}

// Symbol retrieves a symbol from the loaded library
func (l *dlLibrary) Symbol(name string) (uintptr, error) {
	return purego.Dlsym(l.handle, name)
}

func (l *dlLibrary) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}

func bindFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
