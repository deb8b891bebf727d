//go:build windows

package ffi

import (
	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

type dllLibrary struct {
	dll *windows.DLL
}

// openLibrary loads a dynamic library on Windows
func openLibrary(path string) (Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, errors.Wrap(err, "LoadDLL failed")
	}
	return &dllLibrary{dll: dll}, nil
}

// Symbol retrieves a symbol from the loaded library on Windows
func (l *dllLibrary) Symbol(name string) (uintptr, error) {
	if l.dll == nil {
		return 0, errors.New("library not loaded")
	}
	proc, err := l.dll.FindProc(name)
	if err != nil {
		return 0, errors.Wrapf(err, "FindProc(%s) failed", name)
	}
	return proc.Addr(), nil
}

func (l *dllLibrary) Close() error {
	if l.dll == nil {
		return nil
	}
	err := l.dll.Release()
	l.dll = nil
	return err
}

func bindFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}
