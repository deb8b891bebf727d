package ffi

import (
	"os"
	"path/filepath"
	"runtime"
)

// LibraryPathEnv names an OpenAL library to try before the defaults.
const LibraryPathEnv = "ALSHIM_OPENAL_LIB"

// DefaultCandidates returns the OpenAL library names tried on this platform,
// in order.
func DefaultCandidates() []string {
	return candidatesFor(runtime.GOOS)
}

func candidatesFor(goos string) []string {
	switch goos {
	case "windows":
		return []string{"soft_oal.dll", "OpenAL32.dll"}
	case "darwin", "ios":
		return []string{
			"/System/Library/Frameworks/OpenAL.framework/OpenAL",
			"libopenal.dylib",
			"libopenal.1.dylib",
		}
	default:
		return []string{"libopenal.so", "libopenal.so.1"}
	}
}

// searchPaths expands names into the ordered list handed to the opener. An
// explicit path and the environment override come first, then each name as
// given (the system loader searches for it), then copies that sit next to
// the executable.
func searchPaths(explicit string, names []string) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	add(explicit)
	add(os.Getenv(LibraryPathEnv))
	for _, name := range names {
		add(name)
	}

	execPath, err := os.Executable()
	if err != nil {
		return paths
	}
	execDir := filepath.Dir(execPath)
	for _, name := range names {
		if filepath.IsAbs(name) {
			continue
		}
		for _, dir := range []string{execDir, filepath.Join(execDir, "..", "lib")} {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				add(p)
			}
		}
	}
	return paths
}
