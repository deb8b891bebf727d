package ffi

import "github.com/go-kit/log/level"

// SymbolStatus records whether one entry point resolved.
type SymbolStatus struct {
	Name  string
	Found bool
}

// Report describes what a loader would find on this host.
type Report struct {
	Path    string
	Static  bool
	Symbols []SymbolStatus
	Err     error
}

// Complete reports whether every required symbol was found.
func (r Report) Complete() bool {
	if r.Static {
		return true
	}
	if r.Err != nil || len(r.Symbols) == 0 {
		return false
	}
	for _, s := range r.Symbols {
		if !s.Found {
			return false
		}
	}
	return true
}

// Inspect opens the first usable candidate with a separate handle and checks
// each required symbol. It does not change the loader's state.
func (l *Loader) Inspect() Report {
	if l.static {
		return Report{Static: true, Symbols: allFound()}
	}

	paths := searchPaths(l.libraryPath, l.candidates)
	lib, path, err := l.openFirst(paths)
	if err != nil {
		return Report{Err: err}
	}
	defer func() {
		if err := lib.Close(); err != nil {
			level.Debug(l.logger).Log("msg", "closing inspected library", "path", path, "err", err)
		}
	}()

	r := Report{Path: path}
	for _, name := range Symbols() {
		addr, err := lib.Symbol(name)
		r.Symbols = append(r.Symbols, SymbolStatus{Name: name, Found: err == nil && addr != 0})
	}
	return r
}

func allFound() []SymbolStatus {
	names := Symbols()
	out := make([]SymbolStatus, len(names))
	for i, n := range names {
		out[i] = SymbolStatus{Name: n, Found: true}
	}
	return out
}
