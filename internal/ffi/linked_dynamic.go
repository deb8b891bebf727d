//go:build !openal_static

package ffi

// linkedTable returns nil: OpenAL is resolved at runtime.
func linkedTable() *table {
	return nil
}
