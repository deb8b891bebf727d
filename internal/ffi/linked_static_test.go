//go:build openal_static

package ffi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestStaticBypassesLoader(t *testing.T) {
	opens := 0
	l := NewLoader(WithOpener(func(path string) (Library, error) {
		opens++
		return nil, errors.New("unexpected open")
	}))

	require.True(t, l.Static())
	require.True(t, l.Found())
	require.NoError(t, l.Close())
	require.True(t, l.Found())
	require.True(t, l.Inspect().Complete())
	require.Zero(t, opens)
}
