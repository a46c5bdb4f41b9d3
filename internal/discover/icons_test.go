package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIconPrecedence(t *testing.T) {
	root := t.TempDir()

	writeFile(t, root, "icon.png", 0644)
	writeFile(t, root, "share/pixmaps/app.png", 0644)

	// share/pixmaps comes before the generic icon.png.
	icon, ok := Icon(root, "app")
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "share/pixmaps/app.png"), icon)

	// bin/<name>.svg outranks everything.
	writeFile(t, root, "bin/app.svg", 0644)
	icon, ok = Icon(root, "app")
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "bin/app.svg"), icon)
}

func TestIconFallsBackToGenericNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "icon.png", 0644)

	icon, ok := Icon(root, "app")
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "icon.png"), icon)
}

func TestIconNotFound(t *testing.T) {
	_, ok := Icon(t.TempDir(), "app")
	require.False(t, ok)

	require.NoError(t, os.MkdirAll(filepath.Join(t.TempDir(), "share/icons"), 0755))
	_, ok = Icon(t.TempDir(), "app")
	require.False(t, ok)
}
