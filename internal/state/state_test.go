package state

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAddGetRemove(t *testing.T) {
	store := openStore(t)

	rec := &Record{
		Name:         "myapp",
		Version:      "1.2.3",
		Archive:      "/downloads/myapp-1.2.3.tar.gz",
		Path:         "/opt/myapp",
		Links:        []string{"/usr/local/bin/myapp"},
		DesktopEntry: "/home/u/.local/share/applications/myapp.desktop",
		InstalledAt:  time.Now().Truncate(time.Second),
	}
	require.NoError(t, store.Add(rec))

	got, err := store.Get("myapp")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, rec.Name, got.Name)
	require.Equal(t, rec.Version, got.Version)
	require.Equal(t, rec.Path, got.Path)
	require.Equal(t, rec.Links, got.Links)
	require.Equal(t, rec.DesktopEntry, got.DesktopEntry)
	require.True(t, rec.InstalledAt.Equal(got.InstalledAt))

	require.NoError(t, store.Remove("myapp"))
	got, err = store.Get("myapp")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestGetMissingIsNil(t *testing.T) {
	store := openStore(t)

	got, err := store.Get("nothing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestListSortedByName(t *testing.T) {
	store := openStore(t)

	for _, name := range []string{"zig", "alpha", "mid"} {
		require.NoError(t, store.Add(&Record{
			Name: name, Archive: name + ".tar.gz", Path: "/opt/" + name, InstalledAt: time.Now(),
		}))
	}

	recs, err := store.List()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "alpha", recs[0].Name)
	require.Equal(t, "mid", recs[1].Name)
	require.Equal(t, "zig", recs[2].Name)
}

func TestAddReplacesExisting(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Add(&Record{Name: "app", Version: "1.0", Archive: "a", Path: "/opt/app", InstalledAt: time.Now()}))
	require.NoError(t, store.Add(&Record{Name: "app", Version: "2.0", Archive: "a", Path: "/opt/app", InstalledAt: time.Now()}))

	got, err := store.Get("app")
	require.NoError(t, err)
	require.Equal(t, "2.0", got.Version)

	recs, err := store.List()
	require.NoError(t, err)
	require.Len(t, recs, 1)
}
