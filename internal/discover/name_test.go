package discover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"myapp-1.2.3.tar.gz", "myapp"},
		{"my-tool.zip", "my-tool"},
		{"tool-beta.tar", "tool-beta"},
		{"app-2.0.tgz", "app"},
		{"clion-2024.1.tar.gz", "clion"},
		{"/downloads/app-2.0.tar.gz", "app"},
		{"plain.tar", "plain"},
		{"trailing-.zip", "trailing-"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, AppName(tc.path), "path %q", tc.path)
	}
}

func TestNameVersion(t *testing.T) {
	name, version := NameVersion("myapp-1.2.3.tar.gz")
	require.Equal(t, "myapp", name)
	require.Equal(t, "1.2.3", version)

	name, version = NameVersion("tool-beta.tar")
	require.Equal(t, "tool-beta", name)
	require.Equal(t, "", version)
}
