package archive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"app-1.0.tar.gz", FormatTarGz},
		{"app.tgz", FormatTarGz},
		{"app-1.0.tar.bz2", FormatTarBz2},
		{"app.tbz2", FormatTarBz2},
		{"app-1.0.tar.xz", FormatTarXz},
		{"app.txz", FormatTarXz},
		{"app-1.0.tar", FormatTar},
		{"app.zip", FormatZip},
		{"app_1.0_amd64.deb", FormatDeb},
		{"app-1.0.x86_64.rpm", FormatRpm},
		{"/some/dir/app-1.0.tar.gz", FormatTarGz},
		{"APP-1.0.TAR.GZ", FormatTarGz},
		{"app-1.0.7z", FormatUnknown},
		{"app.gz", FormatUnknown},
		{"app", FormatUnknown},
		{"app.tar.zst", FormatUnknown},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Detect(tc.path), "path %q", tc.path)
	}
}

func TestDetectPrefersCompoundSuffix(t *testing.T) {
	// .tar.gz must win over the bare .tar it also ends close to.
	require.Equal(t, FormatTarGz, Detect("app.tar.gz"))
	require.Equal(t, FormatTar, Detect("app.gz.tar"))
}
