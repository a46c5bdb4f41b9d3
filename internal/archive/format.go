package archive

import (
	"path/filepath"
	"strings"
)

type Format int

const (
	FormatUnknown Format = iota
	FormatTar
	FormatTarGz
	FormatTarBz2
	FormatTarXz
	FormatZip
	FormatDeb
	FormatRpm
)

// Compound suffixes come before their single-suffix prefixes so that
// .tar.gz matches before .tar. First match wins.
var suffixFormats = []struct {
	suffix string
	format Format
}{
	{".tar.gz", FormatTarGz},
	{".tgz", FormatTarGz},
	{".tar.bz2", FormatTarBz2},
	{".tbz2", FormatTarBz2},
	{".tar.xz", FormatTarXz},
	{".txz", FormatTarXz},
	{".tar", FormatTar},
	{".zip", FormatZip},
	{".deb", FormatDeb},
	{".rpm", FormatRpm},
}

// Detect classifies a file path into a Format from its name alone.
func Detect(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	for _, sf := range suffixFormats {
		if strings.HasSuffix(name, sf.suffix) {
			return sf.format
		}
	}
	return FormatUnknown
}

func (f Format) String() string {
	switch f {
	case FormatTar:
		return "tar"
	case FormatTarGz:
		return "tar.gz"
	case FormatTarBz2:
		return "tar.bz2"
	case FormatTarXz:
		return "tar.xz"
	case FormatZip:
		return "zip"
	case FormatDeb:
		return "deb"
	case FormatRpm:
		return "rpm"
	default:
		return "unknown"
	}
}
