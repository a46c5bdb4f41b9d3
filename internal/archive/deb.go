package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blakesmith/ar"
)

// DebExtractor unpacks the data.tar member of a Debian package. The control
// member only carries package metadata and is skipped.
type DebExtractor struct{}

func NewDeb() *DebExtractor {
	return &DebExtractor{}
}

func (de *DebExtractor) Extract(src, dst string) error {
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	rd := ar.NewReader(file)
	for {
		header, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("deb: %w", err)
		}

		name := strings.TrimSuffix(strings.TrimSpace(header.Name), "/")
		if !strings.HasPrefix(name, "data.tar") {
			continue
		}

		reader, cleanup, err := newDecompressor(rd, dataCompression(name))
		if err != nil {
			return fmt.Errorf("deb: %w", err)
		}
		if cleanup != nil {
			defer cleanup()
		}

		return extractTarStream(tar.NewReader(reader), dst)
	}

	return fmt.Errorf("deb: no data.tar member in %s", src)
}

func dataCompression(member string) string {
	switch {
	case strings.HasSuffix(member, ".gz"):
		return "gzip"
	case strings.HasSuffix(member, ".xz"):
		return "xz"
	case strings.HasSuffix(member, ".zst"):
		return "zstd"
	case strings.HasSuffix(member, ".bz2"):
		return "bzip2"
	case strings.HasSuffix(member, ".lzma"):
		return "lzma"
	default:
		return "none"
	}
}
