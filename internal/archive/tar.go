package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"

	"appin/internal/report"
)

type TarExtractor struct{}

func NewTar() *TarExtractor {
	return &TarExtractor{}
}

func (te *TarExtractor) Extract(src, dst string, format Format) error {
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	reader, cleanup, err := newDecompressor(file, tarCompression(format))
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	return extractTarStream(tar.NewReader(reader), dst)
}

func tarCompression(format Format) string {
	switch format {
	case FormatTarGz:
		return "gzip"
	case FormatTarBz2:
		return "bzip2"
	case FormatTarXz:
		return "xz"
	default:
		return "none"
	}
}

// extractTarStream writes every entry of tr under dst. A broken entry is
// reported and skipped; only a broken stream aborts.
func extractTarStream(tr *tar.Reader, dst string) error {
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read archive entry: %w", err)
		}

		target := entryTarget(dst, header.Name)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, header.FileInfo().Mode().Perm()); err != nil {
				report.Warnf("Could not create directory %s: %v", target, err)
			}
		case tar.TypeReg:
			if err := writeFileEntry(target, header.FileInfo().Mode(), header.ModTime, tr); err != nil {
				report.Warnf("Could not write %s: %v", target, err)
			}
		case tar.TypeSymlink:
			if err := writeSymlinkEntry(target, header.Linkname); err != nil {
				report.Warnf("Could not create symlink %s: %v", target, err)
			}
		case tar.TypeLink:
			// Hard link targets are archive-relative, so the source has
			// already been extracted under dst.
			if err := writeHardlinkEntry(entryTarget(dst, header.Linkname), target); err != nil {
				report.Warnf("Could not create hard link %s: %v", target, err)
			}
		}
	}
	return nil
}
