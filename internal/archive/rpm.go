package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/cavaliergopher/cpio"
	"github.com/cavaliergopher/rpm"

	"appin/internal/report"
)

// RpmExtractor unpacks the cpio payload of an RPM package. The lead and
// header sections are parsed only to learn the payload compression.
type RpmExtractor struct{}

func NewRpm() *RpmExtractor {
	return &RpmExtractor{}
}

func (re *RpmExtractor) Extract(src, dst string) error {
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer file.Close()

	pkg, err := rpm.Read(file)
	if err != nil {
		return fmt.Errorf("rpm: %w", err)
	}
	if format := pkg.PayloadFormat(); format != "cpio" {
		return fmt.Errorf("rpm: unsupported payload format: %s", format)
	}

	reader, cleanup, err := newDecompressor(file, pkg.PayloadCompression())
	if err != nil {
		return fmt.Errorf("rpm: %w", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	return extractCpioStream(cpio.NewReader(reader), dst)
}

func extractCpioStream(cr *cpio.Reader, dst string) error {
	for {
		header, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read archive entry: %w", err)
		}

		info := header.FileInfo()
		target := entryTarget(dst, header.Name)

		switch {
		case info.IsDir():
			if err := os.MkdirAll(target, info.Mode().Perm()); err != nil {
				report.Warnf("Could not create directory %s: %v", target, err)
			}
		case info.Mode()&os.ModeSymlink != 0:
			// newc archives carry the link target as the entry body.
			linkname, err := io.ReadAll(cr)
			if err != nil {
				report.Warnf("Could not read symlink %s: %v", target, err)
				continue
			}
			if err := writeSymlinkEntry(target, string(linkname)); err != nil {
				report.Warnf("Could not create symlink %s: %v", target, err)
			}
		case info.Mode().IsRegular():
			if err := writeFileEntry(target, info.Mode(), header.ModTime, cr); err != nil {
				report.Warnf("Could not write %s: %v", target, err)
			}
		}
	}
	return nil
}
