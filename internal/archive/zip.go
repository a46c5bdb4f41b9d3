package archive

import (
	"archive/zip"
	"fmt"
	"os"

	"appin/internal/report"
)

type ZipExtractor struct{}

func NewZip() *ZipExtractor {
	return &ZipExtractor{}
}

func (ze *ZipExtractor) Extract(src, dst string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		target := entryTarget(dst, f.Name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				report.Warnf("Could not create directory %s: %v", target, err)
			}
			continue
		}

		rc, err := f.Open()
		if err != nil {
			report.Warnf("Could not read %s: %v", f.Name, err)
			continue
		}

		if err := writeFileEntry(target, f.Mode(), f.Modified, rc); err != nil {
			report.Warnf("Could not write %s: %v", target, err)
		}
		rc.Close()
	}

	return nil
}
