// Package archive detects archive formats from filenames and extracts
// archive entries into a destination tree. Codec work is delegated to the
// compression libraries; this package only drives them: open, iterate
// entries, write each entry, close. A failure to open an archive or to
// initialize a codec is fatal; a failure to write a single entry is a
// warning and extraction continues.
package archive

import (
	"compress/bzip2"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

type Extractor struct {
	tar *TarExtractor
	zip *ZipExtractor
	deb *DebExtractor
	rpm *RpmExtractor
}

func New() *Extractor {
	return &Extractor{
		tar: NewTar(),
		zip: NewZip(),
		deb: NewDeb(),
		rpm: NewRpm(),
	}
}

func (e *Extractor) Extract(src, dst string, format Format) error {
	switch format {
	case FormatTar, FormatTarGz, FormatTarBz2, FormatTarXz:
		return e.tar.Extract(src, dst, format)
	case FormatZip:
		return e.zip.Extract(src, dst)
	case FormatDeb:
		return e.deb.Extract(src, dst)
	case FormatRpm:
		return e.rpm.Extract(src, dst)
	default:
		return fmt.Errorf("unsupported archive format: %s", src)
	}
}

// entryTarget rewrites an entry name so it is always rooted under dst,
// regardless of absolute or traversal components in the archive.
func entryTarget(dst, name string) string {
	return filepath.Join(dst, filepath.FromSlash(path.Clean("/"+name)))
}

func writeFileEntry(target string, mode fs.FileMode, modTime time.Time, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	perm := mode.Perm()
	if perm == 0 {
		perm = 0644
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// The open mode is masked by umask; restore the archived bits.
	if err := os.Chmod(target, perm); err != nil {
		return err
	}
	if !modTime.IsZero() {
		os.Chtimes(target, modTime, modTime)
	}
	return nil
}

func writeSymlinkEntry(target, linkname string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	os.Remove(target)
	return os.Symlink(linkname, target)
}

func writeHardlinkEntry(source, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	os.Remove(target)
	return os.Link(source, target)
}

// newDecompressor wraps r with the decoder for a named compression scheme.
// The returned cleanup may be nil.
func newDecompressor(r io.Reader, compression string) (io.Reader, func(), error) {
	switch compression {
	case "gzip":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}
		return gz, func() { gz.Close() }, nil
	case "bzip2":
		return bzip2.NewReader(r), nil, nil
	case "xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("xz: %w", err)
		}
		return xr, nil, nil
	case "lzma":
		lr, err := lzma.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("lzma: %w", err)
		}
		return lr, nil, nil
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		return zr, zr.Close, nil
	case "", "none":
		return r, nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported compression: %s", compression)
	}
}
