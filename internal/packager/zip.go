package packager

import (
	"archive/zip"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"golang.org/x/crypto/blake2b"
)

// ErrUnsafeEntry is returned when a staged file would produce an archive
// entry outside the archive root.
var ErrUnsafeEntry = errors.New("unsafe archive entry")

// writeZip writes every regular file under srcDir into archive, using paths
// relative to srcDir with forward slashes. The archive is assembled in a
// temporary file and moved into place once complete.
func writeZip(srcDir, archive string) ([]string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(archive), ".package-*.zip")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	entries, err := zipDir(srcDir, tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}

	if err := atomic.ReplaceFile(tmpPath, archive); err != nil {
		return nil, fmt.Errorf("failed to move archive into place: %w", err)
	}
	return entries, nil
}

func zipDir(srcDir string, w io.Writer) ([]string, error) {
	zw := zip.NewWriter(w)
	var entries []string

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if !fs.ValidPath(name) {
			return fmt.Errorf("%w: %s", ErrUnsafeEntry, name)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = name
		header.Method = zip.Deflate

		fw, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		if err := copyInto(fw, path); err != nil {
			return err
		}

		entries = append(entries, name)
		return nil
	})
	if err != nil {
		zw.Close()
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return entries, nil
}

func copyInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// checksum returns the BLAKE2b-256 digest of the file at path.
func checksum(path string) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if err := copyInto(h, path); err != nil {
		return "", err
	}
	return "blake2b-256:" + hex.EncodeToString(h.Sum(nil)), nil
}
