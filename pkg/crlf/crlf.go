// Package crlf removes carriage returns from files written with DOS line
// endings, so scripts saved on Windows run under a Unix shell.
package crlf

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/polyroots/polyroots/pkg/errors"
)

// Strip returns data with every '\r' removed and the number of bytes dropped.
// When nothing is removed, data itself is returned.
func Strip(data []byte) ([]byte, int) {
	n := bytes.Count(data, []byte{'\r'})
	if n == 0 {
		return data, 0
	}
	out := make([]byte, 0, len(data)-n)
	for _, b := range data {
		if b != '\r' {
			out = append(out, b)
		}
	}
	return out, n
}

// StripFile rewrites path without carriage returns and reports how many were
// removed. The file keeps its permissions. An already clean file is left
// untouched.
func StripFile(path string) (int, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", path)
	}
	if info.IsDir() {
		return 0, errors.New(errors.ErrCodeInvalidPath, "%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	clean, n := Strip(data)
	if n == 0 {
		return 0, nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(clean); err != nil {
		tmp.Close()
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "close %s", tmpName)
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "replace %s", path)
	}
	return n, nil
}
