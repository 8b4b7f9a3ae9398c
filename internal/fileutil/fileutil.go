package fileutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic streams content produced by write into a temp file next to path
// and renames it into place once write and close succeed. On any failure the
// temp file is removed and an existing file at path is left untouched.
func WriteAtomic(path string, perm os.FileMode, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	buffered := bufio.NewWriterSize(tmp, 64*1024)
	if err := write(buffered); err != nil {
		return fail(err)
	}
	if err := buffered.Flush(); err != nil {
		return fail(fmt.Errorf("flush temp file: %w", err))
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail(fmt.Errorf("chmod temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
